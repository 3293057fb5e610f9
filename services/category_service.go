package services

import (
	"fmt"

	"github.com/mayaya-dev/3awan-caferesto-api/entity"
	"github.com/mayaya-dev/3awan-caferesto-api/repository"
	"github.com/mayaya-dev/3awan-caferesto-api/validation"

	"gorm.io/gorm"
)

type CategoryService struct {
	DB        *gorm.DB
	Repo      *repository.CategoryRepository
	Validator *validation.Validator
}

func NewCategoryService(db *gorm.DB, repo *repository.CategoryRepository, v *validation.Validator) *CategoryService {
	return &CategoryService{DB: db, Repo: repo, Validator: v}
}

func (s *CategoryService) List() ([]entity.Category, error) {
	return s.Repo.FindAll(false)
}

func (s *CategoryService) ListAll() ([]entity.Category, error) {
	return s.Repo.FindAll(true)
}

func (s *CategoryService) Get(id uint) (*entity.Category, error) {
	c, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, translateNotFound(err, "Category not found")
	}
	return c, nil
}

func (s *CategoryService) Create(data map[string]any) (*entity.Category, error) {
	fields, err := s.Validator.Category(data, false)
	if err != nil {
		return nil, err
	}

	c := &entity.Category{CategoryName: fields.String("category_name")}
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, c)
	}); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

func (s *CategoryService) Update(id uint, data map[string]any) (*entity.Category, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	fields, err := s.Validator.Category(data, true)
	if err != nil {
		return nil, err
	}

	var updated *entity.Category
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Update(tx, &entity.Category{CategoryID: id}, fields); err != nil {
			return err
		}
		c, err := s.Repo.WithTx(tx).FindByID(id)
		if err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update category %d: %w", id, err)
	}
	return updated, nil
}

// Delete does not touch the category's menus in any mode.
func (s *CategoryService) Delete(id uint, mode DeleteMode) (string, error) {
	return deleteByMode(s.DB, "Category", id, mode, deleteCascade[entity.Category]{})
}
