package services

import (
	"fmt"

	"github.com/mayaya-dev/3awan-caferesto-api/entity"
	"github.com/mayaya-dev/3awan-caferesto-api/repository"
	"github.com/mayaya-dev/3awan-caferesto-api/validation"

	"gorm.io/gorm"
)

type MenuService struct {
	DB        *gorm.DB
	Repo      *repository.MenuRepository
	Validator *validation.Validator
}

func NewMenuService(db *gorm.DB, repo *repository.MenuRepository, v *validation.Validator) *MenuService {
	return &MenuService{DB: db, Repo: repo, Validator: v}
}

// List returns active menus of active categories. categoryID narrows the
// result when set.
func (s *MenuService) List(categoryID *uint) ([]entity.Menu, error) {
	return s.Repo.FindActive(categoryID)
}

func (s *MenuService) ListAll() ([]entity.Menu, error) {
	return s.Repo.FindAll()
}

func (s *MenuService) Get(id uint) (*entity.Menu, error) {
	m, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, translateNotFound(err, "Menu not found")
	}
	return m, nil
}

func (s *MenuService) Create(data map[string]any) (*entity.Menu, error) {
	fields, err := s.Validator.Menu(data, false)
	if err != nil {
		return nil, err
	}
	price, _ := fields.Decimal("price")

	m := &entity.Menu{
		MenuName:    fields.String("menu_name"),
		Description: fields.NullableString("description"),
		Price:       price,
		CategoryID:  fields.ID("category_id"),
		ImageURL:    fields.NullableString("image_url"),
	}

	var created *entity.Menu
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, m); err != nil {
			return err
		}
		var err error
		created, err = s.Repo.WithTx(tx).FindByID(m.MenuID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create menu: %w", err)
	}
	return created, nil
}

func (s *MenuService) Update(id uint, data map[string]any) (*entity.Menu, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	fields, err := s.Validator.Menu(data, true)
	if err != nil {
		return nil, err
	}

	var updated *entity.Menu
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Update(tx, &entity.Menu{MenuID: id}, fields); err != nil {
			return err
		}
		var err error
		updated, err = s.Repo.WithTx(tx).FindByID(id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update menu %d: %w", id, err)
	}
	return updated, nil
}

func (s *MenuService) Delete(id uint, mode DeleteMode) (string, error) {
	return deleteByMode(s.DB, "Menu", id, mode, deleteCascade[entity.Menu]{})
}
