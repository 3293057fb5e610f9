// repository/category_repository.go
package repository

import (
	"github.com/mayaya-dev/3awan-caferesto-api/entity"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) WithTx(tx *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: tx}
}

// FindAll lists categories; includeDeleted also returns soft-deleted rows.
func (r *CategoryRepository) FindAll(includeDeleted bool) ([]entity.Category, error) {
	db := r.DB
	if includeDeleted {
		db = db.Unscoped()
	}
	var cats []entity.Category
	err := db.Order("category_id").Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	return FindActive[entity.Category](r.DB, id)
}

func (r *CategoryRepository) Create(tx *gorm.DB, c *entity.Category) error {
	return tx.Create(c).Error
}

func (r *CategoryRepository) Update(tx *gorm.DB, c *entity.Category, fields map[string]any) error {
	return tx.Model(c).Updates(fields).Error
}
