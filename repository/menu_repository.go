// repository/menu_repository.go
package repository

import (
	"github.com/mayaya-dev/3awan-caferesto-api/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) WithTx(tx *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: tx}
}

// the category is embedded even after it was soft-deleted
func preloadCategory(db *gorm.DB) *gorm.DB {
	return db.Preload("Category", unscoped)
}

// FindActive lists active menus whose category is active too, optionally
// narrowed to one category.
func (r *MenuRepository) FindActive(categoryID *uint) ([]entity.Menu, error) {
	db := r.DB.Model(&entity.Menu{}).
		Joins("JOIN categories ON categories.category_id = menus.category_id AND categories.deleted_at IS NULL").
		Scopes(preloadCategory)
	if categoryID != nil {
		db = db.Where("menus.category_id = ?", *categoryID)
	}
	var menus []entity.Menu
	err := db.Order("menus.menu_id").Find(&menus).Error
	return menus, err
}

// FindAll lists every menu including soft-deleted ones.
func (r *MenuRepository) FindAll() ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.Unscoped().Scopes(preloadCategory).Order("menu_id").Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.Menu, error) {
	return FindActive[entity.Menu](r.DB.Scopes(preloadCategory), id)
}

// FindActivePrice reads the current price of an active menu.
func (r *MenuRepository) FindActivePrice(id uint) (decimal.Decimal, error) {
	var m entity.Menu
	if err := r.DB.Select("menu_id", "price").First(&m, id).Error; err != nil {
		return decimal.Decimal{}, err
	}
	return m.Price, nil
}

func (r *MenuRepository) Create(tx *gorm.DB, m *entity.Menu) error {
	return tx.Omit(clause.Associations).Create(m).Error
}

func (r *MenuRepository) Update(tx *gorm.DB, m *entity.Menu, fields map[string]any) error {
	return tx.Model(m).Omit(clause.Associations).Updates(fields).Error
}
