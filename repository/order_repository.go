package repository

import (
	"github.com/mayaya-dev/3awan-caferesto-api/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) WithTx(tx *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: tx}
}

// preloadOrderItems loads the active items of each order with their menu
// and category. The deleted_at filter is explicit so that it also holds
// under Unscoped list queries.
func preloadOrderItems(db *gorm.DB) *gorm.DB {
	return db.
		Preload("OrderItems", func(db *gorm.DB) *gorm.DB {
			return db.Where("order_items.deleted_at IS NULL").Order("order_items.order_item_id")
		}).
		Preload("OrderItems.Menu", unscoped).
		Preload("OrderItems.Menu.Category", unscoped)
}

// ---------------- Orders ----------------

func (r *OrderRepository) FindAll(includeDeleted bool) ([]entity.Order, error) {
	db := r.DB
	if includeDeleted {
		db = db.Unscoped()
	}
	var orders []entity.Order
	err := db.Scopes(preloadOrderItems).Order("order_id").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	return FindActive[entity.Order](r.DB.Scopes(preloadOrderItems), id)
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Omit(clause.Associations).Create(o).Error
}

func (r *OrderRepository) Update(tx *gorm.DB, o *entity.Order, fields map[string]any) error {
	return tx.Model(o).Omit(clause.Associations).Updates(fields).Error
}
