package repository

import (
	"time"

	"github.com/mayaya-dev/3awan-caferesto-api/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderItemRepository struct {
	DB *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) *OrderItemRepository {
	return &OrderItemRepository{DB: db}
}

func (r *OrderItemRepository) WithTx(tx *gorm.DB) *OrderItemRepository {
	return &OrderItemRepository{DB: tx}
}

func preloadMenu(db *gorm.DB) *gorm.DB {
	return db.Preload("Menu", unscoped).Preload("Menu.Category", unscoped)
}

func (r *OrderItemRepository) FindAll(includeDeleted bool) ([]entity.OrderItem, error) {
	db := r.DB
	if includeDeleted {
		db = db.Unscoped()
	}
	var items []entity.OrderItem
	err := db.Scopes(preloadMenu).Order("order_item_id").Find(&items).Error
	return items, err
}

func (r *OrderItemRepository) FindByID(id uint) (*entity.OrderItem, error) {
	return FindActive[entity.OrderItem](r.DB.Scopes(preloadMenu), id)
}

func (r *OrderItemRepository) Create(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Omit(clause.Associations).Create(oi).Error
}

func (r *OrderItemRepository) Update(tx *gorm.DB, oi *entity.OrderItem, fields map[string]any) error {
	return tx.Model(oi).Omit(clause.Associations).Updates(fields).Error
}

// SoftDeleteByOrder stamps every active item of the order with at.
func (r *OrderItemRepository) SoftDeleteByOrder(tx *gorm.DB, orderID uint, at time.Time) (int64, error) {
	res := tx.Model(&entity.OrderItem{}).
		Where("order_id = ?", orderID).
		Update("deleted_at", at)
	return res.RowsAffected, res.Error
}

// RestoreByOrder clears deleted_at on items stamped exactly at, which are
// the items removed together with their order.
func (r *OrderItemRepository) RestoreByOrder(tx *gorm.DB, orderID uint, at time.Time) (int64, error) {
	res := tx.Unscoped().Model(&entity.OrderItem{}).
		Where("order_id = ? AND deleted_at = ?", orderID, at).
		Update("deleted_at", nil)
	return res.RowsAffected, res.Error
}

// PurgeByOrder permanently removes every item of the order.
func (r *OrderItemRepository) PurgeByOrder(tx *gorm.DB, orderID uint) error {
	return tx.Unscoped().Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error
}
