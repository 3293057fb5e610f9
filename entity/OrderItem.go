package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItem struct {
	OrderItemID uint            `gorm:"primaryKey;column:order_item_id" json:"order_item_id"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"` // snapshot of the menu price at order time
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"deleted_at"`

	OrderID uint `gorm:"not null;index" json:"order_id"`

	MenuID uint  `gorm:"not null;index" json:"menu_id"`
	Menu   *Menu `gorm:"foreignKey:MenuID;references:MenuID" json:"-"`
}
