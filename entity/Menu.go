package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Menu struct {
	MenuID      uint            `gorm:"primaryKey;column:menu_id" json:"menu_id"`
	MenuName    string          `gorm:"size:100;not null" json:"menu_name"`
	Description *string         `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	ImageURL    *string         `gorm:"column:image_url;size:255" json:"image_url"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"deleted_at"`

	CategoryID uint      `gorm:"not null;index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID;references:CategoryID" json:"-"` // preload only when serializing

	OrderItems []OrderItem `gorm:"foreignKey:MenuID;references:MenuID" json:"-"`
}
