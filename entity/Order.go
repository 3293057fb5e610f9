package entity

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderServed    OrderStatus = "served"
	OrderPaid      OrderStatus = "paid"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists the accepted wire values in display order.
var OrderStatuses = []OrderStatus{OrderPending, OrderPreparing, OrderServed, OrderPaid, OrderCancelled}

type Order struct {
	OrderID      uint           `gorm:"primaryKey;column:order_id" json:"order_id"`
	OrderDate    time.Time      `gorm:"not null" json:"order_date"`
	CustomerName *string        `gorm:"size:100" json:"customer_name"`
	Status       OrderStatus    `gorm:"size:20;not null;default:pending" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	// active items only; see repository preloads
	OrderItems []OrderItem `gorm:"foreignKey:OrderID;references:OrderID" json:"-"`
}
