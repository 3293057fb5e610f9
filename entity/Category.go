package entity

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	CategoryID   uint           `gorm:"primaryKey;column:category_id" json:"category_id"`
	CategoryName string         `gorm:"size:100;not null" json:"category_name"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	Menus []Menu `gorm:"foreignKey:CategoryID;references:CategoryID" json:"-"`
}
