// repository/soft_delete.go
package repository

import (
	"time"

	"gorm.io/gorm"
)

// FindActive loads a row whose deleted_at is NULL.
func FindActive[T any](db *gorm.DB, id uint) (*T, error) {
	var row T
	if err := db.First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// FindDeleted loads a row that has been soft-deleted.
func FindDeleted[T any](db *gorm.DB, id uint) (*T, error) {
	var row T
	if err := db.Unscoped().Where("deleted_at IS NOT NULL").First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func MarkDeleted[T any](tx *gorm.DB, row *T, at time.Time) error {
	return tx.Model(row).Update("deleted_at", at).Error
}

func Restore[T any](tx *gorm.DB, row *T) error {
	return tx.Unscoped().Model(row).Update("deleted_at", nil).Error
}

// Purge removes the row permanently.
func Purge[T any](tx *gorm.DB, row *T) error {
	return tx.Unscoped().Delete(row).Error
}

func unscoped(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}
