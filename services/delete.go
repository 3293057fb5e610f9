package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/mayaya-dev/3awan-caferesto-api/repository"

	"gorm.io/gorm"
)

type DeleteMode int

const (
	SoftDelete     DeleteMode = 1
	RecoverDeleted DeleteMode = 2
	HardDelete     DeleteMode = 3
)

// ParseDeleteMode reads the {mode} path segment.
func ParseDeleteMode(raw string) (DeleteMode, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrInvalidDeleteType
	}
	mode := DeleteMode(n)
	if !mode.valid() {
		return 0, ErrInvalidDeleteType
	}
	return mode, nil
}

func (m DeleteMode) valid() bool {
	return m == SoftDelete || m == RecoverDeleted || m == HardDelete
}

// deleteCascade runs inside the delete transaction before the row itself
// changes. Any hook may be nil.
type deleteCascade[T any] struct {
	softDelete func(tx *gorm.DB, row *T, at time.Time) error
	recover    func(tx *gorm.DB, row *T) error
	hardDelete func(tx *gorm.DB, row *T) error
}

// deleteByMode applies the three-mode delete contract to one row of T and
// returns the detail message for the response.
func deleteByMode[T any](db *gorm.DB, name string, id uint, mode DeleteMode, cascade deleteCascade[T]) (string, error) {
	if !mode.valid() {
		return "", ErrInvalidDeleteType
	}

	var detail string
	err := db.Transaction(func(tx *gorm.DB) error {
		switch mode {
		case SoftDelete:
			row, err := repository.FindActive[T](tx, id)
			if err != nil {
				return translateNotFound(err, name+" not found")
			}
			at := tx.NowFunc()
			if cascade.softDelete != nil {
				if err := cascade.softDelete(tx, row, at); err != nil {
					return err
				}
			}
			if err := repository.MarkDeleted(tx, row, at); err != nil {
				return err
			}
			detail = name + " soft deleted"

		case RecoverDeleted:
			row, err := repository.FindDeleted[T](tx, id)
			if err != nil {
				return translateNotFound(err, name+" not found or not deleted")
			}
			if cascade.recover != nil {
				if err := cascade.recover(tx, row); err != nil {
					return err
				}
			}
			if err := repository.Restore(tx, row); err != nil {
				return err
			}
			detail = name + " recovered"

		case HardDelete:
			row, err := repository.FindDeleted[T](tx, id)
			if err != nil {
				return translateNotFound(err, name+" not found or not soft-deleted")
			}
			if cascade.hardDelete != nil {
				if err := cascade.hardDelete(tx, row); err != nil {
					return err
				}
			}
			if err := repository.Purge(tx, row); err != nil {
				return err
			}
			detail = name + " hard deleted"
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return detail, nil
}
