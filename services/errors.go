package services

import (
	"errors"

	"gorm.io/gorm"
)

// NotFoundError means the target row is absent or not in the soft-delete
// state the operation needs.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ErrInvalidDeleteType is returned for delete modes other than 1, 2 and 3.
var ErrInvalidDeleteType = errors.New("Invalid delete type")

// translateNotFound turns gorm's record-not-found into a NotFoundError and
// leaves every other error untouched.
func translateNotFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Message: msg}
	}
	return err
}
