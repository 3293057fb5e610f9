// Package validation checks raw JSON payloads and turns them into
// validated column mappings ready for storage.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ValidationError is returned for malformed, missing or out-of-range input
// and for foreign keys that do not resolve to an active row.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func fieldError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: field + " " + fmt.Sprintf(format, args...)}
}

// Fields maps column names to validated values. A nil value means the
// column is explicitly set to NULL.
type Fields map[string]any

func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

func (f Fields) String(key string) string {
	s, _ := f[key].(string)
	return s
}

func (f Fields) NullableString(key string) *string {
	s, ok := f[key].(string)
	if !ok {
		return nil
	}
	return &s
}

func (f Fields) Decimal(key string) (decimal.Decimal, bool) {
	d, ok := f[key].(decimal.Decimal)
	return d, ok
}

func (f Fields) ID(key string) uint {
	id, _ := f[key].(uint)
	return id
}

func (f Fields) Int(key string) int {
	n, _ := f[key].(int)
	return n
}

// Validator runs field rules. Foreign keys are resolved through db, which
// is never used inside a write transaction.
type Validator struct {
	db    *gorm.DB
	rules *validator.Validate
}

func New(db *gorm.DB) *Validator {
	return &Validator{db: db, rules: validator.New()}
}

// validateString returns nil for an explicit null on a nullable column.
// Columns that are not nullable reject null even in partial mode.
func (v *Validator) validateString(data map[string]any, field string, required, nullable bool, maxLen int) (any, error) {
	raw, ok := data[field]
	if !ok {
		if required {
			return nil, fieldError(field, "is required")
		}
		return nil, nil
	}
	if raw == nil {
		if required || !nullable {
			return nil, fieldError(field, "must be a string")
		}
		return nil, nil
	}
	s, isString := raw.(string)
	if !isString {
		return nil, fieldError(field, "must be a string")
	}
	if maxLen > 0 {
		if err := v.rules.Var(s, fmt.Sprintf("max=%d", maxLen)); err != nil {
			return nil, fieldError(field, "must be no longer than %d characters", maxLen)
		}
	}
	return s, nil
}

type numberRule struct {
	required bool
	integer  bool
	min      *decimal.Decimal
	max      *decimal.Decimal
}

func bound(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

// validateNumber returns (value, present, error).
func validateNumber(data map[string]any, field string, rule numberRule) (decimal.Decimal, bool, error) {
	raw, ok := data[field]
	if !ok {
		if rule.required {
			return decimal.Decimal{}, false, fieldError(field, "is required")
		}
		return decimal.Decimal{}, false, nil
	}
	d, err := toDecimal(raw)
	if err != nil || (rule.integer && !d.IsInteger()) {
		return decimal.Decimal{}, true, fieldError(field, "must be a valid number")
	}
	if rule.min != nil && d.LessThan(*rule.min) {
		return decimal.Decimal{}, true, fieldError(field, "must be at least %s", rule.min.String())
	}
	if rule.max != nil && d.GreaterThan(*rule.max) {
		return decimal.Decimal{}, true, fieldError(field, "must be no more than %s", rule.max.String())
	}
	return d, true, nil
}

func toDecimal(raw any) (decimal.Decimal, error) {
	switch n := raw.(type) {
	case json.Number:
		return decimal.NewFromString(n.String())
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Decimal{}, errors.New("not a finite number")
		}
		return decimal.NewFromFloat(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(n))
	default:
		return decimal.Decimal{}, fmt.Errorf("unsupported number type %T", raw)
	}
}

// parseID accepts integers and numeric strings.
func parseID(raw any) (int64, bool) {
	switch n := raw.(type) {
	case json.Number:
		id, err := n.Int64()
		return id, err == nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case string:
		id, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return id, err == nil
	default:
		return 0, false
	}
}

// reference names the table behind a foreign key field.
type reference struct {
	entity string // used in messages, e.g. "Category"
	model  any
	column string
}

func (v *Validator) validateForeignKey(data map[string]any, field string, ref reference, required bool) (uint, bool, error) {
	raw, ok := data[field]
	if !ok {
		if required {
			return 0, false, fieldError(field, "is required")
		}
		return 0, false, nil
	}
	id, valid := parseID(raw)
	if raw == nil || !valid {
		return 0, true, fieldError(field, "must be a valid ID")
	}

	notFound := &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("Referenced %s with id %v not found", ref.entity, raw),
	}
	if id <= 0 {
		return 0, true, notFound
	}

	var count int64
	// the default scope keeps soft-deleted parents out
	if err := v.db.Model(ref.model).Where(ref.column+" = ?", id).Count(&count).Error; err != nil {
		return 0, true, fmt.Errorf("resolve %s: %w", field, err)
	}
	if count == 0 {
		return 0, true, notFound
	}
	return uint(id), true, nil
}

func validateEnum(data map[string]any, field string, allowed []string, required bool) (string, bool, error) {
	raw, ok := data[field]
	if !ok {
		if required {
			return "", false, fieldError(field, "is required")
		}
		return "", false, nil
	}
	if raw == nil && !required {
		// null leaves the column unchanged
		return "", false, nil
	}
	s, isString := raw.(string)
	if !isString {
		return "", true, fieldError(field, "must be a string")
	}
	for _, a := range allowed {
		if s == a {
			return s, true, nil
		}
	}
	return "", true, fieldError(field, "must be one of: %s", strings.Join(allowed, ", "))
}
