package validation

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mayaya-dev/3awan-caferesto-api/entity"

	"github.com/shopspring/decimal"
)

var (
	categoryRef = reference{entity: "Category", model: &entity.Category{}, column: "category_id"}
	menuRef     = reference{entity: "Menu", model: &entity.Menu{}, column: "menu_id"}
	orderRef    = reference{entity: "Order", model: &entity.Order{}, column: "order_id"}
)

// column limits: quantity is an INTEGER, prices are decimal(12,2)
var (
	maxQuantity = bound(math.MaxInt32)
	maxPrice    = func() *decimal.Decimal {
		d := decimal.RequireFromString("9999999999.99")
		return &d
	}()
)

func present(data map[string]any, field string) bool {
	_, ok := data[field]
	return ok
}

// Category validates category input. In partial mode absent fields are
// skipped.
func (v *Validator) Category(data map[string]any, partial bool) (Fields, error) {
	out := Fields{}
	required := !partial

	if present(data, "category_name") || required {
		name, err := v.validateString(data, "category_name", required, false, 100)
		if err != nil {
			return nil, err
		}
		out["category_name"] = name
	}
	return out, nil
}

func (v *Validator) Menu(data map[string]any, partial bool) (Fields, error) {
	out := Fields{}
	required := !partial

	if present(data, "menu_name") || required {
		name, err := v.validateString(data, "menu_name", required, false, 100)
		if err != nil {
			return nil, err
		}
		out["menu_name"] = name
	}
	if present(data, "description") {
		desc, err := v.validateString(data, "description", false, true, 0)
		if err != nil {
			return nil, err
		}
		out["description"] = desc
	}
	if present(data, "price") || required {
		price, _, err := validateNumber(data, "price", numberRule{required: required, min: bound(0), max: maxPrice})
		if err != nil {
			return nil, err
		}
		out["price"] = price
	}
	if present(data, "category_id") || required {
		id, _, err := v.validateForeignKey(data, "category_id", categoryRef, required)
		if err != nil {
			return nil, err
		}
		out["category_id"] = id
	}
	if present(data, "image_url") {
		img, err := v.validateString(data, "image_url", false, true, 255)
		if err != nil {
			return nil, err
		}
		out["image_url"] = img
	}
	return out, nil
}

// OrderItem validates a standalone order item, which must name its order.
func (v *Validator) OrderItem(data map[string]any, partial bool) (Fields, error) {
	out := Fields{}
	required := !partial

	if present(data, "order_id") || required {
		id, _, err := v.validateForeignKey(data, "order_id", orderRef, required)
		if err != nil {
			return nil, err
		}
		out["order_id"] = id
	}
	if present(data, "menu_id") || required {
		id, _, err := v.validateForeignKey(data, "menu_id", menuRef, required)
		if err != nil {
			return nil, err
		}
		out["menu_id"] = id
	}
	if present(data, "quantity") || required {
		qty, _, err := validateNumber(data, "quantity", numberRule{required: required, integer: true, min: bound(1), max: maxQuantity})
		if err != nil {
			return nil, err
		}
		out["quantity"] = int(qty.IntPart())
	}
	if present(data, "price") {
		price, _, err := validateNumber(data, "price", numberRule{min: bound(0), max: maxPrice})
		if err != nil {
			return nil, err
		}
		out["price"] = price
	}
	return out, nil
}

// OrderInput is a validated order payload. Items is nil when the payload
// did not carry order_items, which leaves existing items untouched on
// update.
type OrderInput struct {
	Fields Fields
	Items  []Fields
}

func (in *OrderInput) ReplacesItems() bool {
	return in.Items != nil
}

func (v *Validator) Order(data map[string]any, partial bool) (*OrderInput, error) {
	in := &OrderInput{Fields: Fields{}}
	required := !partial

	if present(data, "customer_name") {
		name, err := v.validateString(data, "customer_name", false, true, 100)
		if err != nil {
			return nil, err
		}
		in.Fields["customer_name"] = name
	}

	statuses := make([]string, 0, len(entity.OrderStatuses))
	for _, s := range entity.OrderStatuses {
		statuses = append(statuses, string(s))
	}
	status, ok, err := validateEnum(data, "status", statuses, false)
	if err != nil {
		return nil, err
	}
	if ok {
		in.Fields["status"] = status
	}

	raw, ok := data["order_items"]
	if !ok {
		if required {
			return nil, &ValidationError{Field: "order_items", Message: "order_items is required"}
		}
		return in, nil
	}
	list, isList := raw.([]any)
	if !isList {
		return nil, &ValidationError{Field: "order_items", Message: "order_items must be a list"}
	}
	if len(list) == 0 {
		return nil, &ValidationError{Field: "order_items", Message: "order_items must contain at least one item"}
	}

	in.Items = make([]Fields, 0, len(list))
	for i, it := range list {
		obj, isObject := it.(map[string]any)
		if !isObject {
			return nil, &ValidationError{Field: fmt.Sprintf("order_items[%d]", i), Message: "Each order item must be an object"}
		}
		item, err := v.orderLine(obj)
		if err != nil {
			var ve *ValidationError
			if errors.As(err, &ve) {
				field := fmt.Sprintf("order_items[%d].%s", i, ve.Field)
				if strings.HasPrefix(ve.Message, ve.Field+" ") {
					ve.Message = field + strings.TrimPrefix(ve.Message, ve.Field)
				}
				ve.Field = field
			}
			return nil, err
		}
		in.Items = append(in.Items, item)
	}
	return in, nil
}

// orderLine validates one nested item. order_id is assigned by the order
// transaction, so only menu_id and quantity are required.
func (v *Validator) orderLine(data map[string]any) (Fields, error) {
	out := Fields{}

	menuID, _, err := v.validateForeignKey(data, "menu_id", menuRef, true)
	if err != nil {
		return nil, err
	}
	out["menu_id"] = menuID

	qty, _, err := validateNumber(data, "quantity", numberRule{required: true, integer: true, min: bound(1), max: maxQuantity})
	if err != nil {
		return nil, err
	}
	out["quantity"] = int(qty.IntPart())

	if present(data, "price") {
		price, _, err := validateNumber(data, "price", numberRule{min: bound(0), max: maxPrice})
		if err != nil {
			return nil, err
		}
		out["price"] = price
	}
	return out, nil
}
