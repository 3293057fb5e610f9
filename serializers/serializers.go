// Package serializers maps entities to their JSON transport shape.
package serializers

import (
	"strings"
	"time"
	_ "time/tzdata" // tz names must resolve on hosts without zoneinfo

	"github.com/mayaya-dev/3awan-caferesto-api/entity"

	"gorm.io/gorm"
)

type TZStyle string

const (
	StyleOffset TZStyle = "offset" // +07:00, +00:00
	StyleZ      TZStyle = "z"      // Z when the instant is at offset zero
)

const baseLayout = "2006-01-02T15:04:05.999999"

// TimeFormat controls how timestamps are rendered. The zero value renders
// UTC with a numeric offset.
type TimeFormat struct {
	Location *time.Location
	Style    TZStyle
}

// NewTimeFormat resolves the tz and tz_style query values. An unknown zone
// name falls back to UTC rather than failing the response.
func NewTimeFormat(tzName, style string) TimeFormat {
	f := TimeFormat{Location: time.UTC, Style: StyleOffset}
	if strings.EqualFold(strings.TrimSpace(style), string(StyleZ)) {
		f.Style = StyleZ
	}
	if tzName = strings.TrimSpace(tzName); tzName != "" {
		if loc, err := time.LoadLocation(tzName); err == nil {
			f.Location = loc
		}
	}
	return f
}

func (f TimeFormat) Format(t time.Time) string {
	loc := f.Location
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	if _, offset := t.Zone(); offset == 0 && f.Style == StyleZ {
		return t.Format(baseLayout + "Z")
	}
	return t.Format(baseLayout + "-07:00")
}

func (f TimeFormat) formatPtr(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := f.Format(t)
	return &s
}

func (f TimeFormat) formatDeleted(d gorm.DeletedAt) *string {
	if !d.Valid {
		return nil
	}
	return f.formatPtr(d.Time)
}

type CategoryResponse struct {
	CategoryID   uint    `json:"category_id"`
	CategoryName string  `json:"category_name"`
	CreatedAt    *string `json:"created_at"`
	UpdatedAt    *string `json:"updated_at"`
	DeletedAt    *string `json:"deleted_at"`
}

type MenuResponse struct {
	MenuID      uint              `json:"menu_id"`
	MenuName    string            `json:"menu_name"`
	Description *string           `json:"description"`
	Price       float64           `json:"price"`
	CategoryID  uint              `json:"category_id"`
	ImageURL    *string           `json:"image_url"`
	CreatedAt   *string           `json:"created_at"`
	UpdatedAt   *string           `json:"updated_at"`
	DeletedAt   *string           `json:"deleted_at"`
	Category    *CategoryResponse `json:"category,omitempty"`
}

type OrderItemResponse struct {
	OrderItemID uint          `json:"order_item_id"`
	OrderID     uint          `json:"order_id"`
	MenuID      uint          `json:"menu_id"`
	Quantity    int           `json:"quantity"`
	Price       float64       `json:"price"`
	CreatedAt   *string       `json:"created_at"`
	UpdatedAt   *string       `json:"updated_at"`
	DeletedAt   *string       `json:"deleted_at"`
	Menu        *MenuResponse `json:"menu,omitempty"`
}

type OrderResponse struct {
	OrderID      uint                `json:"order_id"`
	OrderDate    *string             `json:"order_date"`
	CustomerName *string             `json:"customer_name"`
	Status       string              `json:"status"`
	CreatedAt    *string             `json:"created_at"`
	UpdatedAt    *string             `json:"updated_at"`
	DeletedAt    *string             `json:"deleted_at"`
	OrderItems   []OrderItemResponse `json:"order_items"`
}

func Category(c *entity.Category, f TimeFormat) CategoryResponse {
	return CategoryResponse{
		CategoryID:   c.CategoryID,
		CategoryName: c.CategoryName,
		CreatedAt:    f.formatPtr(c.CreatedAt),
		UpdatedAt:    f.formatPtr(c.UpdatedAt),
		DeletedAt:    f.formatDeleted(c.DeletedAt),
	}
}

func Categories(cs []entity.Category, f TimeFormat) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cs))
	for i := range cs {
		out = append(out, Category(&cs[i], f))
	}
	return out
}

// Menu embeds the category when it was preloaded.
func Menu(m *entity.Menu, f TimeFormat) MenuResponse {
	out := MenuResponse{
		MenuID:      m.MenuID,
		MenuName:    m.MenuName,
		Description: m.Description,
		Price:       m.Price.InexactFloat64(),
		CategoryID:  m.CategoryID,
		ImageURL:    m.ImageURL,
		CreatedAt:   f.formatPtr(m.CreatedAt),
		UpdatedAt:   f.formatPtr(m.UpdatedAt),
		DeletedAt:   f.formatDeleted(m.DeletedAt),
	}
	if m.Category != nil {
		c := Category(m.Category, f)
		out.Category = &c
	}
	return out
}

func Menus(ms []entity.Menu, f TimeFormat) []MenuResponse {
	out := make([]MenuResponse, 0, len(ms))
	for i := range ms {
		out = append(out, Menu(&ms[i], f))
	}
	return out
}

func OrderItem(oi *entity.OrderItem, f TimeFormat) OrderItemResponse {
	out := OrderItemResponse{
		OrderItemID: oi.OrderItemID,
		OrderID:     oi.OrderID,
		MenuID:      oi.MenuID,
		Quantity:    oi.Quantity,
		Price:       oi.Price.InexactFloat64(),
		CreatedAt:   f.formatPtr(oi.CreatedAt),
		UpdatedAt:   f.formatPtr(oi.UpdatedAt),
		DeletedAt:   f.formatDeleted(oi.DeletedAt),
	}
	if oi.Menu != nil {
		m := Menu(oi.Menu, f)
		out.Menu = &m
	}
	return out
}

func OrderItems(items []entity.OrderItem, f TimeFormat) []OrderItemResponse {
	out := make([]OrderItemResponse, 0, len(items))
	for i := range items {
		out = append(out, OrderItem(&items[i], f))
	}
	return out
}

// Order always carries an order_items list, empty when nothing is active.
func Order(o *entity.Order, f TimeFormat) OrderResponse {
	return OrderResponse{
		OrderID:      o.OrderID,
		OrderDate:    f.formatPtr(o.OrderDate),
		CustomerName: o.CustomerName,
		Status:       string(o.Status),
		CreatedAt:    f.formatPtr(o.CreatedAt),
		UpdatedAt:    f.formatPtr(o.UpdatedAt),
		DeletedAt:    f.formatDeleted(o.DeletedAt),
		OrderItems:   OrderItems(o.OrderItems, f),
	}
}

func Orders(orders []entity.Order, f TimeFormat) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, Order(&orders[i], f))
	}
	return out
}
