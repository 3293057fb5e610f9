package services

import (
	"errors"
	"fmt"

	"github.com/mayaya-dev/3awan-caferesto-api/entity"
	"github.com/mayaya-dev/3awan-caferesto-api/repository"
	"github.com/mayaya-dev/3awan-caferesto-api/validation"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItemService struct {
	DB        *gorm.DB
	Repo      *repository.OrderItemRepository
	MenuRepo  *repository.MenuRepository
	Validator *validation.Validator
}

func NewOrderItemService(
	db *gorm.DB,
	repo *repository.OrderItemRepository,
	menuRepo *repository.MenuRepository,
	v *validation.Validator,
) *OrderItemService {
	return &OrderItemService{DB: db, Repo: repo, MenuRepo: menuRepo, Validator: v}
}

func (s *OrderItemService) List() ([]entity.OrderItem, error) {
	return s.Repo.FindAll(false)
}

func (s *OrderItemService) ListAll() ([]entity.OrderItem, error) {
	return s.Repo.FindAll(true)
}

func (s *OrderItemService) Get(id uint) (*entity.OrderItem, error) {
	oi, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, translateNotFound(err, "OrderItem not found")
	}
	return oi, nil
}

func (s *OrderItemService) Create(data map[string]any) (*entity.OrderItem, error) {
	fields, err := s.Validator.OrderItem(data, false)
	if err != nil {
		return nil, err
	}

	var created *entity.OrderItem
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		price, err := menuPrice(s.MenuRepo.WithTx(tx), fields)
		if err != nil {
			return err
		}
		oi := &entity.OrderItem{
			OrderID:  fields.ID("order_id"),
			MenuID:   fields.ID("menu_id"),
			Quantity: fields.Int("quantity"),
			Price:    price,
		}
		if err := s.Repo.Create(tx, oi); err != nil {
			return err
		}
		created, err = s.Repo.WithTx(tx).FindByID(oi.OrderItemID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create order item: %w", err)
	}
	return created, nil
}

// Update changes only the provided columns. A new menu_id does not reprice
// the item.
func (s *OrderItemService) Update(id uint, data map[string]any) (*entity.OrderItem, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	fields, err := s.Validator.OrderItem(data, true)
	if err != nil {
		return nil, err
	}

	var updated *entity.OrderItem
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Update(tx, &entity.OrderItem{OrderItemID: id}, fields); err != nil {
			return err
		}
		var err error
		updated, err = s.Repo.WithTx(tx).FindByID(id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update order item %d: %w", id, err)
	}
	return updated, nil
}

func (s *OrderItemService) Delete(id uint, mode DeleteMode) (string, error) {
	return deleteByMode(s.DB, "OrderItem", id, mode, deleteCascade[entity.OrderItem]{})
}

// menuPrice returns the submitted price, or the menu's current price when
// none was sent. The menu is read through the caller's transaction.
func menuPrice(menus *repository.MenuRepository, f validation.Fields) (decimal.Decimal, error) {
	if price, ok := f.Decimal("price"); ok {
		return price, nil
	}
	menuID := f.ID("menu_id")
	price, err := menus.FindActivePrice(menuID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Decimal{}, &validation.ValidationError{
			Field:   "menu_id",
			Message: fmt.Sprintf("Menu id %d not found", menuID),
		}
	}
	return price, err
}
