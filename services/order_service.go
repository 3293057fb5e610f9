package services

import (
	"fmt"
	"time"

	"github.com/mayaya-dev/3awan-caferesto-api/entity"
	"github.com/mayaya-dev/3awan-caferesto-api/repository"
	"github.com/mayaya-dev/3awan-caferesto-api/validation"

	"gorm.io/gorm"
)

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	ItemRepo  *repository.OrderItemRepository
	MenuRepo  *repository.MenuRepository
	Validator *validation.Validator
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	itemRepo *repository.OrderItemRepository,
	menuRepo *repository.MenuRepository,
	v *validation.Validator,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, ItemRepo: itemRepo, MenuRepo: menuRepo, Validator: v}
}

func (s *OrderService) List() ([]entity.Order, error) {
	return s.Repo.FindAll(false)
}

func (s *OrderService) ListAll() ([]entity.Order, error) {
	return s.Repo.FindAll(true)
}

func (s *OrderService) Get(id uint) (*entity.Order, error) {
	o, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, translateNotFound(err, "Order not found")
	}
	return o, nil
}

// ----- Create -----

// Create inserts the order and its items in one transaction. Items sent
// without a price take the menu's current price.
func (s *OrderService) Create(data map[string]any) (*entity.Order, error) {
	in, err := s.Validator.Order(data, false)
	if err != nil {
		return nil, err
	}

	var created *entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		o := &entity.Order{
			OrderDate:    tx.NowFunc(),
			CustomerName: in.Fields.NullableString("customer_name"),
			Status:       entity.OrderPending,
		}
		if in.Fields.Has("status") {
			o.Status = entity.OrderStatus(in.Fields.String("status"))
		}
		if err := s.Repo.CreateOrder(tx, o); err != nil {
			return err
		}
		if err := s.insertItems(tx, o.OrderID, in.Items); err != nil {
			return err
		}

		var err error
		created, err = s.Repo.WithTx(tx).FindByID(o.OrderID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return created, nil
}

// ----- Update -----

// Update applies customer_name and status in place. When order_items is
// present the active items are replaced by the submitted list.
func (s *OrderService) Update(id uint, data map[string]any) (*entity.Order, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	in, err := s.Validator.Order(data, true)
	if err != nil {
		return nil, err
	}

	var updated *entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Update(tx, &entity.Order{OrderID: id}, in.Fields); err != nil {
			return err
		}
		if in.ReplacesItems() {
			if _, err := s.ItemRepo.SoftDeleteByOrder(tx, id, tx.NowFunc()); err != nil {
				return err
			}
			if err := s.insertItems(tx, id, in.Items); err != nil {
				return err
			}
		}

		var err error
		updated, err = s.Repo.WithTx(tx).FindByID(id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update order %d: %w", id, err)
	}
	return updated, nil
}

func (s *OrderService) insertItems(tx *gorm.DB, orderID uint, items []validation.Fields) error {
	menus := s.MenuRepo.WithTx(tx)
	for _, f := range items {
		price, err := menuPrice(menus, f)
		if err != nil {
			return err
		}
		oi := &entity.OrderItem{
			OrderID:  orderID,
			MenuID:   f.ID("menu_id"),
			Quantity: f.Int("quantity"),
			Price:    price,
		}
		if err := s.ItemRepo.Create(tx, oi); err != nil {
			return err
		}
	}
	return nil
}

// ----- Delete -----

// Delete cascades each mode to the order's items. Recovery restores only
// the items that were soft-deleted together with the order.
func (s *OrderService) Delete(id uint, mode DeleteMode) (string, error) {
	return deleteByMode(s.DB, "Order", id, mode, deleteCascade[entity.Order]{
		softDelete: func(tx *gorm.DB, o *entity.Order, at time.Time) error {
			_, err := s.ItemRepo.SoftDeleteByOrder(tx, o.OrderID, at)
			return err
		},
		recover: func(tx *gorm.DB, o *entity.Order) error {
			_, err := s.ItemRepo.RestoreByOrder(tx, o.OrderID, o.DeletedAt.Time)
			return err
		},
		hardDelete: func(tx *gorm.DB, o *entity.Order) error {
			return s.ItemRepo.PurgeByOrder(tx, o.OrderID)
		},
	})
}
