package services

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mayaya-dev/3awan-caferesto-api/entity"
	"github.com/mayaya-dev/3awan-caferesto-api/pkg/testdb"
	"github.com/mayaya-dev/3awan-caferesto-api/repository"
	"github.com/mayaya-dev/3awan-caferesto-api/validation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db         *gorm.DB
	categories *CategoryService
	menus      *MenuService
	orders     *OrderService
	items      *OrderItemService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.Open(t)
	v := validation.New(db)
	menuRepo := repository.NewMenuRepository(db)
	itemRepo := repository.NewOrderItemRepository(db)
	return &fixture{
		db:         db,
		categories: NewCategoryService(db, repository.NewCategoryRepository(db), v),
		menus:      NewMenuService(db, menuRepo, v),
		orders:     NewOrderService(db, repository.NewOrderRepository(db), itemRepo, menuRepo, v),
		items:      NewOrderItemService(db, itemRepo, menuRepo, v),
	}
}

func payload(t *testing.T, body string) map[string]any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var out map[string]any
	require.NoError(t, dec.Decode(&out))
	return out
}

func countUnscoped(t *testing.T, db *gorm.DB, model any, where string, args ...any) int64 {
	t.Helper()
	var n int64
	q := db.Unscoped().Model(model)
	if where != "" {
		q = q.Where(where, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

func TestOrderCreate_SnapshotsMenuPrice(t *testing.T) {
	f := newFixture(t)
	cat := testdb.Category(t, f.db, "Food")
	menu := testdb.Menu(t, f.db, cat.CategoryID, "Nasi Goreng", 15000)

	o, err := f.orders.Create(payload(t, `{"customer_name":"Ari","order_items":[{"menu_id":`+itoa(menu.MenuID)+`,"quantity":2}]}`))
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, o.Status)
	require.NotNil(t, o.CustomerName)
	assert.Equal(t, "Ari", *o.CustomerName)
	assert.False(t, o.OrderDate.IsZero())
	require.Len(t, o.OrderItems, 1)
	assert.Equal(t, 2, o.OrderItems[0].Quantity)
	assert.True(t, o.OrderItems[0].Price.Equal(decimal.NewFromInt(15000)))
	require.NotNil(t, o.OrderItems[0].Menu)
	assert.Equal(t, "Nasi Goreng", o.OrderItems[0].Menu.MenuName)

	_, err = f.menus.Update(menu.MenuID, payload(t, `{"price":20000}`))
	require.NoError(t, err)

	again, err := f.orders.Get(o.OrderID)
	require.NoError(t, err)
	assert.True(t, again.OrderItems[0].Price.Equal(decimal.NewFromInt(15000)))
}

func TestOrderCreate_ExplicitPriceAndStatus(t *testing.T) {
	f := newFixture(t)
	cat := testdb.Category(t, f.db, "Coffee")
	menu := testdb.Menu(t, f.db, cat.CategoryID, "Latte", 25000)

	o, err := f.orders.Create(payload(t, `{"status":"preparing","order_items":[{"menu_id":`+itoa(menu.MenuID)+`,"quantity":1,"price":"12500.50"}]}`))
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPreparing, o.Status)
	assert.Nil(t, o.CustomerName)
	require.Len(t, o.OrderItems, 1)
	assert.True(t, o.OrderItems[0].Price.Equal(decimal.RequireFromString("12500.5")))
}

func TestOrderCreate_InvalidPayloadWritesNothing(t *testing.T) {
	f := newFixture(t)

	_, err := f.orders.Create(payload(t, `{"customer_name":"Ari","order_items":[{"menu_id":404,"quantity":1}]}`))
	var ve *validation.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Referenced Menu with id 404 not found", ve.Message)
	assert.Zero(t, countUnscoped(t, f.db, &entity.Order{}, ""))
}

func TestOrderCreate_MissingMenuRollsBack(t *testing.T) {
	f := newFixture(t)
	cat := testdb.Category(t, f.db, "Food")
	menu := testdb.Menu(t, f.db, cat.CategoryID, "Soto", 20000)

	// the second menu vanishes between validation and the write
	err := f.db.Transaction(func(tx *gorm.DB) error {
		o := &entity.Order{OrderDate: tx.NowFunc(), Status: entity.OrderPending}
		if err := f.orders.Repo.CreateOrder(tx, o); err != nil {
			return err
		}
		return f.orders.insertItems(tx, o.OrderID, []validation.Fields{
			{"menu_id": menu.MenuID, "quantity": 1},
			{"menu_id": uint(999), "quantity": 1},
		})
	})
	var ve *validation.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Menu id 999 not found", ve.Message)

	assert.Zero(t, countUnscoped(t, f.db, &entity.Order{}, ""))
	assert.Zero(t, countUnscoped(t, f.db, &entity.OrderItem{}, ""))
}

func TestOrderUpdate_ReplacesItems(t *testing.T) {
	f := newFixture(t)
	cat := testdb.Category(t, f.db, "Food")
	a := testdb.Menu(t, f.db, cat.CategoryID, "A", 1000)
	b := testdb.Menu(t, f.db, cat.CategoryID, "B", 2000)

	o, err := f.orders.Create(payload(t, `{"order_items":[{"menu_id":`+itoa(a.MenuID)+`,"quantity":1},{"menu_id":`+itoa(b.MenuID)+`,"quantity":2}]}`))
	require.NoError(t, err)
	require.Len(t, o.OrderItems, 2)

	updated, err := f.orders.Update(o.OrderID, payload(t, `{"customer_name":"Budi","order_items":[{"menu_id":`+itoa(b.MenuID)+`,"quantity":5}]}`))
	require.NoError(t, err)
	require.NotNil(t, updated.CustomerName)
	assert.Equal(t, "Budi", *updated.CustomerName)
	require.Len(t, updated.OrderItems, 1)
	assert.Equal(t, b.MenuID, updated.OrderItems[0].MenuID)
	assert.Equal(t, 5, updated.OrderItems[0].Quantity)
	assert.True(t, updated.UpdatedAt.After(o.UpdatedAt) || updated.UpdatedAt.Equal(o.UpdatedAt))

	var removed []entity.OrderItem
	require.NoError(t, f.db.Unscoped().Where("order_id = ? AND deleted_at IS NOT NULL", o.OrderID).Find(&removed).Error)
	require.Len(t, removed, 2)
	assert.True(t, removed[0].DeletedAt.Time.Equal(removed[1].DeletedAt.Time))
}

func TestOrderUpdate_WithoutItemsKeepsItems(t *testing.T) {
	f := newFixture(t)
	cat := testdb.Category(t, f.db, "Food")
	menu := testdb.Menu(t, f.db, cat.CategoryID, "A", 1000)

	o, err := f.orders.Create(payload(t, `{"customer_name":"Ari","order_items":[{"menu_id":`+itoa(menu.MenuID)+`,"quantity":3}]}`))
	require.NoError(t, err)

	updated, err := f.orders.Update(o.OrderID, payload(t, `{"status":"paid","customer_name":null}`))
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPaid, updated.Status)
	assert.Nil(t, updated.CustomerName)
	require.Len(t, updated.OrderItems, 1)
	assert.Equal(t, o.OrderItems[0].OrderItemID, updated.OrderItems[0].OrderItemID)
}

func TestOrderUpdate_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.orders.Update(42, payload(t, `{"status":"paid"}`))
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Order not found", nf.Message)
}

func TestOrderDelete_CascadesToItems(t *testing.T) {
	f := newFixture(t)
	cat := testdb.Category(t, f.db, "Food")
	menu := testdb.Menu(t, f.db, cat.CategoryID, "A", 1000)

	o, err := f.orders.Create(payload(t, `{"order_items":[{"menu_id":`+itoa(menu.MenuID)+`,"quantity":1}]}`))
	require.NoError(t, err)
	replaced := o.OrderItems[0].OrderItemID
	o, err = f.orders.Update(o.OrderID, payload(t, `{"order_items":[{"menu_id":`+itoa(menu.MenuID)+`,"quantity":2},{"menu_id":`+itoa(menu.MenuID)+`,"quantity":3}]}`))
	require.NoError(t, err)

	detail, err := f.orders.Delete(o.OrderID, SoftDelete)
	require.NoError(t, err)
	assert.Equal(t, "Order soft deleted", detail)

	_, err = f.orders.Get(o.OrderID)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	active, err := f.items.List()
	require.NoError(t, err)
	assert.Empty(t, active)

	detail, err = f.orders.Delete(o.OrderID, RecoverDeleted)
	require.NoError(t, err)
	assert.Equal(t, "Order recovered", detail)

	back, err := f.orders.Get(o.OrderID)
	require.NoError(t, err)
	require.Len(t, back.OrderItems, 2)
	for _, it := range back.OrderItems {
		assert.NotEqual(t, replaced, it.OrderItemID)
	}

	_, err = f.orders.Delete(o.OrderID, SoftDelete)
	require.NoError(t, err)
	detail, err = f.orders.Delete(o.OrderID, HardDelete)
	require.NoError(t, err)
	assert.Equal(t, "Order hard deleted", detail)
	assert.Zero(t, countUnscoped(t, f.db, &entity.Order{}, ""))
	assert.Zero(t, countUnscoped(t, f.db, &entity.OrderItem{}, ""))
}

func TestDeleteModes(t *testing.T) {
	f := newFixture(t)
	cat := testdb.Category(t, f.db, "Snacks")

	notFound := func(t *testing.T, err error, msg string) {
		t.Helper()
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, msg, nf.Message)
	}

	_, err := f.categories.Delete(cat.CategoryID, HardDelete)
	notFound(t, err, "Category not found or not soft-deleted")
	_, err = f.categories.Delete(cat.CategoryID, RecoverDeleted)
	notFound(t, err, "Category not found or not deleted")

	detail, err := f.categories.Delete(cat.CategoryID, SoftDelete)
	require.NoError(t, err)
	assert.Equal(t, "Category soft deleted", detail)
	_, err = f.categories.Delete(cat.CategoryID, SoftDelete)
	notFound(t, err, "Category not found")

	all, err := f.categories.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].DeletedAt.Valid)
	active, err := f.categories.List()
	require.NoError(t, err)
	assert.Empty(t, active)

	_, err = f.categories.Delete(cat.CategoryID, DeleteMode(4))
	assert.ErrorIs(t, err, ErrInvalidDeleteType)

	detail, err = f.categories.Delete(cat.CategoryID, HardDelete)
	require.NoError(t, err)
	assert.Equal(t, "Category hard deleted", detail)
	assert.Zero(t, countUnscoped(t, f.db, &entity.Category{}, ""))
}

func TestParseDeleteMode(t *testing.T) {
	for raw, want := range map[string]DeleteMode{"1": SoftDelete, "2": RecoverDeleted, "3": HardDelete} {
		got, err := ParseDeleteMode(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for _, raw := range []string{"0", "4", "abc", ""} {
		_, err := ParseDeleteMode(raw)
		assert.ErrorIs(t, err, ErrInvalidDeleteType, raw)
	}
}

func TestCategorySoftDeleteLeavesMenus(t *testing.T) {
	f := newFixture(t)
	cat := testdb.Category(t, f.db, "Seasonal")
	menu := testdb.Menu(t, f.db, cat.CategoryID, "Pumpkin Latte", 30000)

	_, err := f.categories.Delete(cat.CategoryID, SoftDelete)
	require.NoError(t, err)

	m, err := f.menus.Get(menu.MenuID)
	require.NoError(t, err)
	assert.False(t, m.DeletedAt.Valid)
	require.NotNil(t, m.Category)
	assert.Equal(t, "Seasonal", m.Category.CategoryName)

	listed, err := f.menus.List(nil)
	require.NoError(t, err)
	assert.Empty(t, listed)
	all, err := f.menus.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = f.menus.Create(payload(t, `{"menu_name":"Cider","price":1,"category_id":`+itoa(cat.CategoryID)+`}`))
	var ve *validation.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Referenced Category with id "+itoa(cat.CategoryID)+" not found", ve.Message)
}

func TestMenuListByCategory(t *testing.T) {
	f := newFixture(t)
	coffee := testdb.Category(t, f.db, "Coffee")
	food := testdb.Category(t, f.db, "Food")
	testdb.Menu(t, f.db, coffee.CategoryID, "Espresso", 18000)
	testdb.Menu(t, f.db, food.CategoryID, "Roti", 12000)

	menus, err := f.menus.List(&coffee.CategoryID)
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Equal(t, "Espresso", menus[0].MenuName)
	require.NotNil(t, menus[0].Category)
	assert.Equal(t, "Coffee", menus[0].Category.CategoryName)
}

func TestMenuCreateAndUpdate(t *testing.T) {
	f := newFixture(t)
	cat := testdb.Category(t, f.db, "Coffee")

	m, err := f.menus.Create(payload(t, `{"menu_name":"Mocha","description":"chocolate","price":"27000","category_id":`+itoa(cat.CategoryID)+`}`))
	require.NoError(t, err)
	require.NotNil(t, m.Description)
	assert.Equal(t, "chocolate", *m.Description)
	require.NotNil(t, m.Category)

	m, err = f.menus.Update(m.MenuID, payload(t, `{"description":null,"image_url":"mocha.png"}`))
	require.NoError(t, err)
	assert.Nil(t, m.Description)
	require.NotNil(t, m.ImageURL)
	assert.Equal(t, "mocha.png", *m.ImageURL)
	assert.Equal(t, "Mocha", m.MenuName)
	assert.True(t, m.Price.Equal(decimal.NewFromInt(27000)))
}

func TestOrderItemCreate_DefaultsPrice(t *testing.T) {
	f := newFixture(t)
	cat := testdb.Category(t, f.db, "Food")
	menu := testdb.Menu(t, f.db, cat.CategoryID, "Bakso", 17000)
	o, err := f.orders.Create(payload(t, `{"order_items":[{"menu_id":`+itoa(menu.MenuID)+`,"quantity":1}]}`))
	require.NoError(t, err)

	oi, err := f.items.Create(payload(t, `{"order_id":`+itoa(o.OrderID)+`,"menu_id":`+itoa(menu.MenuID)+`,"quantity":4}`))
	require.NoError(t, err)
	assert.True(t, oi.Price.Equal(decimal.NewFromInt(17000)))
	require.NotNil(t, oi.Menu)
	assert.Equal(t, "Bakso", oi.Menu.MenuName)

	oi, err = f.items.Update(oi.OrderItemID, payload(t, `{"quantity":"6"}`))
	require.NoError(t, err)
	assert.Equal(t, 6, oi.Quantity)

	_, err = f.items.Update(oi.OrderItemID, payload(t, `{"quantity":0}`))
	var ve *validation.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "quantity must be at least 1", ve.Message)

	detail, err := f.items.Delete(oi.OrderItemID, SoftDelete)
	require.NoError(t, err)
	assert.Equal(t, "OrderItem soft deleted", detail)
	_, err = f.items.Get(oi.OrderItemID)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "OrderItem not found", nf.Message)
}
