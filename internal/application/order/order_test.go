package order

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/catalog"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeStockRepo tracks stock levels and honors the conditional decrement.
type fakeStockRepo struct {
	stock map[string]int
}

func (f *fakeStockRepo) Create(*entity.Product) error            { return nil }
func (f *fakeStockRepo) GetByID(string) (*entity.Product, error) { return nil, nil }
func (f *fakeStockRepo) Update(*entity.Product) error            { return nil }
func (f *fakeStockRepo) Delete(string) error                     { return nil }
func (f *fakeStockRepo) Search(catalog.Filter, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeStockRepo) Count(catalog.Filter) (int, error) { return 0, nil }
func (f *fakeStockRepo) Brands() ([]string, error)         { return nil, nil }
func (f *fakeStockRepo) Categories() ([]string, error)     { return nil, nil }
func (f *fakeStockRepo) DecrementStock(id string, qty int) error {
	have, ok := f.stock[id]
	if !ok {
		return domain.ErrProductUnavailable
	}
	if have < qty {
		return domain.ErrInsufficientStock
	}
	f.stock[id] = have - qty
	return nil
}

// fakeOrderRepo holds orders in memory.
type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.Order{}}
}

func (f *fakeOrderRepo) Create(o *entity.Order) error {
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}
func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}
func (f *fakeOrderRepo) Update(o *entity.Order) error {
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}
func (f *fakeOrderRepo) ListByUser(userID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}
func (f *fakeOrderRepo) ListAll(int, int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, nil
}

// fakeTxRunner simulates rollback: order creation is discarded when fn errors.
type fakeTxRunner struct {
	products *fakeStockRepo
	orders   *fakeOrderRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.ProductRepository, repository.OrderRepository) error) error {
	stockBefore := map[string]int{}
	for k, v := range f.products.stock {
		stockBefore[k] = v
	}
	scratch := newFakeOrderRepo()
	if err := fn(f.products, scratch); err != nil {
		f.products.stock = stockBefore
		return err
	}
	for id, o := range scratch.orders {
		f.orders.orders[id] = o
	}
	return nil
}

// fakeUserRepo resolves a fixed set of users.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) Create(*entity.User) error { return nil }
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) GetByEmail(string) (*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) Update(*entity.User) error               { return nil }
func (f *fakeUserRepo) List(int, int) ([]*entity.User, error)   { return nil, nil }
func (f *fakeUserRepo) Delete(string) error                     { return nil }

type okValidator struct{}

func (okValidator) ValidateCapture(context.Context, entity.PaymentResult) error { return nil }

func li(id string, price float64, qty int) entity.LineItem {
	return entity.LineItem{ProductID: id, Name: "Item " + id, Price: decimal.NewFromFloat(price), Quantity: qty}
}

// ──────────────────────────────────────────────────────────────────────────────
// PlaceOrder
// ──────────────────────────────────────────────────────────────────────────────

func TestPlaceOrder_ComputesTotalsAndReservesStock(t *testing.T) {
	products := &fakeStockRepo{stock: map[string]int{"p1": 5, "p2": 5}}
	orders := newFakeOrderRepo()
	uc := NewPlaceOrderUseCase(&fakeTxRunner{products: products, orders: orders})

	out, err := uc.PlaceOrder(context.Background(), "u1", dto.PlaceOrderRequest{
		Items:       []entity.LineItem{li("p1", 20, 3), li("p2", 50, 1)},
		PaymentInfo: entity.PaymentInfo{PaymentMethod: "PayPal", Address: "123 Main St"},
	})
	require.NoError(t, err)

	assert.Equal(t, "110.00", out.ItemsPrice.StringFixed(2))
	assert.Equal(t, "15.00", out.ShippingPrice.StringFixed(2))
	assert.Equal(t, "16.50", out.TaxPrice.StringFixed(2))
	assert.Equal(t, "141.50", out.TotalPrice.StringFixed(2))
	assert.False(t, out.IsPaid)
	assert.False(t, out.IsDelivered)

	assert.Equal(t, 2, products.stock["p1"], "stock must drop by the ordered quantity")
	assert.Equal(t, 4, products.stock["p2"])
	assert.Len(t, orders.orders, 1)
}

// TestPlaceOrder_InsufficientStockRollsBack: one short line fails the whole
// order; no stock is consumed and nothing is persisted.
func TestPlaceOrder_InsufficientStockRollsBack(t *testing.T) {
	products := &fakeStockRepo{stock: map[string]int{"p1": 5, "p2": 0}}
	orders := newFakeOrderRepo()
	uc := NewPlaceOrderUseCase(&fakeTxRunner{products: products, orders: orders})

	_, err := uc.PlaceOrder(context.Background(), "u1", dto.PlaceOrderRequest{
		Items: []entity.LineItem{li("p1", 20, 3), li("p2", 50, 1)},
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 5, products.stock["p1"], "the partial decrement must roll back")
	assert.Empty(t, orders.orders)
}

func TestPlaceOrder_EmptyCartRejected(t *testing.T) {
	uc := NewPlaceOrderUseCase(&fakeTxRunner{products: &fakeStockRepo{stock: map[string]int{}}, orders: newFakeOrderRepo()})

	_, err := uc.PlaceOrder(context.Background(), "u1", dto.PlaceOrderRequest{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lifecycle: ownership, pay, deliver
// ──────────────────────────────────────────────────────────────────────────────

func seedOrder(t *testing.T, orders *fakeOrderRepo, id, userID string) {
	t.Helper()
	require.NoError(t, orders.Create(&entity.Order{
		ID:         id,
		UserID:     userID,
		TotalPrice: decimal.NewFromInt(100),
		CreatedAt:  time.Now(),
	}))
}

func TestLifecycle_GetEnforcesOwnership(t *testing.T) {
	orders := newFakeOrderRepo()
	seedOrder(t, orders, "o1", "owner")
	uc := NewLifecycleUseCase(orders, &fakeUserRepo{}, okValidator{})

	_, err := uc.Get("intruder", false, "o1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.Get("owner", false, "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", out.ID)

	out, err = uc.Get("someone-else", true, "o1")
	require.NoError(t, err, "admins may read any order")
	assert.Equal(t, "o1", out.ID)
}

func TestLifecycle_MarkPaid(t *testing.T) {
	orders := newFakeOrderRepo()
	seedOrder(t, orders, "o1", "owner")
	uc := NewLifecycleUseCase(orders, &fakeUserRepo{}, okValidator{})

	out, err := uc.MarkPaid(context.Background(), "owner", false, "o1", dto.PayOrderRequest{
		ID: "CAP-1", Status: "COMPLETED", EmailAddress: "owner@example.com",
	})
	require.NoError(t, err)
	assert.True(t, out.IsPaid)
	require.NotNil(t, out.PaidAt)

	persisted, err := orders.GetByID("o1")
	require.NoError(t, err)
	assert.True(t, persisted.IsPaid, "the transition must persist")
}

// TestLifecycle_MarkPaidTwiceConflicts: the second pay attempt surfaces
// ErrAlreadyPaid instead of silently succeeding.
func TestLifecycle_MarkPaidTwiceConflicts(t *testing.T) {
	orders := newFakeOrderRepo()
	seedOrder(t, orders, "o1", "owner")
	uc := NewLifecycleUseCase(orders, &fakeUserRepo{}, okValidator{})

	_, err := uc.MarkPaid(context.Background(), "owner", false, "o1", dto.PayOrderRequest{ID: "CAP-1", Status: "COMPLETED"})
	require.NoError(t, err)

	_, err = uc.MarkPaid(context.Background(), "owner", false, "o1", dto.PayOrderRequest{ID: "CAP-2", Status: "COMPLETED"})
	assert.ErrorIs(t, err, domain.ErrAlreadyPaid)
}

// TestLifecycle_DeliveryRequiresPayment: marking an unpaid order delivered
// fails; after payment it succeeds and repeats are idempotent.
func TestLifecycle_DeliveryRequiresPayment(t *testing.T) {
	orders := newFakeOrderRepo()
	seedOrder(t, orders, "o1", "owner")
	uc := NewLifecycleUseCase(orders, &fakeUserRepo{}, okValidator{})

	_, err := uc.MarkDelivered("o1")
	assert.ErrorIs(t, err, domain.ErrOrderNotPaid)

	_, err = uc.MarkPaid(context.Background(), "owner", false, "o1", dto.PayOrderRequest{ID: "CAP-1", Status: "COMPLETED"})
	require.NoError(t, err)

	out, err := uc.MarkDelivered("o1")
	require.NoError(t, err)
	assert.True(t, out.IsDelivered)
	first := out.DeliveredAt

	out, err = uc.MarkDelivered("o1")
	require.NoError(t, err)
	assert.Equal(t, first, out.DeliveredAt, "re-delivery is a no-op")
}

// TestLifecycle_ListAllToleratesDeletedUser: an order whose owner is gone
// renders with the placeholder name instead of failing.
func TestLifecycle_ListAllToleratesDeletedUser(t *testing.T) {
	orders := newFakeOrderRepo()
	seedOrder(t, orders, "o1", "gone")
	seedOrder(t, orders, "o2", "alive")
	users := &fakeUserRepo{users: map[string]*entity.User{
		"alive": {ID: "alive", Name: "Ada Lovelace"},
	}}
	uc := NewLifecycleUseCase(orders, users, okValidator{})

	out, err := uc.ListAll(20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 2)

	byID := map[string]dto.OrderResponse{}
	for _, o := range out.Items {
		byID[o.ID] = o
	}
	assert.Equal(t, DeletedUserName, byID["o1"].UserName)
	assert.Equal(t, "Ada Lovelace", byID["o2"].UserName)
}
