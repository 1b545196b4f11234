package store

import (
	"context"

	"github.com/Brayan008/cuack-stores/internal/entity"
)

// InventoryService is the slice of the inventory wrapper the actions need.
type InventoryService interface {
	GetAllProducts(ctx context.Context) ([]entity.Product, error)
	GetProductByHawa(ctx context.Context, hawa string) (*entity.Product, error)
	CheckAvailability(ctx context.Context, hawa string) (*entity.Availability, error)
}

// OrdersService is the slice of the orders wrapper the actions need.
type OrdersService interface {
	CreateOrder(ctx context.Context, draft entity.OrderDraft) (*entity.Order, error)
	GetAllOrders(ctx context.Context, page, size int) (*entity.OrderPage, error)
	GetOrderByID(ctx context.Context, orderID int64) (*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, update entity.StatusUpdate) (*entity.Order, error)
}

// Actions runs the asynchronous operations against the store: each one walks
// the pending/fulfilled/rejected phases of its slice and also returns the
// outcome to the caller.
type Actions struct {
	store     *Store
	inventory InventoryService
	orders    OrdersService
}

func NewActions(s *Store, inv InventoryService, ord OrdersService) *Actions {
	return &Actions{store: s, inventory: inv, orders: ord}
}

func (a *Actions) LoadProducts(ctx context.Context) error {
	a.store.FetchProductsPending()
	products, err := a.inventory.GetAllProducts(ctx)
	if err != nil {
		a.store.FetchProductsRejected(err.Error())
		return err
	}
	a.store.FetchProductsFulfilled(products)
	return nil
}

func (a *Actions) LoadProductByHawa(ctx context.Context, hawa string) (*entity.Product, error) {
	a.store.FetchProductByHawaPending()
	p, err := a.inventory.GetProductByHawa(ctx, hawa)
	if err != nil {
		a.store.FetchProductByHawaRejected(err.Error())
		return nil, err
	}
	a.store.FetchProductByHawaFulfilled(*p)
	return p, nil
}

// CheckAvailability merges the result into the per-HAWA mapping. Failures are
// returned to the caller without touching the slice, matching the fulfilled-
// only contract of this operation.
func (a *Actions) CheckAvailability(ctx context.Context, hawa string) (*entity.Availability, error) {
	av, err := a.inventory.CheckAvailability(ctx, hawa)
	if err != nil {
		return nil, err
	}
	a.store.CheckAvailabilityFulfilled(hawa, *av)
	return av, nil
}

func (a *Actions) SubmitOrder(ctx context.Context, draft entity.OrderDraft) (*entity.Order, error) {
	a.store.CreateOrderPending()
	o, err := a.orders.CreateOrder(ctx, draft)
	if err != nil {
		a.store.CreateOrderRejected(err.Error())
		return nil, err
	}
	a.store.CreateOrderFulfilled(*o)
	return o, nil
}

func (a *Actions) LoadOrders(ctx context.Context, page, size int) error {
	a.store.FetchOrdersPending()
	p, err := a.orders.GetAllOrders(ctx, page, size)
	if err != nil {
		a.store.FetchOrdersRejected(err.Error())
		return err
	}
	a.store.FetchOrdersFulfilled(*p)
	return nil
}

func (a *Actions) LoadOrderByID(ctx context.Context, orderID int64) (*entity.Order, error) {
	a.store.FetchOrderByIDPending()
	o, err := a.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		a.store.FetchOrderByIDRejected(err.Error())
		return nil, err
	}
	a.store.FetchOrderByIDFulfilled(*o)
	return o, nil
}

// ChangeOrderStatus applies the server-returned order on success only. A
// rejected update leaves the slice as it was; the caller surfaces the error.
func (a *Actions) ChangeOrderStatus(ctx context.Context, orderID int64, update entity.StatusUpdate) (*entity.Order, error) {
	o, err := a.orders.UpdateOrderStatus(ctx, orderID, update)
	if err != nil {
		return nil, err
	}
	a.store.UpdateOrderStatusFulfilled(*o)
	return o, nil
}
