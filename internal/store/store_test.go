package store

import (
	"context"
	"errors"
	"testing"

	"github.com/Brayan008/cuack-stores/internal/adapter/storage"
	"github.com/Brayan008/cuack-stores/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return New(storage.NewMemorySessionStore())
}

func TestAuthTokenFlipsAuthenticated(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	assert.False(t, s.Session().IsAuthenticated)

	s.SetToken(ctx, "tok")
	sess := s.Session()
	assert.True(t, sess.IsAuthenticated)
	assert.Equal(t, "tok", s.Token())

	s.Logout(ctx)
	assert.False(t, s.Session().IsAuthenticated)
	assert.Empty(t, s.Token())
}

func TestLogoutClearsDurableStorage(t *testing.T) {
	mem := storage.NewMemorySessionStore()
	s := New(mem)
	ctx := context.Background()

	s.SetUser(ctx, entity.User{ID: "u1", Email: "a@b.c"})
	s.SetToken(ctx, "tok")
	_, _, ok, _ := mem.Load(ctx)
	require.True(t, ok)

	s.Logout(ctx)
	_, _, ok, _ = mem.Load(ctx)
	assert.False(t, ok)
}

// brokenSessionStore fails every operation, like redis being down.
type brokenSessionStore struct{ err error }

func (b *brokenSessionStore) SaveToken(context.Context, string) error     { return b.err }
func (b *brokenSessionStore) SaveUser(context.Context, entity.User) error { return b.err }
func (b *brokenSessionStore) Load(context.Context) (string, *entity.User, bool, error) {
	return "", nil, false, b.err
}
func (b *brokenSessionStore) Clear(context.Context) error { return b.err }

func TestSessionSurvivesStorageFailure(t *testing.T) {
	s := New(&brokenSessionStore{err: errors.New("redis down")})
	ctx := context.Background()

	s.SetUser(ctx, entity.User{ID: "u1", Email: "a@b.c"})
	s.SetToken(ctx, "tok")
	sess := s.Session()
	require.NotNil(t, sess.User)
	assert.True(t, sess.IsAuthenticated)
	assert.Equal(t, "tok", s.Token())

	s.Logout(ctx)
	assert.False(t, s.Session().IsAuthenticated)
}

func TestProductsPhases(t *testing.T) {
	s := newTestStore()

	s.FetchProductsPending()
	v := s.Products()
	assert.True(t, v.Loading)
	assert.Empty(t, v.Error)

	s.FetchProductsFulfilled([]entity.Product{{Hawa: "HW-1", Name: "Pato"}})
	v = s.Products()
	assert.False(t, v.Loading)
	require.Len(t, v.Products, 1)

	s.FetchProductsPending()
	s.FetchProductsRejected("Error obteniendo productos: boom")
	v = s.Products()
	assert.False(t, v.Loading)
	assert.Equal(t, "Error obteniendo productos: boom", v.Error)
	// a rejected fetch does not drop the previous list
	assert.Len(t, v.Products, 1)
}

func TestAvailabilityEntriesAreIndependent(t *testing.T) {
	s := newTestStore()

	s.CheckAvailabilityFulfilled("HW-A", entity.Availability{Hawa: "HW-A", Available: true, Stock: 3})
	s.CheckAvailabilityFulfilled("HW-B", entity.Availability{Hawa: "HW-B", Available: false, Message: "Sin stock"})

	v := s.Products()
	require.Len(t, v.AvailabilityCheck, 2)
	assert.True(t, v.AvailabilityCheck["HW-A"].Available)
	assert.False(t, v.AvailabilityCheck["HW-B"].Available)

	// re-checking one key leaves the other untouched
	s.CheckAvailabilityFulfilled("HW-A", entity.Availability{Hawa: "HW-A", Available: false})
	v = s.Products()
	assert.False(t, v.AvailabilityCheck["HW-A"].Available)
	assert.Equal(t, "Sin stock", v.AvailabilityCheck["HW-B"].Message)
}

func TestCreateOrderPhases(t *testing.T) {
	s := newTestStore()
	s.FetchOrdersFulfilled(entity.OrderPage{Content: []entity.Order{{ID: 1}}})

	s.CreateOrderPending()
	v := s.Orders()
	assert.True(t, v.CreateOrderLoading)
	assert.False(t, v.CreateOrderSuccess)

	s.CreateOrderFulfilled(entity.Order{ID: 2, Status: entity.StatusPendiente})
	v = s.Orders()
	assert.False(t, v.CreateOrderLoading)
	assert.True(t, v.CreateOrderSuccess)
	// new order is prepended and selected
	require.Len(t, v.Orders, 2)
	assert.EqualValues(t, 2, v.Orders[0].ID)
	require.NotNil(t, v.SelectedOrder)
	assert.EqualValues(t, 2, v.SelectedOrder.ID)

	s.ClearCreateOrderSuccess()
	assert.False(t, s.Orders().CreateOrderSuccess)
}

func TestCreateOrderRejected(t *testing.T) {
	s := newTestStore()

	s.CreateOrderPending()
	s.CreateOrderRejected("Error creando pedido: sin stock")
	v := s.Orders()
	assert.False(t, v.CreateOrderLoading)
	assert.False(t, v.CreateOrderSuccess)
	assert.Equal(t, "Error creando pedido: sin stock", v.Error)
}

func TestFetchOrdersReplacesListAndPagination(t *testing.T) {
	s := newTestStore()

	s.FetchOrdersFulfilled(entity.OrderPage{
		Content:       []entity.Order{{ID: 41}, {ID: 42}},
		TotalElements: 45,
		TotalPages:    3,
		Number:        2,
	})

	v := s.Orders()
	assert.Len(t, v.Orders, 2)
	assert.EqualValues(t, 45, v.TotalElements)
	assert.Equal(t, 3, v.TotalPages)
	assert.Equal(t, 2, v.CurrentPage)
}

func TestUpdateOrderStatusReplacesInListAndSelected(t *testing.T) {
	s := newTestStore()
	s.FetchOrdersFulfilled(entity.OrderPage{Content: []entity.Order{
		{ID: 1, Status: entity.StatusPendiente, SellerName: "Ana"},
		{ID: 2, Status: entity.StatusPendiente, SellerName: "Luis"},
	}})
	s.FetchOrderByIDFulfilled(entity.Order{ID: 1, Status: entity.StatusPendiente})

	s.UpdateOrderStatusFulfilled(entity.Order{ID: 1, Status: entity.StatusEntregado, SellerName: "Ana"})

	v := s.Orders()
	assert.Equal(t, entity.StatusEntregado, v.Orders[0].Status)
	// other entries untouched
	assert.Equal(t, entity.StatusPendiente, v.Orders[1].Status)
	assert.Equal(t, "Luis", v.Orders[1].SellerName)
	// selected order replaced too
	require.NotNil(t, v.SelectedOrder)
	assert.Equal(t, entity.StatusEntregado, v.SelectedOrder.Status)
}

func TestUpdateOrderStatusIgnoresUnrelatedSelected(t *testing.T) {
	s := newTestStore()
	s.FetchOrdersFulfilled(entity.OrderPage{Content: []entity.Order{{ID: 1, Status: entity.StatusPendiente}}})
	s.FetchOrderByIDFulfilled(entity.Order{ID: 9, Status: entity.StatusPendiente})

	s.UpdateOrderStatusFulfilled(entity.Order{ID: 1, Status: entity.StatusCancelado})

	v := s.Orders()
	assert.Equal(t, entity.StatusCancelado, v.Orders[0].Status)
	assert.EqualValues(t, 9, v.SelectedOrder.ID)
	assert.Equal(t, entity.StatusPendiente, v.SelectedOrder.Status)
}

func TestViewsAreCopies(t *testing.T) {
	s := newTestStore()
	s.FetchProductsFulfilled([]entity.Product{{Hawa: "HW-1"}})

	v := s.Products()
	v.Products[0].Hawa = "mutated"
	v.AvailabilityCheck["X"] = entity.Availability{}

	fresh := s.Products()
	assert.Equal(t, "HW-1", fresh.Products[0].Hawa)
	assert.Empty(t, fresh.AvailabilityCheck)
}
