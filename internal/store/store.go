// Package store holds the console's application state: three independent
// slices (auth, products, orders) mutated only by named reducer methods.
// Asynchronous operations follow a pending/fulfilled/rejected contract: pending
// sets the loading flag and clears the error, fulfilled applies the result,
// rejected records the error message.
//
// The mutex stands in for the serialization a single-threaded event loop would
// give: observed mutations to any slice are strictly ordered by completion.
package store

import (
	"context"
	"sync"

	"github.com/Brayan008/cuack-stores/internal/adapter/storage"
	"github.com/Brayan008/cuack-stores/internal/entity"
	"github.com/Brayan008/cuack-stores/internal/logging"
)

type authState struct {
	user            *entity.User
	token           string
	isAuthenticated bool
}

type productsState struct {
	products          []entity.Product
	selectedProduct   *entity.Product
	availabilityCheck map[string]entity.Availability
	loading           bool
	err               string
}

type ordersState struct {
	orders             []entity.Order
	selectedOrder      *entity.Order
	totalElements      int64
	totalPages         int
	currentPage        int
	loading            bool
	err                string
	createOrderLoading bool
	createOrderSuccess bool
}

// Store is the injectable state container. Entities are owned here; views
// hold no independent copies beyond ephemeral form drafts.
type Store struct {
	mu       sync.Mutex
	auth     authState
	products productsState
	orders   ordersState

	sessions storage.SessionStore
}

func New(sessions storage.SessionStore) *Store {
	return &Store{
		products: productsState{availabilityCheck: map[string]entity.Availability{}},
		sessions: sessions,
	}
}

// ProductsView is a copy of the products slice at one point in time.
type ProductsView struct {
	Products          []entity.Product
	SelectedProduct   *entity.Product
	AvailabilityCheck map[string]entity.Availability
	Loading           bool
	Error             string
}

// OrdersView is a copy of the orders slice at one point in time.
type OrdersView struct {
	Orders             []entity.Order
	SelectedOrder      *entity.Order
	TotalElements      int64
	TotalPages         int
	CurrentPage        int
	Loading            bool
	Error              string
	CreateOrderLoading bool
	CreateOrderSuccess bool
}

func (s *Store) Products() ProductsView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := ProductsView{
		Products:          append([]entity.Product(nil), s.products.products...),
		AvailabilityCheck: make(map[string]entity.Availability, len(s.products.availabilityCheck)),
		Loading:           s.products.loading,
		Error:             s.products.err,
	}
	for k, a := range s.products.availabilityCheck {
		v.AvailabilityCheck[k] = a
	}
	if s.products.selectedProduct != nil {
		p := *s.products.selectedProduct
		v.SelectedProduct = &p
	}
	return v
}

func (s *Store) Orders() OrdersView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := OrdersView{
		Orders:             append([]entity.Order(nil), s.orders.orders...),
		TotalElements:      s.orders.totalElements,
		TotalPages:         s.orders.totalPages,
		CurrentPage:        s.orders.currentPage,
		Loading:            s.orders.loading,
		Error:              s.orders.err,
		CreateOrderLoading: s.orders.createOrderLoading,
		CreateOrderSuccess: s.orders.createOrderSuccess,
	}
	if s.orders.selectedOrder != nil {
		o := *s.orders.selectedOrder
		v.SelectedOrder = &o
	}
	return v
}

// Session returns the current auth slice. IsAuthenticated is true iff a
// non-empty token is held.
func (s *Store) Session() entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := entity.Session{
		Token:           s.auth.token,
		IsAuthenticated: s.auth.isAuthenticated,
	}
	if s.auth.user != nil {
		u := *s.auth.user
		sess.User = &u
	}
	return sess
}

// Token implements rest.TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auth.token
}

// SetUser records the identity and persists it to durable storage.
func (s *Store) SetUser(ctx context.Context, user entity.User) {
	s.mu.Lock()
	u := user
	s.auth.user = &u
	s.mu.Unlock()

	if err := s.sessions.SaveUser(ctx, user); err != nil {
		logging.FromCtx(ctx).Warn("session user not persisted", "error", err)
	}
}

// SetToken records the token, flips isAuthenticated and persists the token.
func (s *Store) SetToken(ctx context.Context, token string) {
	s.mu.Lock()
	s.auth.token = token
	s.auth.isAuthenticated = token != ""
	s.mu.Unlock()

	if token != "" {
		if err := s.sessions.SaveToken(ctx, token); err != nil {
			logging.FromCtx(ctx).Warn("session token not persisted", "error", err)
		}
	}
}

// RestoreSession rehydrates the auth slice without touching durable storage.
func (s *Store) RestoreSession(user entity.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := user
	s.auth.user = &u
	s.auth.token = token
	s.auth.isAuthenticated = token != ""
}

// Logout clears all auth fields and the durable storage behind them.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.auth = authState{}
	s.mu.Unlock()

	if err := s.sessions.Clear(ctx); err != nil {
		logging.FromCtx(ctx).Warn("session storage not cleared", "error", err)
	}
}
