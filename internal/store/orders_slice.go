package store

import "github.com/Brayan008/cuack-stores/internal/entity"

func (s *Store) CreateOrderPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders.createOrderLoading = true
	s.orders.createOrderSuccess = false
	s.orders.err = ""
}

// CreateOrderFulfilled prepends the new order to the list, selects it and
// raises the success flag.
func (s *Store) CreateOrderFulfilled(o entity.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders.createOrderLoading = false
	s.orders.createOrderSuccess = true
	s.orders.selectedOrder = &o
	s.orders.orders = append([]entity.Order{o}, s.orders.orders...)
}

func (s *Store) CreateOrderRejected(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders.createOrderLoading = false
	s.orders.err = msg
}

func (s *Store) FetchOrdersPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders.loading = true
	s.orders.err = ""
}

// FetchOrdersFulfilled replaces the list and the pagination fields.
func (s *Store) FetchOrdersFulfilled(page entity.OrderPage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders.loading = false
	s.orders.orders = page.Content
	s.orders.totalElements = page.TotalElements
	s.orders.totalPages = page.TotalPages
	s.orders.currentPage = page.Number
}

func (s *Store) FetchOrdersRejected(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders.loading = false
	s.orders.err = msg
}

func (s *Store) FetchOrderByIDPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders.loading = true
	s.orders.err = ""
}

func (s *Store) FetchOrderByIDFulfilled(o entity.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders.loading = false
	s.orders.selectedOrder = &o
}

func (s *Store) FetchOrderByIDRejected(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders.loading = false
	s.orders.err = msg
}

// UpdateOrderStatusFulfilled replaces the matching order in-place by id in
// the list and, if it matches, the selected order. There is no pending or
// rejected phase for this operation: a failed update leaves state untouched
// and the failure is the caller's to surface.
func (s *Store) UpdateOrderStatusFulfilled(updated entity.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders.orders {
		if s.orders.orders[i].ID == updated.ID {
			s.orders.orders[i] = updated
			break
		}
	}
	if s.orders.selectedOrder != nil && s.orders.selectedOrder.ID == updated.ID {
		s.orders.selectedOrder = &updated
	}
}

func (s *Store) ClearSelectedOrder() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders.selectedOrder = nil
}

func (s *Store) ClearOrdersError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders.err = ""
}

func (s *Store) ClearCreateOrderSuccess() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders.createOrderSuccess = false
}
