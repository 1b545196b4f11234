package store

import "github.com/Brayan008/cuack-stores/internal/entity"

func (s *Store) FetchProductsPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products.loading = true
	s.products.err = ""
}

func (s *Store) FetchProductsFulfilled(products []entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products.loading = false
	s.products.products = products
}

func (s *Store) FetchProductsRejected(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products.loading = false
	s.products.err = msg
}

func (s *Store) FetchProductByHawaPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products.loading = true
	s.products.err = ""
}

func (s *Store) FetchProductByHawaFulfilled(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products.loading = false
	s.products.selectedProduct = &p
}

func (s *Store) FetchProductByHawaRejected(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products.loading = false
	s.products.err = msg
}

// CheckAvailabilityFulfilled merges one keyed result into the availability
// mapping. Entries are never removed; later checks for the same HAWA replace
// the earlier result only for that key.
func (s *Store) CheckAvailabilityFulfilled(hawa string, a entity.Availability) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products.availabilityCheck[hawa] = a
}

func (s *Store) ClearSelectedProduct() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products.selectedProduct = nil
}

func (s *Store) ClearProductsError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products.err = ""
}
