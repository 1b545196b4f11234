package service

import (
	"context"
	"fmt"

	"github.com/Brayan008/cuack-stores/internal/entity"
)

const (
	productsPath      = "/api/v1/inventory/products"
	productByHawaPath = "/api/v1/inventory/product"
)

// DefaultLowStockThreshold applies when the caller passes a non-positive one.
const DefaultLowStockThreshold = 5

// Inventory wraps the inventory endpoints of the gateway. Each call rethrows
// the underlying failure with an operation prefix and no other transformation.
type Inventory struct {
	gw Gateway
}

func NewInventory(gw Gateway) *Inventory {
	return &Inventory{gw: gw}
}

func (s *Inventory) GetAllProducts(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := s.gw.Get(ctx, productsPath, &out); err != nil {
		return nil, fmt.Errorf("Error obteniendo productos: %w", err)
	}
	return out, nil
}

func (s *Inventory) GetProductByHawa(ctx context.Context, hawa string) (*entity.Product, error) {
	var out entity.Product
	if err := s.gw.Get(ctx, fmt.Sprintf("%s/%s", productByHawaPath, hawa), &out); err != nil {
		return nil, fmt.Errorf("Error obteniendo producto %s: %w", hawa, err)
	}
	return &out, nil
}

func (s *Inventory) CheckAvailability(ctx context.Context, hawa string) (*entity.Availability, error) {
	var out entity.Availability
	if err := s.gw.Get(ctx, fmt.Sprintf("%s/%s/availability", productByHawaPath, hawa), &out); err != nil {
		return nil, fmt.Errorf("Error verificando disponibilidad de %s: %w", hawa, err)
	}
	return &out, nil
}

func (s *Inventory) GetAvailableProducts(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := s.gw.Get(ctx, productsPath+"/available", &out); err != nil {
		return nil, fmt.Errorf("Error obteniendo productos disponibles: %w", err)
	}
	return out, nil
}

func (s *Inventory) GetProductsWithLowStock(ctx context.Context, threshold int) ([]entity.Product, error) {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	var out []entity.Product
	if err := s.gw.Get(ctx, fmt.Sprintf("%s/low-stock?threshold=%d", productsPath, threshold), &out); err != nil {
		return nil, fmt.Errorf("Error obteniendo productos con stock bajo: %w", err)
	}
	return out, nil
}
