package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Brayan008/cuack-stores/internal/entity"
)

const ordersPath = "/api/v1/orders"

// Orders wraps the order endpoints of the gateway.
type Orders struct {
	gw Gateway
}

func NewOrders(gw Gateway) *Orders {
	return &Orders{gw: gw}
}

func (s *Orders) CreateOrder(ctx context.Context, draft entity.OrderDraft) (*entity.Order, error) {
	var out entity.Order
	if err := s.gw.Post(ctx, ordersPath, draft, &out); err != nil {
		return nil, fmt.Errorf("Error creando pedido: %w", err)
	}
	return &out, nil
}

func (s *Orders) GetAllOrders(ctx context.Context, page, size int) (*entity.OrderPage, error) {
	var out entity.OrderPage
	if err := s.gw.Get(ctx, fmt.Sprintf("%s?page=%d&size=%d", ordersPath, page, size), &out); err != nil {
		return nil, fmt.Errorf("Error obteniendo pedidos: %w", err)
	}
	return &out, nil
}

func (s *Orders) GetOrderByID(ctx context.Context, orderID int64) (*entity.Order, error) {
	var out entity.Order
	if err := s.gw.Get(ctx, fmt.Sprintf("%s/%d", ordersPath, orderID), &out); err != nil {
		return nil, fmt.Errorf("Error obteniendo pedido %d: %w", orderID, err)
	}
	return &out, nil
}

func (s *Orders) UpdateOrderStatus(ctx context.Context, orderID int64, update entity.StatusUpdate) (*entity.Order, error) {
	var out entity.Order
	if err := s.gw.Put(ctx, fmt.Sprintf("%s/%d/status", ordersPath, orderID), update, &out); err != nil {
		return nil, fmt.Errorf("Error actualizando estatus del pedido: %w", err)
	}
	return &out, nil
}

func (s *Orders) GetOrdersByStatus(ctx context.Context, status entity.Status) ([]entity.Order, error) {
	var out []entity.Order
	if err := s.gw.Get(ctx, fmt.Sprintf("%s/status/%s", ordersPath, status), &out); err != nil {
		return nil, fmt.Errorf("Error obteniendo pedidos por estatus: %w", err)
	}
	return out, nil
}

func (s *Orders) SearchOrdersByCustomer(ctx context.Context, customerName string) ([]entity.Order, error) {
	var out []entity.Order
	path := fmt.Sprintf("%s/search/customer?name=%s", ordersPath, url.QueryEscape(customerName))
	if err := s.gw.Get(ctx, path, &out); err != nil {
		return nil, fmt.Errorf("Error buscando pedidos del cliente: %w", err)
	}
	return out, nil
}

func (s *Orders) SearchOrdersBySeller(ctx context.Context, sellerName string) ([]entity.Order, error) {
	var out []entity.Order
	path := fmt.Sprintf("%s/search/seller?name=%s", ordersPath, url.QueryEscape(sellerName))
	if err := s.gw.Get(ctx, path, &out); err != nil {
		return nil, fmt.Errorf("Error buscando pedidos del vendedor: %w", err)
	}
	return out, nil
}

func (s *Orders) GetOrderStatistics(ctx context.Context) (*entity.OrderStats, error) {
	var out entity.OrderStats
	if err := s.gw.Get(ctx, ordersPath+"/stats", &out); err != nil {
		return nil, fmt.Errorf("Error obteniendo estadísticas: %w", err)
	}
	return &out, nil
}
