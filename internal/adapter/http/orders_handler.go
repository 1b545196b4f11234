package http

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Brayan008/cuack-stores/internal/adapter/rest"
	"github.com/Brayan008/cuack-stores/internal/entity"
	"github.com/Brayan008/cuack-stores/internal/logging"
	"github.com/Brayan008/cuack-stores/internal/store"
	"github.com/gin-gonic/gin"
)

// ordersQuery covers the read-side operations the orders page needs beyond
// the store actions. Satisfied by *service.Orders.
type ordersQuery interface {
	GetOrderStatistics(ctx context.Context) (*entity.OrderStats, error)
	GetOrdersByStatus(ctx context.Context, status entity.Status) ([]entity.Order, error)
	SearchOrdersByCustomer(ctx context.Context, customerName string) ([]entity.Order, error)
	SearchOrdersBySeller(ctx context.Context, sellerName string) ([]entity.Order, error)
}

// OrdersHandler renders the order list and drives status changes.
type OrdersHandler struct {
	store    *store.Store
	actions  *store.Actions
	query    ordersQuery
	pageSize int
}

func NewOrdersHandler(st *store.Store, actions *store.Actions, query ordersQuery, pageSize int) *OrdersHandler {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &OrdersHandler{store: st, actions: actions, query: query, pageSize: pageSize}
}

// Page handles GET /orders. ?page= paginates; ?customer=, ?seller= and
// ?status= switch to the corresponding search endpoint instead.
func (h *OrdersHandler) Page(c *gin.Context) {
	ctx := c.Request.Context()
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	if page < 0 {
		page = 0
	}

	var searchErr string
	switch {
	case c.Query("customer") != "":
		results, err := h.query.SearchOrdersByCustomer(ctx, c.Query("customer"))
		if h.redirectExpired(c, err) {
			return
		}
		if err == nil {
			h.renderSearch(c, results)
			return
		}
		searchErr = err.Error()
	case c.Query("seller") != "":
		results, err := h.query.SearchOrdersBySeller(ctx, c.Query("seller"))
		if h.redirectExpired(c, err) {
			return
		}
		if err == nil {
			h.renderSearch(c, results)
			return
		}
		searchErr = err.Error()
	case c.Query("status") != "":
		results, err := h.query.GetOrdersByStatus(ctx, entity.Status(c.Query("status")))
		if h.redirectExpired(c, err) {
			return
		}
		if err == nil {
			h.renderSearch(c, results)
			return
		}
		searchErr = err.Error()
	}

	if err := h.actions.LoadOrders(ctx, page, h.pageSize); h.redirectExpired(c, err) {
		return
	}

	// Stats are decorative on this page; a failure only drops the row.
	stats, err := h.query.GetOrderStatistics(ctx)
	if err != nil {
		logging.From(c).Warn("order stats unavailable", "error", err.Error())
		stats = nil
	}

	view := h.store.Orders()
	data := gin.H{
		"Session":     h.store.Session(),
		"View":        view,
		"Stats":       stats,
		"Error":       firstNonEmpty(searchErr, view.Error),
		"Notice":      c.Query("notice"),
		"PageDisplay": view.CurrentPage + 1,
		"PrevPage":    max(view.CurrentPage-1, 0),
		"NextPage":    view.CurrentPage + 1,
		"IsLastPage":  view.CurrentPage+1 >= view.TotalPages,
	}
	c.HTML(http.StatusOK, "orders", data)
}

func (h *OrdersHandler) renderSearch(c *gin.Context, results []entity.Order) {
	c.HTML(http.StatusOK, "orders", gin.H{
		"Session":     h.store.Session(),
		"View":        store.OrdersView{Orders: results, TotalPages: 1, TotalElements: int64(len(results))},
		"PageDisplay": 1,
		"PrevPage":    0,
		"NextPage":    0,
		"IsLastPage":  true,
	})
}

// ChangeStatus handles POST /orders/status. The transition table gates the UI
// only; a server rejection is surfaced as-is.
func (h *OrdersHandler) ChangeStatus(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.PostForm("orderId"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/orders")
		return
	}
	target := entity.Status(c.PostForm("status"))

	if !entity.CanTransition(entity.StatusPendiente, target) {
		c.Redirect(http.StatusFound, "/orders?notice="+url.QueryEscape("Transición de estatus no permitida"))
		return
	}

	_, err = h.actions.ChangeOrderStatus(c.Request.Context(), orderID, entity.StatusUpdate{
		Status: target,
		Reason: c.PostForm("reason"),
	})
	if h.redirectExpired(c, err) {
		return
	}
	if err != nil {
		logging.From(c).Error("status change rejected", "order_id", orderID, "error", err.Error())
		c.Redirect(http.StatusFound, "/orders?notice="+url.QueryEscape(err.Error()))
		return
	}
	c.Redirect(http.StatusFound, "/orders?notice="+url.QueryEscape("Estatus actualizado correctamente"))
}

func (h *OrdersHandler) redirectExpired(c *gin.Context, err error) bool {
	if err != nil && errors.Is(err, rest.ErrSessionExpired) {
		c.Redirect(http.StatusFound, "/")
		return true
	}
	return false
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
