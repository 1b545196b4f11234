package http

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/Brayan008/cuack-stores/internal/adapter/rest"
	"github.com/Brayan008/cuack-stores/internal/entity"
	"github.com/Brayan008/cuack-stores/internal/store"
	"github.com/gin-gonic/gin"
)

const (
	msgEmptyCatalog = "No hay productos disponibles"
	msgNoMatches    = "No se encontraron productos que coincidan con la búsqueda"
)

// inventoryQuery covers the catalog filters served straight from the
// inventory wrapper. Satisfied by *service.Inventory.
type inventoryQuery interface {
	GetAvailableProducts(ctx context.Context) ([]entity.Product, error)
	GetProductsWithLowStock(ctx context.Context, threshold int) ([]entity.Product, error)
}

// ProductsHandler renders the catalog page and runs availability checks.
type ProductsHandler struct {
	store             *store.Store
	actions           *store.Actions
	query             inventoryQuery
	lowStockThreshold int
}

func NewProductsHandler(st *store.Store, actions *store.Actions, query inventoryQuery, lowStockThreshold int) *ProductsHandler {
	return &ProductsHandler{store: st, actions: actions, query: query, lowStockThreshold: lowStockThreshold}
}

// Page handles GET /products. Every load refreshes the catalog; ?q= filters
// by case-insensitive substring across name, HAWA and description, and
// ?filter=available|low-stock narrows via the inventory endpoints.
func (h *ProductsHandler) Page(c *gin.Context) {
	ctx := c.Request.Context()
	filter := c.Query("filter")

	switch filter {
	case "available":
		products, err := h.query.GetAvailableProducts(ctx)
		if errors.Is(err, rest.ErrSessionExpired) {
			c.Redirect(http.StatusFound, "/")
			return
		}
		if err != nil {
			h.store.FetchProductsRejected(err.Error())
		} else {
			h.store.FetchProductsFulfilled(products)
		}
	case "low-stock":
		products, err := h.query.GetProductsWithLowStock(ctx, h.lowStockThreshold)
		if errors.Is(err, rest.ErrSessionExpired) {
			c.Redirect(http.StatusFound, "/")
			return
		}
		if err != nil {
			h.store.FetchProductsRejected(err.Error())
		} else {
			h.store.FetchProductsFulfilled(products)
		}
	default:
		if err := h.actions.LoadProducts(ctx); err != nil {
			if errors.Is(err, rest.ErrSessionExpired) {
				c.Redirect(http.StatusFound, "/")
				return
			}
		}
	}

	view := h.store.Products()
	query := c.Query("q")
	filtered := filterProducts(view.Products, query)

	// Empty catalog and empty search result get distinct messages.
	var message string
	if len(view.Products) == 0 && view.Error == "" {
		message = msgEmptyCatalog
	} else if len(filtered) == 0 && view.Error == "" {
		message = msgNoMatches
	}

	c.HTML(http.StatusOK, "products", gin.H{
		"Session":      h.store.Session(),
		"Products":     filtered,
		"Availability": view.AvailabilityCheck,
		"Query":        query,
		"Filter":       filter,
		"Error":        view.Error,
		"Message":      message,
	})
}

// CheckAvailability handles POST /products/availability, then returns to the
// catalog preserving the active search.
func (h *ProductsHandler) CheckAvailability(c *gin.Context) {
	hawa := c.PostForm("hawa")
	if hawa != "" {
		if _, err := h.actions.CheckAvailability(c.Request.Context(), hawa); err != nil {
			if errors.Is(err, rest.ErrSessionExpired) {
				c.Redirect(http.StatusFound, "/")
				return
			}
		}
	}
	target := "/products"
	params := url.Values{}
	if q := c.PostForm("q"); q != "" {
		params.Set("q", q)
	}
	if f := c.PostForm("filter"); f != "" {
		params.Set("filter", f)
	}
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	c.Redirect(http.StatusFound, target)
}

func filterProducts(products []entity.Product, query string) []entity.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}
	var out []entity.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Hawa), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}
