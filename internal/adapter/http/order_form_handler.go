package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Brayan008/cuack-stores/internal/adapter/rest"
	"github.com/Brayan008/cuack-stores/internal/entity"
	"github.com/Brayan008/cuack-stores/internal/logging"
	"github.com/Brayan008/cuack-stores/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// OrderFormHandler serves the order creation form and accepts its JSON
// submission.
type OrderFormHandler struct {
	store   *store.Store
	actions *store.Actions
}

func NewOrderFormHandler(st *store.Store, actions *store.Actions) *OrderFormHandler {
	return &OrderFormHandler{store: st, actions: actions}
}

type orderItemReq struct {
	ProductHawa string `json:"productHawa" binding:"required,max=50"`
	Quantity    int    `json:"quantity" binding:"required,gte=1,lte=100"`
}

type orderFormReq struct {
	StoreID    string `json:"storeId" binding:"required"`
	SellerName string `json:"sellerName" binding:"required,max=200"`
	Customer   struct {
		Name         string `json:"name" binding:"required,max=200"`
		Email        string `json:"email" binding:"required,email,max=200"`
		Phone        string `json:"phone" binding:"omitempty,max=20"`
		Address      string `json:"address" binding:"omitempty,max=500"`
		Document     string `json:"document" binding:"omitempty,max=50"`
		DocumentType string `json:"documentType" binding:"omitempty,max=20"`
	} `json:"customer"`
	Items    []orderItemReq `json:"items" binding:"required,min=1,dive"`
	Comments string         `json:"comments"`
}

// Page handles GET /create-order: the form needs the catalog for its product
// selector.
func (h *OrderFormHandler) Page(c *gin.Context) {
	if err := h.actions.LoadProducts(c.Request.Context()); err != nil {
		if errors.Is(err, rest.ErrSessionExpired) {
			c.Redirect(http.StatusFound, "/")
			return
		}
	}
	view := h.store.Products()
	c.HTML(http.StatusOK, "create_order", gin.H{
		"Session":  h.store.Session(),
		"Products": view.Products,
		"Error":    view.Error,
	})
}

// Submit handles POST /create-order. Every line item is availability-checked
// before submission; failures accumulate per HAWA and block the order.
func (h *OrderFormHandler) Submit(c *gin.Context) {
	var req orderFormReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validationMessages(err)})
		return
	}

	ctx := c.Request.Context()

	availabilityErrors := map[string]string{}
	for _, item := range req.Items {
		av, err := h.actions.CheckAvailability(ctx, item.ProductHawa)
		if err != nil {
			if errors.Is(err, rest.ErrSessionExpired) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			availabilityErrors[item.ProductHawa] = err.Error()
			continue
		}
		if !av.Available {
			availabilityErrors[item.ProductHawa] = av.Message
		}
	}
	if len(availabilityErrors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"availabilityErrors": availabilityErrors})
		return
	}

	draft := entity.OrderDraft{
		StoreID:    req.StoreID,
		SellerName: req.SellerName,
		Customer: entity.Customer{
			Name:         req.Customer.Name,
			Email:        req.Customer.Email,
			Phone:        req.Customer.Phone,
			Address:      req.Customer.Address,
			Document:     req.Customer.Document,
			DocumentType: req.Customer.DocumentType,
		},
		Comments: req.Comments,
	}
	for _, item := range req.Items {
		draft.Items = append(draft.Items, entity.DraftItem{ProductHawa: item.ProductHawa, Quantity: item.Quantity})
	}

	order, err := h.actions.SubmitOrder(ctx, draft)
	if err != nil {
		if errors.Is(err, rest.ErrSessionExpired) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	logging.From(c).Info("order created", "order_id", order.ID, "items", order.TotalItems())
	c.JSON(http.StatusCreated, order)
}

// validationMessages flattens binding failures into field → Spanish message.
func validationMessages(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["_"] = "Solicitud inválida"
		return out
	}
	for _, fe := range verrs {
		out[fe.Namespace()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "StoreID":
		return "ID de tienda es requerido"
	case "SellerName":
		return "Nombre del vendedor es requerido"
	case "Name":
		return "Nombre del cliente es requerido"
	case "Email":
		if fe.Tag() == "email" {
			return "Email inválido"
		}
		return "Email es requerido"
	case "Items":
		return "Debe agregar al menos un producto"
	case "ProductHawa":
		return "HAWA del producto es requerido"
	case "Quantity":
		return "Cantidad debe ser mayor a 0"
	}
	return fmt.Sprintf("Campo %s inválido", fe.Field())
}
