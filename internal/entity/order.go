package entity

// Status is the lifecycle state of an order as reported by the orders service.
type Status string

const (
	StatusPendiente Status = "PENDIENTE"
	StatusEntregado Status = "ENTREGADO"
	StatusCancelado Status = "CANCELADO"
)

// StatusLabels maps a raw status to its display label.
var StatusLabels = map[Status]string{
	StatusPendiente: "Pendiente",
	StatusEntregado: "Entregado",
	StatusCancelado: "Cancelado",
}

// CanTransition mirrors the server's transition rules for UI gating only.
// The server stays authoritative and may reject a transition the client
// believed valid.
func CanTransition(from, to Status) bool {
	if from != StatusPendiente {
		return false
	}
	return to == StatusEntregado || to == StatusCancelado
}

// TargetStatuses returns the statuses an order may move to from its current one.
func TargetStatuses(from Status) []Status {
	if from != StatusPendiente {
		return nil
	}
	return []Status{StatusEntregado, StatusCancelado}
}

type Customer struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	Document     string `json:"document,omitempty"`
	DocumentType string `json:"documentType,omitempty"`
}

type OrderItem struct {
	ID                 int64   `json:"id"`
	ProductHawa        string  `json:"productHawa"`
	ProductName        string  `json:"productName"`
	Quantity           int     `json:"quantity"`
	UnitPrice          float64 `json:"unitPrice"`
	DiscountPercentage float64 `json:"discountPercentage"`
	DiscountAmount     float64 `json:"discountAmount"`
	FinalUnitPrice     float64 `json:"finalUnitPrice"`
	Subtotal           float64 `json:"subtotal"`
}

type Order struct {
	ID                   int64       `json:"id"`
	CreatedAt            string      `json:"createdAt"`
	UpdatedAt            string      `json:"updatedAt,omitempty"`
	StoreID              string      `json:"storeId"`
	SellerName           string      `json:"sellerName"`
	Customer             Customer    `json:"customer"`
	Status               Status      `json:"status"`
	Subtotal             float64     `json:"subtotal"`
	TotalDiscount        float64     `json:"totalDiscount"`
	Total                float64     `json:"total"`
	TotalQuantity        int         `json:"totalQuantity"`
	Items                []OrderItem `json:"items"`
	Comments             string      `json:"comments,omitempty"`
	CanBeCancelled       bool        `json:"canBeCancelled"`
	MinutesSinceCreation int64       `json:"minutesSinceCreation"`
}

// TotalItems is the number of distinct line entries on the order.
func (o Order) TotalItems() int { return len(o.Items) }

// DraftItem is one line of an order before submission.
type DraftItem struct {
	ProductHawa string `json:"productHawa"`
	Quantity    int    `json:"quantity"`
}

// OrderDraft is the creation payload for POST /orders.
type OrderDraft struct {
	StoreID    string      `json:"storeId"`
	SellerName string      `json:"sellerName"`
	Customer   Customer    `json:"customer"`
	Items      []DraftItem `json:"items"`
	Comments   string      `json:"comments,omitempty"`
}

// OrderPage is one page of the order collection as the orders service
// returns it (Spring Data page shape).
type OrderPage struct {
	Content       []Order `json:"content"`
	TotalElements int64   `json:"totalElements"`
	TotalPages    int     `json:"totalPages"`
	Number        int     `json:"number"`
	Size          int     `json:"size"`
}

type OrderStats struct {
	TotalOrders          int64   `json:"totalOrders"`
	PendingOrders        int64   `json:"pendingOrders"`
	DeliveredOrders      int64   `json:"deliveredOrders"`
	CancelledOrders      int64   `json:"cancelledOrders"`
	TotalRevenue         float64 `json:"totalRevenue"`
	AverageOrderValue    float64 `json:"averageOrderValue"`
	AverageItemsPerOrder int     `json:"averageItemsPerOrder"`
}

// StatusUpdate is the payload for PUT /orders/{id}/status.
type StatusUpdate struct {
	Status Status `json:"status"`
	Reason string `json:"reason,omitempty"`
}
