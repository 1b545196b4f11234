package entity

// Product is a catalog entry from the inventory service. Read-only on the
// client side; HAWA is the business key.
type Product struct {
	Hawa        string  `json:"hawa"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ListPrice   float64 `json:"listPrice"`
	Discount    float64 `json:"discount"`
	FinalPrice  float64 `json:"finalPrice"`
	Stock       int     `json:"stock"`
	Available   bool    `json:"available"`
}

// Availability is the result of a per-product stock check, independent of the
// cached product list.
type Availability struct {
	Hawa      string `json:"hawa"`
	Available bool   `json:"available"`
	Stock     int    `json:"stock"`
	Message   string `json:"message"`
}
