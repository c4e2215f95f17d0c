// internal/models/product.go
package models

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	IsNew       bool     `json:"is_new"`
	VendorID    string   `json:"vendor_id"`
	Sizes       []string `json:"sizes,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Material    string   `json:"material,omitempty"`
}

type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

func (i *CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}
