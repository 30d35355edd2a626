package model

import (
	"strings"
	"time"

	"elite-gym-console/internal/domain"
	"github.com/google/uuid"
)

// Product is a point-of-sale catalog item with tracked stock.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Stock       int    `json:"stock"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// NewProduct validates and constructs a product.
func NewProduct(name string, price int64, stock int, category, description string) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" || price <= 0 || stock < 0 {
		return nil, domain.ErrInvalidArgument
	}
	return &Product{
		Name:        name,
		Price:       price,
		Stock:       stock,
		Category:    strings.TrimSpace(category),
		Description: strings.TrimSpace(description),
	}, nil
}

// SaleItem is one line of a sale at the unit price charged at the counter.
type SaleItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
	UnitPrice int64 `json:"unit_price"`
}

func (i SaleItem) Subtotal() int64 { return int64(i.Quantity) * i.UnitPrice }

// Sale is a completed point-of-sale transaction. Registering one decrements
// product stock atomically with the sale insert.
type Sale struct {
	ID            string     `json:"id"` // UUID
	Items         []SaleItem `json:"items"`
	Total         int64      `json:"total"`
	PaymentMethod string     `json:"payment_method"`
	ClientID      *int64     `json:"client_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// NewSale validates items and computes the sale total.
func NewSale(items []SaleItem, paymentMethod string, clientID *int64) (*Sale, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptySale
	}
	var total int64
	for _, it := range items {
		if it.ProductID == 0 || it.Quantity <= 0 || it.UnitPrice <= 0 {
			return nil, domain.ErrInvalidArgument
		}
		total += it.Subtotal()
	}
	return &Sale{
		ID:            uuid.NewString(),
		Items:         items,
		Total:         total,
		PaymentMethod: strings.TrimSpace(paymentMethod),
		ClientID:      clientID,
		CreatedAt:     time.Now(),
	}, nil
}
