// internal/domain/models/product.go
package models

import "strconv"

// Product statuses used by the product filters.
const (
	ProductActive   = "active"
	ProductInactive = "inactive"
	ProductDraft    = "draft"
)

// Stock levels derived from quantity and min_quantity.
const (
	StockIn  = "in stock"
	StockLow = "low stock"
	StockOut = "out of stock"
)

// Product is one catalogue item of a tenant.
type Product struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	Description   string  `json:"description"`
	CategoryName  string  `json:"category_name"`
	SellingPrice  Amount  `json:"selling_price"`
	DiscountPrice *Amount `json:"discount_price,omitempty"`
	Quantity      int     `json:"quantity"`
	MinQuantity   int     `json:"min_quantity"`
	Status        string  `json:"status"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
}

func (p Product) RecordKey() string { return strconv.FormatInt(p.ID, 10) }

// OutOfStock reports a zero quantity.
func (p Product) OutOfStock() bool { return p.Quantity == 0 }

// LowStock reports a positive quantity at or below the minimum level.
func (p Product) LowStock() bool { return p.Quantity > 0 && p.Quantity <= p.MinQuantity }

// StockLevel classifies the product as in, low or out of stock.
func (p Product) StockLevel() string {
	switch {
	case p.OutOfStock():
		return StockOut
	case p.Quantity <= p.MinQuantity:
		return StockLow
	default:
		return StockIn
	}
}

// StockValue is the selling price times the quantity on hand.
func (p Product) StockValue() float64 {
	return p.SellingPrice.Float() * float64(p.Quantity)
}
