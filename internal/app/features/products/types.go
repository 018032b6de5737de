// internal/app/features/products/types.go
package products

// Row is a single row in the products table.
type Row struct {
	ID         string
	Name       string
	SKU        string
	Category   string
	Price      string
	Discount   string
	Quantity   int
	StockLevel string
	StockTone  string
	Status     string
}

// Stats are the summary figures of the product catalogue.
type Stats struct {
	Total          int
	LowStock       int
	OutOfStock     int
	InventoryValue float64
}
