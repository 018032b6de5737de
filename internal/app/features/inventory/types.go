// internal/app/features/inventory/types.go
package inventory

// Row is one product in the stock table.
type Row struct {
	ID          string
	Name        string
	SKU         string
	Category    string
	Quantity    int
	MinQuantity int
	Shortfall   int
	StockLevel  string
	StockTone   string
	Value       string
}
