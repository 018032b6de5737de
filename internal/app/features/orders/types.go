// internal/app/features/orders/types.go
package orders

// Row is one order in the table.
type Row struct {
	ID       string
	Number   string
	Customer string
	Status   string
	Tone     string
	Total    string
	Date     string
}

// Stats are the order summary figures. Revenue counts completed orders only.
type Stats struct {
	Total     int
	Pending   int
	Completed int
	Cancelled int
	Revenue   float64
}
