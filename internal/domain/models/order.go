// internal/domain/models/order.go
package models

import "strconv"

// Order statuses.
const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

// Order is a sale recorded against a customer.
type Order struct {
	ID           int64  `json:"id"`
	OrderNumber  string `json:"order_number"`
	CustomerName string `json:"customer_name"`
	Status       string `json:"status"`
	TotalAmount  Amount `json:"total_amount"`
	CreatedAt    string `json:"created_at"`
}

func (o Order) RecordKey() string { return strconv.FormatInt(o.ID, 10) }
