// internal/domain/models/customer.go
package models

import (
	"strconv"
	"strings"
)

// Customer lifecycle statuses.
const (
	CustomerLead     = "lead"
	CustomerProspect = "prospect"
	CustomerActive   = "active"
)

// Customer is a client record of a tenant.
type Customer struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	CustomerType string `json:"customer_type"`
	Status       string `json:"status"`
	City         string `json:"city"`
	State        string `json:"state"`
	Notes        string `json:"notes,omitempty"`
	CreatedAt    string `json:"created_at"`
}

func (c Customer) RecordKey() string { return strconv.FormatInt(c.ID, 10) }

// FullName joins first and last name.
func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Location joins city and state, skipping blanks.
func (c Customer) Location() string {
	parts := make([]string, 0, 2)
	for _, p := range []string{c.City, c.State} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
