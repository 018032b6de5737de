// internal/app/features/customers/types.go
package customers

import (
	"github.com/dalemusser/jewelcrm/internal/app/system/viewdata"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
)

// Row is one customer in the table.
type Row struct {
	ID       string
	Name     string
	Email    string
	Phone    string
	Type     string
	Status   string
	Location string
	Since    string
}

// Stats are the customer summary figures.
type Stats struct {
	Total     int
	Leads     int
	Prospects int
	Active    int
}

// detailData is the view model of the customer detail page.
type detailData struct {
	viewdata.BaseVM

	Customer models.Customer
	Name     string
	Location string
	Type     string
	Error    string
	NotFound bool
}
