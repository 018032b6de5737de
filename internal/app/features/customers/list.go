// internal/app/features/customers/list.go
package customers

import (
	"strconv"

	"github.com/dalemusser/jewelcrm/internal/app/system/listpage"
	"github.com/dalemusser/jewelcrm/internal/app/system/listview"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
)

const basePath = "/manager/customers"

// Filters searches name, email and phone and filters by status and type.
var Filters = listview.Filters[models.Customer]{
	SearchFields: []func(models.Customer) string{
		models.Customer.FullName,
		func(c models.Customer) string { return c.Email },
		func(c models.Customer) string { return c.Phone },
	},
	Categories: []listview.Category[models.Customer]{
		{
			Name:  "status",
			Label: "All statuses",
			Options: []listview.Option{
				{Value: models.CustomerLead, Label: "Lead"},
				{Value: models.CustomerProspect, Label: "Prospect"},
				{Value: models.CustomerActive, Label: "Active"},
			},
			Value: func(c models.Customer) string { return c.Status },
		},
		{
			Name:  "type",
			Label: "All types",
			Value: func(c models.Customer) string { return c.CustomerType },
		},
	},
}

// ComputeStats summarizes the full customer list.
func ComputeStats(items []models.Customer) Stats {
	status := func(c models.Customer) string { return c.Status }
	st := listview.Compute(items,
		listview.CountEq("leads", status, models.CustomerLead),
		listview.CountEq("prospects", status, models.CustomerProspect),
		listview.CountEq("active", status, models.CustomerActive),
	)
	return Stats{
		Total:     st.Count,
		Leads:     st.Int("leads"),
		Prospects: st.Int("prospects"),
		Active:    st.Int("active"),
	}
}

func statCards(items []models.Customer) []listpage.StatCard {
	st := ComputeStats(items)
	return []listpage.StatCard{
		{Label: "Total Customers", Value: strconv.Itoa(st.Total)},
		{Label: "Leads", Value: strconv.Itoa(st.Leads)},
		{Label: "Prospects", Value: strconv.Itoa(st.Prospects)},
		{Label: "Active", Value: strconv.Itoa(st.Active), Tone: "good"},
	}
}

func toRow(c models.Customer) Row {
	return Row{
		ID:       c.RecordKey(),
		Name:     c.FullName(),
		Email:    c.Email,
		Phone:    c.Phone,
		Type:     models.Label(c.CustomerType),
		Status:   c.Status,
		Location: c.Location(),
		Since:    datePart(c.CreatedAt),
	}
}

// datePart trims an ISO timestamp to its date.
func datePart(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}

func pageConfig(src listview.Source[models.Customer]) listpage.Config[models.Customer, Row] {
	return listpage.Config[models.Customer, Row]{
		Name:          "customers",
		Title:         "Customers",
		BasePath:      basePath,
		TableTarget:   "customers-table-wrap",
		PageTemplate:  "customers_list",
		TableTemplate: "customers_table",
		SearchLabel:   "Search name, email or phone",
		EmptyText:     "No customers match the current filters.",
		Source:        src,
		Filters:       Filters,
		Stats:         statCards,
		Row:           toRow,
	}
}
