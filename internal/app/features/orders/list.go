// internal/app/features/orders/list.go
package orders

import (
	"strconv"

	"github.com/dalemusser/jewelcrm/internal/app/system/listpage"
	"github.com/dalemusser/jewelcrm/internal/app/system/listview"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
)

func status(o models.Order) string { return o.Status }

// Filters searches order number and customer and filters by status.
var Filters = listview.Filters[models.Order]{
	SearchFields: []func(models.Order) string{
		func(o models.Order) string { return o.OrderNumber },
		func(o models.Order) string { return o.CustomerName },
	},
	Categories: []listview.Category[models.Order]{
		{
			Name:  "status",
			Label: "All statuses",
			Options: []listview.Option{
				{Value: models.OrderPending, Label: "Pending"},
				{Value: models.OrderCompleted, Label: "Completed"},
				{Value: models.OrderCancelled, Label: "Cancelled"},
			},
			Value: status,
		},
	},
}

// ComputeStats summarizes the full order list.
func ComputeStats(items []models.Order) Stats {
	st := listview.Compute(items,
		listview.CountEq("pending", status, models.OrderPending),
		listview.CountEq("completed", status, models.OrderCompleted),
		listview.CountEq("cancelled", status, models.OrderCancelled),
		listview.SumWhere("revenue",
			func(o models.Order) bool { return o.Status == models.OrderCompleted },
			func(o models.Order) float64 { return o.TotalAmount.Float() }),
	)
	return Stats{
		Total:     st.Count,
		Pending:   st.Int("pending"),
		Completed: st.Int("completed"),
		Cancelled: st.Int("cancelled"),
		Revenue:   st.Float("revenue"),
	}
}

func statCards(items []models.Order) []listpage.StatCard {
	st := ComputeStats(items)
	rev := models.Amount(st.Revenue)
	return []listpage.StatCard{
		{Label: "Total Orders", Value: strconv.Itoa(st.Total)},
		{Label: "Pending", Value: strconv.Itoa(st.Pending), Tone: "warn"},
		{Label: "Completed", Value: strconv.Itoa(st.Completed), Tone: "good"},
		{Label: "Cancelled", Value: strconv.Itoa(st.Cancelled), Tone: "bad"},
		{Label: "Revenue", Value: rev.Lakhs(), Hint: rev.Rupees()},
	}
}

// StatusTone maps an order status to a badge tone.
func StatusTone(s string) string {
	switch s {
	case models.OrderCompleted:
		return "good"
	case models.OrderPending:
		return "warn"
	case models.OrderCancelled:
		return "bad"
	}
	return "neutral"
}

func toRow(o models.Order) Row {
	date := o.CreatedAt
	if len(date) > 10 {
		date = date[:10]
	}
	return Row{
		ID:       o.RecordKey(),
		Number:   o.OrderNumber,
		Customer: o.CustomerName,
		Status:   o.Status,
		Tone:     StatusTone(o.Status),
		Total:    o.TotalAmount.Rupees(),
		Date:     date,
	}
}

func pageConfig(src listview.Source[models.Order]) listpage.Config[models.Order, Row] {
	return listpage.Config[models.Order, Row]{
		Name:          "orders",
		Title:         "Orders",
		BasePath:      "/manager/orders",
		TableTarget:   "orders-table-wrap",
		PageTemplate:  "orders_list",
		TableTemplate: "orders_table",
		SearchLabel:   "Search order number or customer",
		EmptyText:     "No orders match the current filters.",
		Source:        src,
		Filters:       Filters,
		Stats:         statCards,
		Row:           toRow,
	}
}
