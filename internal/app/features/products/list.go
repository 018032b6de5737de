// internal/app/features/products/list.go
package products

import (
	"strconv"

	"github.com/dalemusser/jewelcrm/internal/app/system/listpage"
	"github.com/dalemusser/jewelcrm/internal/app/system/listview"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
)

// Categories offered by the category filter.
var categoryOptions = []listview.Option{
	{Value: "Gold", Label: "Gold"},
	{Value: "Diamond", Label: "Diamond"},
	{Value: "Silver", Label: "Silver"},
	{Value: "Platinum", Label: "Platinum"},
}

var statusOptions = []listview.Option{
	{Value: models.ProductActive, Label: "Active"},
	{Value: models.ProductInactive, Label: "Inactive"},
	{Value: models.ProductDraft, Label: "Draft"},
}

// Filters is the product search: name, SKU or description, plus exact
// category and status.
var Filters = listview.Filters[models.Product]{
	SearchFields: []func(models.Product) string{
		func(p models.Product) string { return p.Name },
		func(p models.Product) string { return p.SKU },
		func(p models.Product) string { return p.Description },
	},
	Categories: []listview.Category[models.Product]{
		{
			Name:    "category",
			Label:   "All categories",
			Options: categoryOptions,
			Value:   func(p models.Product) string { return p.CategoryName },
		},
		{
			Name:    "status",
			Label:   "All statuses",
			Options: statusOptions,
			Value:   func(p models.Product) string { return p.Status },
		},
	},
}

// ComputeStats reduces the full catalogue to its summary figures.
func ComputeStats(items []models.Product) Stats {
	st := listview.Compute(items,
		listview.CountWhere("low", models.Product.LowStock),
		listview.CountWhere("out", models.Product.OutOfStock),
		listview.Sum("value", models.Product.StockValue),
	)
	return Stats{
		Total:          st.Count,
		LowStock:       st.Int("low"),
		OutOfStock:     st.Int("out"),
		InventoryValue: st.Float("value"),
	}
}

func statCards(items []models.Product) []listpage.StatCard {
	st := ComputeStats(items)
	return []listpage.StatCard{
		{Label: "Total Products", Value: strconv.Itoa(st.Total)},
		{Label: "Low Stock", Value: strconv.Itoa(st.LowStock), Tone: toneIf(st.LowStock > 0, "warn")},
		{Label: "Out of Stock", Value: strconv.Itoa(st.OutOfStock), Tone: toneIf(st.OutOfStock > 0, "bad")},
		{Label: "Inventory Value", Value: models.Amount(st.InventoryValue).Lakhs(), Hint: models.Amount(st.InventoryValue).Rupees()},
	}
}

func toneIf(cond bool, tone string) string {
	if cond {
		return tone
	}
	return "neutral"
}

// StockTone maps a stock level to a badge tone.
func StockTone(level string) string {
	switch level {
	case models.StockOut:
		return "bad"
	case models.StockLow:
		return "warn"
	}
	return "good"
}

func toRow(p models.Product) Row {
	row := Row{
		ID:         p.RecordKey(),
		Name:       p.Name,
		SKU:        p.SKU,
		Category:   p.CategoryName,
		Price:      p.SellingPrice.Rupees(),
		Quantity:   p.Quantity,
		StockLevel: p.StockLevel(),
		StockTone:  StockTone(p.StockLevel()),
		Status:     p.Status,
	}
	if p.DiscountPrice != nil && p.DiscountPrice.Float() > 0 {
		row.Discount = p.DiscountPrice.Rupees()
	}
	return row
}

func pageConfig(src listview.Source[models.Product]) listpage.Config[models.Product, Row] {
	return listpage.Config[models.Product, Row]{
		Name:          "products",
		Title:         "Products",
		BasePath:      "/manager/products",
		TableTarget:   "products-table-wrap",
		PageTemplate:  "products_list",
		TableTemplate: "products_table",
		SearchLabel:   "Search name, SKU or description",
		EmptyText:     "No products match the current filters.",
		Source:        src,
		Filters:       Filters,
		Stats:         statCards,
		Row:           toRow,
	}
}
