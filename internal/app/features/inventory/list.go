// internal/app/features/inventory/list.go
package inventory

import (
	"strconv"

	"github.com/dalemusser/jewelcrm/internal/app/features/products"
	"github.com/dalemusser/jewelcrm/internal/app/system/listpage"
	"github.com/dalemusser/jewelcrm/internal/app/system/listview"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
)

// Filters searches product name and SKU and filters by stock level.
var Filters = listview.Filters[models.Product]{
	SearchFields: []func(models.Product) string{
		func(p models.Product) string { return p.Name },
		func(p models.Product) string { return p.SKU },
	},
	Categories: []listview.Category[models.Product]{
		{
			Name:  "stock",
			Label: "All stock levels",
			Options: []listview.Option{
				{Value: models.StockIn, Label: "In stock"},
				{Value: models.StockLow, Label: "Low stock"},
				{Value: models.StockOut, Label: "Out of stock"},
			},
			Value: models.Product.StockLevel,
		},
		{
			Name:  "category",
			Label: "All categories",
			Value: func(p models.Product) string { return p.CategoryName },
		},
	},
}

func statCards(items []models.Product) []listpage.StatCard {
	st := products.ComputeStats(items)
	value := models.Amount(st.InventoryValue)
	return []listpage.StatCard{
		{Label: "Items Tracked", Value: strconv.Itoa(st.Total)},
		{Label: "Low Stock", Value: strconv.Itoa(st.LowStock), Hint: "at or below minimum", Tone: "warn"},
		{Label: "Out of Stock", Value: strconv.Itoa(st.OutOfStock), Tone: "bad"},
		{Label: "Stock Value", Value: value.Lakhs(), Hint: value.Rupees()},
	}
}

func toRow(p models.Product) Row {
	short := 0
	if p.Quantity < p.MinQuantity {
		short = p.MinQuantity - p.Quantity
	}
	return Row{
		ID:          p.RecordKey(),
		Name:        p.Name,
		SKU:         p.SKU,
		Category:    p.CategoryName,
		Quantity:    p.Quantity,
		MinQuantity: p.MinQuantity,
		Shortfall:   short,
		StockLevel:  p.StockLevel(),
		StockTone:   products.StockTone(p.StockLevel()),
		Value:       models.Amount(p.StockValue()).Rupees(),
	}
}

func pageConfig(src listview.Source[models.Product]) listpage.Config[models.Product, Row] {
	return listpage.Config[models.Product, Row]{
		Name:          "inventory",
		Title:         "Inventory",
		BasePath:      "/manager/inventory",
		TableTarget:   "inventory-table-wrap",
		PageTemplate:  "inventory_list",
		TableTemplate: "inventory_table",
		SearchLabel:   "Search product or SKU",
		EmptyText:     "No stock items match the current filters.",
		Source:        src,
		Filters:       Filters,
		Stats:         statCards,
		Row:           toRow,
	}
}
