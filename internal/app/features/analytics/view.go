// internal/app/features/analytics/view.go
package analytics

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dalemusser/jewelcrm/internal/app/features/customers"
	"github.com/dalemusser/jewelcrm/internal/app/features/orders"
	"github.com/dalemusser/jewelcrm/internal/app/features/products"
	"github.com/dalemusser/jewelcrm/internal/app/system/listpage"
	"github.com/dalemusser/jewelcrm/internal/app/system/listview"
	"github.com/dalemusser/jewelcrm/internal/app/system/timeouts"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Panel keys, in page order.
const (
	SectionOrders    = "orders"
	SectionCustomers = "customers"
	SectionProducts  = "products"
)

var sections = []string{SectionOrders, SectionCustomers, SectionProducts}

// view holds one open analytics page: a controller per collection.
type view struct {
	orders    *listview.Controller[models.Order]
	customers *listview.Controller[models.Customer]
	products  *listview.Controller[models.Product]
}

func newView(src Sources, logger *zap.Logger) *view {
	return &view{
		orders:    listview.New[models.Order]("analytics.orders", src.Orders, logger),
		customers: listview.New[models.Customer]("analytics.customers", src.Customers, logger),
		products:  listview.New[models.Product]("analytics.products", src.Products, logger),
	}
}

// Close tears down every controller of the view.
func (v *view) Close() {
	v.orders.Close()
	v.customers.Close()
	v.products.Close()
}

// loadAll loads every panel concurrently. A failing collection only
// affects its own panel.
func (v *view) loadAll(ctx context.Context) {
	var g errgroup.Group
	for _, key := range sections {
		g.Go(func() error {
			v.load(ctx, key)
			return nil
		})
	}
	// Failures stay in each controller's snapshot and render in their own
	// panel, so Wait is only the join point and never returns an error.
	_ = g.Wait()
}

func (v *view) load(ctx context.Context, key string) bool {
	ctx, cancel := timeouts.WithFetch(ctx)
	defer cancel()
	switch key {
	case SectionOrders:
		v.orders.Load(ctx)
	case SectionCustomers:
		v.customers.Load(ctx)
	case SectionProducts:
		v.products.Load(ctx)
	default:
		return false
	}
	return true
}

func (v *view) panel(key, token string) Panel {
	switch key {
	case SectionOrders:
		return buildPanel(key, "Sales", token, v.orders.Snapshot(), orderCards)
	case SectionCustomers:
		return buildPanel(key, "Customers", token, v.customers.Snapshot(), customerCards)
	default:
		return buildPanel(key, "Inventory", token, v.products.Snapshot(), productCards)
	}
}

func (v *view) panels(token string) []Panel {
	out := make([]Panel, 0, len(sections))
	for _, key := range sections {
		out = append(out, v.panel(key, token))
	}
	return out
}

func buildPanel[T any](key, title, token string, snap listview.Snapshot[T], cards func([]T) []listpage.StatCard) Panel {
	p := Panel{
		Key:       key,
		Title:     title,
		ViewToken: token,
		State:     listview.RenderStateOf(snap.State, len(snap.Items)),
	}
	if snap.Err != nil {
		p.Error = snap.Err.Error()
	}
	if snap.State == listview.Success {
		p.Cards = cards(snap.Items)
	}
	return p
}

func orderCards(items []models.Order) []listpage.StatCard {
	st := orders.ComputeStats(items)
	avg := 0.0
	if st.Completed > 0 {
		avg = st.Revenue / float64(st.Completed)
	}
	return []listpage.StatCard{
		{Label: "Total Revenue", Value: models.Amount(st.Revenue).Rupees(), Hint: "completed orders"},
		{Label: "Total Orders", Value: strconv.Itoa(st.Total)},
		{Label: "Avg Order Value", Value: models.Amount(avg).Rupees()},
		{Label: "Pending Orders", Value: strconv.Itoa(st.Pending), Tone: "warn"},
	}
}

func customerCards(items []models.Customer) []listpage.StatCard {
	st := customers.ComputeStats(items)
	rate := 0.0
	if st.Total > 0 {
		rate = float64(st.Active) / float64(st.Total) * 100
	}
	return []listpage.StatCard{
		{Label: "Total Customers", Value: strconv.Itoa(st.Total)},
		{Label: "Active Customers", Value: strconv.Itoa(st.Active), Tone: "good"},
		{Label: "Open Leads", Value: strconv.Itoa(st.Leads + st.Prospects)},
		{Label: "Conversion Rate", Value: fmt.Sprintf("%.1f%%", rate), Hint: "active over all customers"},
	}
}

func productCards(items []models.Product) []listpage.StatCard {
	st := products.ComputeStats(items)
	return []listpage.StatCard{
		{Label: "Products", Value: strconv.Itoa(st.Total)},
		{Label: "Low Stock", Value: strconv.Itoa(st.LowStock), Tone: "warn"},
		{Label: "Out of Stock", Value: strconv.Itoa(st.OutOfStock), Tone: "bad"},
		{Label: "Inventory Value", Value: models.Amount(st.InventoryValue).Lakhs()},
	}
}
