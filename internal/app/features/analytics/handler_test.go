package analytics_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/dalemusser/jewelcrm/internal/app/features/analytics"
	"github.com/dalemusser/jewelcrm/internal/app/system/listview"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
	"github.com/dalemusser/jewelcrm/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type counts struct{ orders, customers, products atomic.Int32 }

func sources(c *counts, failCustomers bool) analytics.Sources {
	return analytics.Sources{
		Orders: listview.SourceFunc[models.Order](func(context.Context) ([]models.Order, error) {
			c.orders.Add(1)
			return []models.Order{
				{ID: 1, Status: models.OrderCompleted, TotalAmount: 100000},
				{ID: 2, Status: models.OrderCompleted, TotalAmount: 50000},
				{ID: 3, Status: models.OrderPending, TotalAmount: 20000},
			}, nil
		}),
		Customers: listview.SourceFunc[models.Customer](func(context.Context) ([]models.Customer, error) {
			c.customers.Add(1)
			if failCustomers {
				return nil, errors.New("backend down")
			}
			return []models.Customer{{ID: 1, Status: models.CustomerActive}, {ID: 2, Status: models.CustomerLead}}, nil
		}),
		Products: listview.SourceFunc[models.Product](func(context.Context) ([]models.Product, error) {
			c.products.Add(1)
			return []models.Product{{ID: 1, Quantity: 0}}, nil
		}),
	}
}

func pageOf(t *testing.T, rend *testutil.Renderer) []analytics.Panel {
	t.Helper()
	last := rend.Last(t)
	require.True(t, last.Page)
	require.Equal(t, "analytics_page", last.Name)
	data, ok := last.Data.(analytics.PageData)
	require.True(t, ok, "page data is %T", last.Data)
	assert.Len(t, data.Charts, 3)
	return data.Panels
}

func TestAnalytics_PanelsLoadIndependently(t *testing.T) {
	var c counts
	kit, rend := testutil.NewKit(t)
	router := analytics.Routes(analytics.NewHandler(sources(&c, true), kit, zap.NewNop()))

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"))
	rec.AssertStatus(t, http.StatusOK)

	panels := pageOf(t, rend)
	require.Len(t, panels, 3)

	assert.Equal(t, analytics.SectionOrders, panels[0].Key)
	assert.Equal(t, listview.RenderReady, panels[0].State)
	assert.Equal(t, "₹1,50,000", panels[0].Cards[0].Value)
	assert.Equal(t, "₹75,000", panels[0].Cards[2].Value)

	assert.Equal(t, listview.RenderError, panels[1].State)
	assert.Equal(t, "backend down", panels[1].Error)
	assert.Empty(t, panels[1].Cards)

	assert.Equal(t, listview.RenderReady, panels[2].State)
	assert.Equal(t, "1", panels[2].Cards[2].Value)

	assert.EqualValues(t, 1, c.orders.Load())
	assert.EqualValues(t, 1, c.customers.Load())
	assert.EqualValues(t, 1, c.products.Load())
}

func TestAnalytics_PanelRefreshReloadsOneCollection(t *testing.T) {
	var c counts
	kit, rend := testutil.NewKit(t)
	router := analytics.Routes(analytics.NewHandler(sources(&c, false), kit, zap.NewNop()))

	router.ServeHTTP(testutil.NewRecorder(), testutil.NewRequest(http.MethodGet, "/"))
	token := pageOf(t, rend)[0].ViewToken
	require.NotEmpty(t, token)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewHTMXRequest(http.MethodGet, "/panel/customers?"+url.Values{"view": {token}}.Encode(), "panel-customers"))
	rec.AssertContains(t, "snippet:analytics_panel")

	p, ok := rend.Last(t).Data.(analytics.Panel)
	require.True(t, ok)
	assert.Equal(t, token, p.ViewToken)
	assert.Equal(t, "50.0%", p.Cards[3].Value)

	assert.EqualValues(t, 2, c.customers.Load())
	assert.EqualValues(t, 1, c.orders.Load())
	assert.EqualValues(t, 1, c.products.Load())
}

func TestAnalytics_UnknownPanel(t *testing.T) {
	var c counts
	kit, rend := testutil.NewKit(t)
	router := analytics.Routes(analytics.NewHandler(sources(&c, false), kit, zap.NewNop()))

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/panel/weather"))
	rec.AssertStatus(t, http.StatusNotFound)
	assert.Zero(t, rend.Count())
}
