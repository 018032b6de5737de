package inventory_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/dalemusser/jewelcrm/internal/app/features/inventory"
	"github.com/dalemusser/jewelcrm/internal/app/system/listpage"
	"github.com/dalemusser/jewelcrm/internal/app/system/listview"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
	"github.com/dalemusser/jewelcrm/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var stock = []models.Product{
	{ID: 1, Name: "Gold Chain", SKU: "GC-1", CategoryName: "Gold", SellingPrice: 60000, Quantity: 0, MinQuantity: 2},
	{ID: 2, Name: "Ruby Ring", SKU: "RR-2", CategoryName: "Gold", SellingPrice: 30000, Quantity: 1, MinQuantity: 3},
	{ID: 3, Name: "Silver Toe Ring", SKU: "ST-3", CategoryName: "Silver", SellingPrice: 800, Quantity: 25, MinQuantity: 5},
}

func newRouter(t *testing.T) (http.Handler, *testutil.Renderer) {
	t.Helper()
	kit, rend := testutil.NewKit(t)
	src := listview.SourceFunc[models.Product](func(context.Context) ([]models.Product, error) { return stock, nil })
	return inventory.Routes(inventory.NewHandler(src, kit, zap.NewNop())), rend
}

func vmOf(t *testing.T, rend *testutil.Renderer) listpage.ViewModel[inventory.Row] {
	t.Helper()
	vm, ok := rend.Last(t).Data.(listpage.ViewModel[inventory.Row])
	require.True(t, ok)
	return vm
}

func TestInventory_RowsCarryShortfall(t *testing.T) {
	router, rend := newRouter(t)
	router.ServeHTTP(testutil.NewRecorder(), testutil.NewRequest(http.MethodGet, "/"))

	vm := vmOf(t, rend)
	require.Len(t, vm.Rows, 3)
	assert.Equal(t, 2, vm.Rows[0].Shortfall)
	assert.Equal(t, 2, vm.Rows[1].Shortfall)
	assert.Equal(t, 0, vm.Rows[2].Shortfall)
	assert.Equal(t, "₹20,000", vm.Rows[2].Value)
	assert.Equal(t, "1", vm.Stats[1].Value)
	assert.Equal(t, "1", vm.Stats[2].Value)
}

func TestInventory_StockLevelFilter(t *testing.T) {
	router, rend := newRouter(t)
	router.ServeHTTP(testutil.NewRecorder(), testutil.NewRequest(http.MethodGet, "/"))
	token := vmOf(t, rend).ViewToken

	q := url.Values{"view": {token}, "stock": {models.StockLow}}
	router.ServeHTTP(testutil.NewRecorder(), testutil.NewHTMXRequest(http.MethodGet, "/table?"+q.Encode(), "inventory-table-wrap"))

	vm := vmOf(t, rend)
	require.Len(t, vm.Rows, 1)
	assert.Equal(t, "Ruby Ring", vm.Rows[0].Name)
}

func TestInventory_CategoryOptionsComeFromData(t *testing.T) {
	router, rend := newRouter(t)
	router.ServeHTTP(testutil.NewRecorder(), testutil.NewRequest(http.MethodGet, "/"))

	vm := vmOf(t, rend)
	require.Len(t, vm.Filters, 2)
	assert.Equal(t, []listview.Option{
		{Value: "Gold", Label: "Gold"},
		{Value: "Silver", Label: "Silver"},
	}, vm.Filters[1].Options)
}
