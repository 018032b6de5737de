package viewdata_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/jewelcrm/internal/app/system/viewdata"
	"github.com/stretchr/testify/assert"
)

func activeHrefs(secs []viewdata.NavSection) []string {
	var out []string
	for _, s := range secs {
		for _, it := range s.Items {
			if it.Active {
				out = append(out, it.Href)
			}
		}
	}
	return out
}

func TestNav_MarksActive(t *testing.T) {
	assert.Equal(t, []string{"/manager/products"}, activeHrefs(viewdata.Nav("/manager/products")))
	assert.Equal(t, []string{"/manager/customers"}, activeHrefs(viewdata.Nav("/manager/customers/12")))
	assert.Empty(t, activeHrefs(viewdata.Nav("/")))
	assert.Empty(t, activeHrefs(viewdata.Nav("/manager/productsx")))
}

func TestSiteName(t *testing.T) {
	t.Cleanup(func() { viewdata.SetSiteName("") })

	assert.Equal(t, viewdata.DefaultSiteName, viewdata.SiteName())
	viewdata.SetSiteName("  Lakshmi Jewellers ")
	assert.Equal(t, "Lakshmi Jewellers", viewdata.SiteName())

	vm := viewdata.NewBaseVM(httptest.NewRequest("GET", "/manager/orders", nil), "Orders", "/")
	assert.Equal(t, "Lakshmi Jewellers", vm.SiteName)
	assert.Equal(t, "Orders", vm.Title)
	assert.Equal(t, []string{"/manager/orders"}, activeHrefs(vm.Nav))
}
