// internal/app/features/customers/show.go
package customers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dalemusser/jewelcrm/internal/app/system/crmapi"
	"github.com/dalemusser/jewelcrm/internal/app/system/timeouts"
	"github.com/dalemusser/jewelcrm/internal/app/system/viewdata"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Show renders one customer fetched directly from the backend.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.ErrLog.LogBadRequest(w, r, "invalid customer id", err, "Invalid customer.", basePath)
		return
	}

	ctx, cancel := timeouts.WithFetch(r.Context())
	defer cancel()

	data := detailData{BaseVM: viewdata.NewBaseVM(r, "Customer", basePath)}

	c, err := h.API.Get(ctx, id)
	if err != nil {
		var apiErr *crmapi.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			data.NotFound = true
			data.Error = "Customer not found."
			w.WriteHeader(http.StatusNotFound)
		} else {
			h.Log.Warn("customer fetch failed", zap.Int64("id", id), zap.Error(err))
			data.Error = err.Error()
			w.WriteHeader(http.StatusBadGateway)
		}
		h.Render.Page(w, r, "customer_detail", data)
		return
	}

	data.Title = c.FullName()
	data.Customer = c
	data.Name = c.FullName()
	data.Location = c.Location()
	data.Type = models.Label(c.CustomerType)
	h.Render.Page(w, r, "customer_detail", data)
}
