// internal/app/features/customers/export.go
package customers

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dalemusser/jewelcrm/internal/app/system/listview"
	"github.com/dalemusser/jewelcrm/internal/app/system/timeouts"
	"go.uber.org/zap"
)

var csvHeader = []string{"ID", "First Name", "Last Name", "Email", "Phone", "Type", "Status", "City", "State", "Created"}

// Export streams the customers visible under the request's filters as CSV.
// The export reads the view's collection; a view that cannot be resolved
// is opened and loaded first.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Export())
	defer cancel()

	ctrl, _, opened, err := h.Page.Resolve(r)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "open view failed", err, "Unable to export customers.", basePath)
		return
	}
	if opened {
		h.Page.Load(ctx, ctrl)
	}
	if ctrl.State() != listview.Success {
		err := ctrl.Err()
		if err == nil {
			err = errors.New("customers not loaded")
		}
		h.ErrLog.LogServerError(w, r, "customer export failed", err, "Unable to export customers.", basePath)
		return
	}

	visible := h.Page.Visible(r, ctrl)

	filename := fmt.Sprintf("customers-%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	cw := csv.NewWriter(w)
	_ = cw.Write(csvHeader)
	for _, c := range visible {
		_ = cw.Write([]string{
			c.RecordKey(),
			c.FirstName,
			c.LastName,
			c.Email,
			c.Phone,
			c.CustomerType,
			c.Status,
			c.City,
			c.State,
			datePart(c.CreatedAt),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		h.Log.Warn("customer export write failed", zap.Error(err))
		return
	}

	h.Audit.CustomersExported(ctx, r, len(visible), describeFilter(h.Page.FilterState(r)))
}

// describeFilter renders the active predicates as a query string.
func describeFilter(st listview.FilterState) string {
	v := url.Values{}
	if st.Search != "" {
		v.Set("q", st.Search)
	}
	for name := range st.Categories {
		if val := st.Value(name); val != listview.All {
			v.Set(name, val)
		}
	}
	return v.Encode()
}
