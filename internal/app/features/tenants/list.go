// internal/app/features/tenants/list.go
package tenants

import (
	"strconv"
	"strings"

	"github.com/dalemusser/jewelcrm/internal/app/system/listpage"
	"github.com/dalemusser/jewelcrm/internal/app/system/listview"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
)

// Subscription statuses reported by the backend.
const (
	SubscriptionActive   = "active"
	SubscriptionTrial    = "trial"
	SubscriptionInactive = "inactive"
)

func subscription(t models.Tenant) string { return t.SubscriptionStatus }

// Filters searches tenant name and business type and filters by
// subscription status.
var Filters = listview.Filters[models.Tenant]{
	SearchFields: []func(models.Tenant) string{
		func(t models.Tenant) string { return t.Name },
		func(t models.Tenant) string { return t.BusinessType },
	},
	Categories: []listview.Category[models.Tenant]{
		{
			Name:  "subscription",
			Label: "All subscriptions",
			Options: []listview.Option{
				{Value: SubscriptionActive, Label: "Active"},
				{Value: SubscriptionTrial, Label: "Trial"},
				{Value: SubscriptionInactive, Label: "Inactive"},
			},
			Value: subscription,
		},
	},
}

// ComputeStats summarizes every tenant on the platform.
func ComputeStats(items []models.Tenant) Stats {
	st := listview.Compute(items,
		listview.CountEq("active", subscription, SubscriptionActive),
		listview.CountEq("trial", subscription, SubscriptionTrial),
		listview.Sum("users", func(t models.Tenant) float64 { return float64(t.UserCount()) }),
	)
	return Stats{
		Total:  st.Count,
		Active: st.Int("active"),
		Trial:  st.Int("trial"),
		Users:  st.Int("users"),
	}
}

func statCards(items []models.Tenant) []listpage.StatCard {
	st := ComputeStats(items)
	return []listpage.StatCard{
		{Label: "Tenants", Value: strconv.Itoa(st.Total)},
		{Label: "Active", Value: strconv.Itoa(st.Active), Tone: "good"},
		{Label: "On Trial", Value: strconv.Itoa(st.Trial), Tone: "warn"},
		{Label: "Users", Value: strconv.Itoa(st.Users)},
	}
}

func subscriptionTone(s string) string {
	switch s {
	case SubscriptionActive:
		return "good"
	case SubscriptionTrial:
		return "warn"
	case SubscriptionInactive:
		return "bad"
	}
	return "neutral"
}

// admins lists the usernames of a tenant's admin users.
func admins(t models.Tenant) []string {
	var out []string
	for _, u := range t.Users {
		if strings.Contains(u.Role, "admin") {
			out = append(out, u.Username)
		}
	}
	return out
}

func toRow(t models.Tenant) Row {
	created := t.CreatedAt
	if len(created) > 10 {
		created = created[:10]
	}
	return Row{
		ID:           t.RecordKey(),
		Name:         t.Name,
		BusinessType: models.Label(t.BusinessType),
		Subscription: t.SubscriptionStatus,
		Tone:         subscriptionTone(t.SubscriptionStatus),
		Users:        t.UserCount(),
		Admins:       admins(t),
		Created:      created,
	}
}

func pageConfig(src listview.Source[models.Tenant]) listpage.Config[models.Tenant, Row] {
	return listpage.Config[models.Tenant, Row]{
		Name:          "tenants",
		Title:         "Tenants",
		BasePath:      "/platform/tenants",
		TableTarget:   "tenants-table-wrap",
		PageTemplate:  "tenants_list",
		TableTemplate: "tenants_table",
		SearchLabel:   "Search tenant or business type",
		EmptyText:     "No tenants match the current filters.",
		Source:        src,
		Filters:       Filters,
		Stats:         statCards,
		Row:           toRow,
	}
}
