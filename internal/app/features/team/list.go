// internal/app/features/team/list.go
package team

import (
	"strconv"

	"github.com/dalemusser/jewelcrm/internal/app/system/listpage"
	"github.com/dalemusser/jewelcrm/internal/app/system/listview"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
)

// Filters searches name, username and email and filters by role and status.
// Role options are taken from the loaded team.
var Filters = listview.Filters[models.TeamMember]{
	SearchFields: []func(models.TeamMember) string{
		models.TeamMember.DisplayName,
		func(m models.TeamMember) string { return m.Username },
		func(m models.TeamMember) string { return m.Email },
	},
	Categories: []listview.Category[models.TeamMember]{
		{
			Name:  "role",
			Label: "All roles",
			Value: func(m models.TeamMember) string { return m.Role },
		},
		{
			Name:  "status",
			Label: "All statuses",
			Options: []listview.Option{
				{Value: "active", Label: "Active"},
				{Value: "inactive", Label: "Inactive"},
			},
			Value: models.TeamMember.Status,
		},
	},
}

func statCards(items []models.TeamMember) []listpage.StatCard {
	st := listview.Compute(items,
		listview.CountWhere("active", func(m models.TeamMember) bool { return m.IsActive }),
	)
	return []listpage.StatCard{
		{Label: "Team Members", Value: strconv.Itoa(st.Count)},
		{Label: "Active", Value: strconv.Itoa(st.Int("active")), Tone: "good"},
		{Label: "Inactive", Value: strconv.Itoa(st.Count - st.Int("active"))},
	}
}

func toRow(m models.TeamMember) Row {
	return Row{
		ID:       m.RecordKey(),
		Name:     m.DisplayName(),
		Username: m.Username,
		Email:    m.Email,
		Role:     m.RoleLabel(),
		Status:   m.Status(),
	}
}

func pageConfig(src listview.Source[models.TeamMember]) listpage.Config[models.TeamMember, Row] {
	return listpage.Config[models.TeamMember, Row]{
		Name:          "team",
		Title:         "Team",
		BasePath:      "/manager/team",
		TableTarget:   "team-table-wrap",
		PageTemplate:  "team_list",
		TableTemplate: "team_table",
		SearchLabel:   "Search name, username or email",
		EmptyText:     "No team members match the current filters.",
		Source:        src,
		Filters:       Filters,
		Stats:         statCards,
		Row:           toRow,
	}
}
