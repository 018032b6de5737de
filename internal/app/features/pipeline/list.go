// internal/app/features/pipeline/list.go
package pipeline

import (
	"fmt"
	"strconv"

	"github.com/dalemusser/jewelcrm/internal/app/system/listpage"
	"github.com/dalemusser/jewelcrm/internal/app/system/listview"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
)

func stage(d models.Deal) string { return d.Stage }

func open(d models.Deal) bool { return !d.Closed() }

func value(d models.Deal) float64 { return d.ExpectedValue.Float() }

func stageOptions() []listview.Option {
	opts := make([]listview.Option, 0, len(models.Stages))
	for _, s := range models.Stages {
		opts = append(opts, listview.Option{Value: s.Code, Label: s.Label})
	}
	return opts
}

// Filters searches deal title and client and filters by stage.
var Filters = listview.Filters[models.Deal]{
	SearchFields: []func(models.Deal) string{
		func(d models.Deal) string { return d.Title },
		func(d models.Deal) string { return d.ClientName },
	},
	Categories: []listview.Category[models.Deal]{
		{Name: "stage", Label: "All stages", Options: stageOptions(), Value: stage},
	},
}

// ComputeStats summarizes the full deal list. Rates are zero on empty input.
func ComputeStats(items []models.Deal) Stats {
	st := listview.Compute(items,
		listview.CountWhere("active", open),
		listview.SumWhere("value", open, value),
		listview.CountEq("won", stage, models.StageClosedWon),
	)
	out := Stats{
		TotalValue:  st.Float("value"),
		ActiveDeals: st.Int("active"),
	}
	if st.Count > 0 {
		out.ConversionRate = float64(st.Int("won")) / float64(st.Count) * 100
	}
	if out.ActiveDeals > 0 {
		out.AvgDealSize = out.TotalValue / float64(out.ActiveDeals)
	}
	return out
}

// StageCards reduces the deals to one card per stage, in board order.
// Stages with no deals still get a card.
func StageCards(items []models.Deal) []StageCard {
	aggs := make([]listview.Aggregate[models.Deal], 0, 2*len(models.Stages))
	for _, s := range models.Stages {
		code := s.Code
		aggs = append(aggs,
			listview.CountEq("n:"+code, stage, code),
			listview.SumWhere("v:"+code, func(d models.Deal) bool { return d.Stage == code }, value))
	}
	st := listview.Compute(items, aggs...)

	cards := make([]StageCard, 0, len(models.Stages))
	for _, s := range models.Stages {
		cards = append(cards, StageCard{
			Code:  s.Code,
			Label: s.Label,
			Count: st.Int("n:" + s.Code),
			Value: models.Amount(st.Float("v:" + s.Code)).Rupees(),
		})
	}
	return cards
}

func statCards(items []models.Deal) []listpage.StatCard {
	st := ComputeStats(items)
	return []listpage.StatCard{
		{Label: "Total Pipeline Value", Value: models.Amount(st.TotalValue).Rupees(), Hint: fmt.Sprintf("%d active deals", st.ActiveDeals)},
		{Label: "Active Deals", Value: strconv.Itoa(st.ActiveDeals), Hint: "Total active pipelines"},
		{Label: "Conversion Rate", Value: fmt.Sprintf("%.1f%%", st.ConversionRate), Hint: "Win rate"},
		{Label: "Avg Deal Size", Value: models.Amount(st.AvgDealSize).Rupees(), Hint: "Average deal value"},
	}
}

func stageExtra(items []models.Deal) any { return StageCards(items) }

func toRow(d models.Deal) Row {
	created := d.CreatedAt
	if len(created) > 10 {
		created = created[:10]
	}
	return Row{
		ID:          d.RecordKey(),
		Title:       d.Title,
		Client:      d.ClientName,
		Stage:       d.Stage,
		StageLabel:  models.Label(d.Stage),
		Value:       d.ExpectedValue.Rupees(),
		Probability: d.Probability,
		Created:     created,
	}
}

func pageConfig(src listview.Source[models.Deal]) listpage.Config[models.Deal, Row] {
	return listpage.Config[models.Deal, Row]{
		Name:          "pipeline",
		Title:         "Sales Pipeline",
		BasePath:      "/manager/pipeline",
		TableTarget:   "pipeline-table-wrap",
		PageTemplate:  "pipeline_list",
		TableTemplate: "pipeline_table",
		SearchLabel:   "Search deal or client",
		EmptyText:     "No deals match the current filters.",
		Source:        src,
		Filters:       Filters,
		Stats:         statCards,
		Extra:         stageExtra,
		Row:           toRow,
	}
}
