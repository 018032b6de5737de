// internal/domain/models/deal.go
package models

import "strconv"

// Pipeline stages in board order.
const (
	StageLead        = "lead"
	StageContacted   = "contacted"
	StageQualified   = "qualified"
	StageProposal    = "proposal"
	StageNegotiation = "negotiation"
	StageClosedWon   = "closed_won"
	StageClosedLost  = "closed_lost"
)

// Stage is a pipeline column.
type Stage struct {
	Code  string
	Label string
}

// Stages lists every pipeline stage in board order.
var Stages = []Stage{
	{StageLead, "Lead"},
	{StageContacted, "Contacted"},
	{StageQualified, "Qualified"},
	{StageProposal, "Proposal"},
	{StageNegotiation, "Negotiation"},
	{StageClosedWon, "Closed Won"},
	{StageClosedLost, "Closed Lost"},
}

// Deal is one sales-pipeline opportunity.
type Deal struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	ClientName    string `json:"client_name"`
	Stage         string `json:"stage"`
	ExpectedValue Amount `json:"expected_value"`
	Probability   int    `json:"probability"`
	CreatedAt     string `json:"created_at"`
}

func (d Deal) RecordKey() string { return strconv.FormatInt(d.ID, 10) }

// Closed reports whether the deal left the active pipeline.
func (d Deal) Closed() bool {
	return d.Stage == StageClosedWon || d.Stage == StageClosedLost
}
