// internal/app/features/pipeline/types.go
package pipeline

// Row is one deal in the table.
type Row struct {
	ID          string
	Title       string
	Client      string
	Stage       string
	StageLabel  string
	Value       string
	Probability int
	Created     string
}

// StageCard is one pipeline column summary.
type StageCard struct {
	Code  string
	Label string
	Count int
	Value string
}

// Stats are the pipeline summary figures. TotalValue, ActiveDeals and
// AvgDealSize cover open deals only; ConversionRate is won deals over all
// deals, as a percentage.
type Stats struct {
	TotalValue     float64
	ActiveDeals    int
	ConversionRate float64
	AvgDealSize    float64
}
