package fiber

import "math"

// SummaryResponse is the chart-ready dataset summary.
type SummaryResponse struct {
	Dataset      string                      `json:"dataset"`
	Name         string                      `json:"name"`
	TotalRows    int                         `json:"total_rows"`
	FilteredRows int                         `json:"filtered_rows"`
	Field        string                      `json:"field,omitempty"`
	Statistics   *StatisticsResponse         `json:"statistics"`
	Frequencies  map[string][]FrequencyEntry `json:"frequencies"`
}

// StatisticsResponse reports two-decimal display values; null means the
// selected field had no numeric data.
type StatisticsResponse struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Std   float64 `json:"std"`
}

type FrequencyEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type FlagCountsResponse struct {
	Dataset      string      `json:"dataset"`
	FilteredRows int         `json:"filtered_rows"`
	Counts       []FlagEntry `json:"counts"`
	Subscribers  *int        `json:"subscribers,omitempty"`
}

type FlagEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type SleepByAgeResponse struct {
	Buckets []AgeBucketEntry `json:"buckets"`
}

type AgeBucketEntry struct {
	Label    string  `json:"label"`
	Count    int     `json:"count"`
	AvgSleep float64 `json:"avg_sleep"`
}

type MemberProfileResponse struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"unknown_dataset"`
	Message string `json:"message,omitempty"`
}

// round2 is the display rounding convention for statistics.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
