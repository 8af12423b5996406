package analytics

import "time"

// DateRange represents a time period for filtering
type DateRange struct {
	Start time.Time
	End   time.Time
}

// PieChartData represents pie chart specific data
type PieChartData struct {
	Type   string    `json:"type"` // "pie" or "donut"
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// ChartData represents a single-series chart
type ChartData struct {
	Type   string    `json:"type"` // "line", "bar"
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// StatCard represents a summary statistic card
type StatCard struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// LeadReport is the full analytics payload for the dashboard
type LeadReport struct {
	Period        string       `json:"period"`
	Cards         []StatCard   `json:"cards"`
	Qualification PieChartData `json:"qualification"`
	LeadsPerDay   ChartData    `json:"leads_per_day"`
	TopServices   ChartData    `json:"top_services"`
	TopPainPoints ChartData    `json:"top_pain_points"`
}
