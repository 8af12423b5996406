package analytics

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/models"
)

// BuildLeadReport aggregates stored chat summaries into the dashboard
// payload. Aggregation happens in Go because services and pain points
// live inside JSONB arrays.
func BuildLeadReport(period string, summaries []models.ChatSummary) LeadReport {
	qualCounts := map[string]int{"Hot": 0, "Warm": 0, "Cold": 0}
	perDay := map[string]int{}
	serviceCounts := map[string]int{}
	painPointCounts := map[string]int{}
	contactShared := 0

	for _, s := range summaries {
		qualCounts[s.LeadQualification]++
		perDay[s.InteractionDate.Format("2006-01-02")]++

		for _, svc := range decodeStrings(s.ServicesDiscussed) {
			serviceCounts[svc]++
		}
		for _, pp := range decodeStrings(s.KeyPainPoints) {
			painPointCounts[pp]++
		}

		var contact map[string]string
		if err := json.Unmarshal(s.ContactInfo, &contact); err == nil {
			if contact["email"] != "" || contact["phone"] != "" {
				contactShared++
			}
		}
	}

	total := len(summaries)
	contactRate := 0.0
	if total > 0 {
		contactRate = float64(contactShared) / float64(total) * 100
	}

	return LeadReport{
		Period: period,
		Cards: []StatCard{
			{Title: "Total conversations", Value: fmt.Sprintf("%d", total)},
			{Title: "Hot leads", Value: fmt.Sprintf("%d", qualCounts["Hot"])},
			{Title: "Contact share rate", Value: fmt.Sprintf("%.0f%%", contactRate)},
		},
		Qualification: PieChartData{
			Type:   "donut",
			Labels: []string{"Hot", "Warm", "Cold"},
			Values: []float64{
				float64(qualCounts["Hot"]),
				float64(qualCounts["Warm"]),
				float64(qualCounts["Cold"]),
			},
		},
		LeadsPerDay:   toSortedLine(perDay),
		TopServices:   toTopBar(serviceCounts, 5),
		TopPainPoints: toTopBar(painPointCounts, 5),
	}
}

func decodeStrings(raw []byte) []string {
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

func toSortedLine(perDay map[string]int) ChartData {
	days := make([]string, 0, len(perDay))
	for d := range perDay {
		days = append(days, d)
	}
	sort.Strings(days)

	values := make([]float64, len(days))
	for i, d := range days {
		values[i] = float64(perDay[d])
	}
	return ChartData{Type: "line", Labels: days, Values: values}
}

func toTopBar(counts map[string]int, n int) ChartData {
	type kv struct {
		key   string
		count int
	}
	pairs := make([]kv, 0, len(counts))
	for k, c := range counts {
		pairs = append(pairs, kv{k, c})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].count != pairs[j].count {
			return pairs[i].count > pairs[j].count
		}
		return pairs[i].key < pairs[j].key
	})
	if len(pairs) > n {
		pairs = pairs[:n]
	}

	labels := make([]string, len(pairs))
	values := make([]float64, len(pairs))
	for i, p := range pairs {
		labels[i] = p.key
		values[i] = float64(p.count)
	}
	return ChartData{Type: "bar", Labels: labels, Values: values}
}
