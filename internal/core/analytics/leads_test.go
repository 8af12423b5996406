package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/models"
)

func summaryAt(day string, qual string, services, painPoints, contact string) models.ChatSummary {
	d, _ := time.Parse("2006-01-02", day)
	return models.ChatSummary{
		InteractionDate:   d,
		LeadQualification: qual,
		ServicesDiscussed: datatypes.JSON(services),
		KeyPainPoints:     datatypes.JSON(painPoints),
		ContactInfo:       datatypes.JSON(contact),
	}
}

func TestBuildLeadReport(t *testing.T) {
	summaries := []models.ChatSummary{
		summaryAt("2026-08-01", "Hot", `["AI Automation","Digital Marketing"]`, `["Manual processes"]`, `{"email":"a@b.com"}`),
		summaryAt("2026-08-01", "Warm", `["AI Automation"]`, `[]`, `{}`),
		summaryAt("2026-08-03", "Cold", `[]`, `[]`, `{}`),
	}

	report := BuildLeadReport("last_30_days", summaries)

	assert.Equal(t, "last_30_days", report.Period)

	require.Len(t, report.Cards, 3)
	assert.Equal(t, "3", report.Cards[0].Value)
	assert.Equal(t, "1", report.Cards[1].Value)
	assert.Equal(t, "33%", report.Cards[2].Value)

	assert.Equal(t, []string{"Hot", "Warm", "Cold"}, report.Qualification.Labels)
	assert.Equal(t, []float64{1, 1, 1}, report.Qualification.Values)

	// days sorted, one gap
	assert.Equal(t, []string{"2026-08-01", "2026-08-03"}, report.LeadsPerDay.Labels)
	assert.Equal(t, []float64{2, 1}, report.LeadsPerDay.Values)

	// AI Automation counted twice, tops the bar
	require.NotEmpty(t, report.TopServices.Labels)
	assert.Equal(t, "AI Automation", report.TopServices.Labels[0])
	assert.Equal(t, float64(2), report.TopServices.Values[0])

	assert.Equal(t, []string{"Manual processes"}, report.TopPainPoints.Labels)
}

func TestBuildLeadReportEmpty(t *testing.T) {
	report := BuildLeadReport("this_week", nil)

	assert.Equal(t, "0", report.Cards[0].Value)
	assert.Equal(t, "0%", report.Cards[2].Value)
	assert.Empty(t, report.LeadsPerDay.Labels)
	assert.Empty(t, report.TopServices.Labels)
}

func TestGetDateRangeDefaults(t *testing.T) {
	r := GetDateRange("nonsense")
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -30), r.Start, time.Minute)
	assert.WithinDuration(t, time.Now(), r.End, time.Minute)

	today := GetDateRange("today")
	assert.Equal(t, 0, today.Start.Hour())
	assert.True(t, today.End.After(today.Start))
}
