package analytics

import "time"

// GetDateRange returns a date range based on a period
func GetDateRange(period string) DateRange {
	now := time.Now()

	switch period {
	case "today":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return DateRange{Start: start, End: now}

	case "this_week":
		// Start of week (Monday)
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday = 7
		}
		start := now.AddDate(0, 0, -weekday+1)
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, now.Location())
		return DateRange{Start: start, End: now}

	case "this_month":
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return DateRange{Start: start, End: now}

	case "last_90_days":
		return DateRange{Start: now.AddDate(0, 0, -90), End: now}

	default: // last_30_days
		return DateRange{Start: now.AddDate(0, 0, -30), End: now}
	}
}
