package booking

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// dateRange returns every date in [start, end] inclusive, formatted.
func dateRange(start, end time.Time) []string {
	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(dateLayout))
	}
	return dates
}

// durationDays is the whole-day span between start and end.
func durationDays(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

// round2 applies two-decimal rounding for presentation.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
