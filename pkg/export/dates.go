package export

import (
	"fmt"
	"time"
)

const calendarDateLayout = "2006-01-02"

func parseCalendarDate(value string) (time.Time, error) {
	return time.Parse(calendarDateLayout, value)
}

// formatShortDate renders a calendar date in the short US locale form
// used by the exports, e.g. "1/2/2024". Unparseable input is returned
// as-is rather than failing an export over one stale row.
func formatShortDate(value string) string {
	parsed, err := parseCalendarDate(value)
	if err != nil {
		return value
	}
	return fmt.Sprintf("%d/%d/%d", int(parsed.Month()), parsed.Day(), parsed.Year())
}

// formatLongDate renders a calendar date like "Jan 2, 2024".
func formatLongDate(value string) string {
	parsed, err := parseCalendarDate(value)
	if err != nil {
		return value
	}
	return parsed.Format("Jan 2, 2006")
}
