package importer

import (
	"math"
	"strconv"
	"strings"
	"time"

	"buildtrack/internal/timeutil"
)

// Non-slash layouts tried in order. Slash dates with three parts never get
// here: they are always read as day/month/year.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-1-2",
	"02.01.2006",
	"2006.01.02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"02-Jan-2006",
	"2-Jan-06",
	"20060102",
	"1/2006",
	"2006",
}

// FormatDate renders a cell as YYYY-MM-DD. Slash dates with three parts are
// day/month/year regardless of locale, numbers are spreadsheet serials, and
// everything else goes through dateLayouts. ok is false for empty or
// unparseable input.
func FormatDate(value any) (string, bool) {
	parsed, ok := parseDate(value)
	if !ok {
		return "", false
	}
	return parsed.Format(timeutil.DateLayout), true
}

func parseDate(value any) (time.Time, bool) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, false
	case float64:
		return timeutil.FromSpreadsheetSerial(v)
	case int:
		return timeutil.FromSpreadsheetSerial(float64(v))
	case int64:
		return timeutil.FromSpreadsheetSerial(float64(v))
	case time.Time:
		if v.IsZero() || !timeutil.InDateRange(v) {
			return time.Time{}, false
		}
		return v.UTC(), true
	case string:
		return parseDateString(v)
	default:
		return time.Time{}, false
	}
}

func parseDateString(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}

	if strings.Contains(value, "/") {
		if parts := strings.Split(value, "/"); len(parts) == 3 {
			return dayMonthYear(parts)
		}
	}

	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		parsed = parsed.UTC()
		if !timeutil.InDateRange(parsed) {
			return time.Time{}, false
		}
		return parsed, true
	}

	// CSV and .xls cells carry serials as text.
	if serial, err := strconv.ParseFloat(value, 64); err == nil && !math.IsNaN(serial) {
		return timeutil.FromSpreadsheetSerial(serial)
	}

	return time.Time{}, false
}

// dayMonthYear builds a date from day/month/year parts. Out-of-range days and
// months roll over, and two-digit years land in the 1900s.
func dayMonthYear(parts []string) (time.Time, bool) {
	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return time.Time{}, false
	}
	if year >= 0 && year <= 99 {
		year += 1900
	}

	parsed := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if !timeutil.InDateRange(parsed) {
		return time.Time{}, false
	}
	return parsed, true
}
