package timeutil

import (
	"math"
	"time"
)

const (
	// DateLayout is the canonical date-only rendering used across imports.
	DateLayout = "2006-01-02"

	// spreadsheetEpochOffsetDays is the number of days between the
	// spreadsheet epoch (1899-12-30) and the Unix epoch.
	spreadsheetEpochOffsetDays = 25569
	secondsPerDay              = 86400
)

func StartOfDay(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, value.Location())
}

// FromSpreadsheetSerial converts a spreadsheet day serial into a UTC time.
// Fractional serials carry the time of day. ok is false for NaN/Inf or
// results outside years 1-9999.
func FromSpreadsheetSerial(serial float64) (time.Time, bool) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) {
		return time.Time{}, false
	}
	seconds := math.Round((serial - spreadsheetEpochOffsetDays) * secondsPerDay)
	// keeps the int64 conversion below in range
	if math.Abs(seconds) > 3e11 {
		return time.Time{}, false
	}
	value := time.Unix(int64(seconds), 0).UTC()
	if !InDateRange(value) {
		return time.Time{}, false
	}
	return value, true
}

// ToSpreadsheetSerial is the inverse of FromSpreadsheetSerial for whole days.
func ToSpreadsheetSerial(value time.Time) float64 {
	day := StartOfDay(value.UTC())
	return float64(day.Unix())/secondsPerDay + spreadsheetEpochOffsetDays
}

// InDateRange reports whether value renders as a four digit year.
func InDateRange(value time.Time) bool {
	return value.Year() >= 1 && value.Year() <= 9999
}
