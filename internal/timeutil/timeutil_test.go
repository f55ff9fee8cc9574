package timeutil

import (
	"math"
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	t.Parallel()

	input := time.Date(2026, 3, 1, 14, 37, 9, 123, time.Local)
	got := StartOfDay(input)

	if got.Year() != 2026 || got.Month() != time.March || got.Day() != 1 {
		t.Fatalf("unexpected date: %v", got)
	}
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Fatalf("expected midnight, got %v", got)
	}
}

func TestFromSpreadsheetSerial(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		serial float64
		want   string
		ok     bool
	}{
		{name: "unix epoch", serial: 25569, want: "1970-01-01", ok: true},
		{name: "march 2023", serial: 45000, want: "2023-03-15", ok: true},
		{name: "fraction keeps day", serial: 45000.75, want: "2023-03-15", ok: true},
		{name: "spreadsheet epoch", serial: 0, want: "1899-12-30", ok: true},
		{name: "nan", serial: math.NaN(), ok: false},
		{name: "inf", serial: math.Inf(1), ok: false},
		{name: "far future", serial: 1e9, ok: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := FromSpreadsheetSerial(tc.serial)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v (%v)", tc.ok, ok, got)
			}
			if ok && got.Format(DateLayout) != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got.Format(DateLayout))
			}
		})
	}
}

func TestToSpreadsheetSerialRoundTrip(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	serial := ToSpreadsheetSerial(day)
	if serial != 45366 {
		t.Fatalf("expected serial 45366, got %v", serial)
	}
	back, ok := FromSpreadsheetSerial(serial)
	if !ok || !back.Equal(day) {
		t.Fatalf("round trip mismatch: %v", back)
	}
}
