package entity

import (
	"reflect"
	"testing"
	"time"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Kind
		ok    bool
	}{
		{input: "sites", want: KindSites, ok: true},
		{input: "Vehicles", want: KindVehicles, ok: true},
		{input: " LABOUR ", want: KindLabour, ok: true},
		{input: "labor", ok: false},
		{input: "randomNotes", ok: false},
		{input: "", ok: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseKind(tc.input)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("ParseKind(%q) = %q, %v; want %q, %v", tc.input, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestRecordsColumnsAlignWithValues(t *testing.T) {
	t.Parallel()

	records := []Record{&Site{}, &Vehicle{}, &Material{}, &Expense{}, &Labour{}, &Vendor{}}
	for _, record := range records {
		columns := record.Columns()
		values := record.Values()
		if len(columns) != len(values) {
			t.Fatalf("%s: %d columns but %d values", record.Kind(), len(columns), len(values))
		}
		if columns[0] != "id" {
			t.Fatalf("%s: first column must be id, got %q", record.Kind(), columns[0])
		}
		if !reflect.DeepEqual(columns, ColumnsFor(record.Kind())) {
			t.Fatalf("%s: columns differ from ColumnsFor", record.Kind())
		}
	}
}

func TestColumnsForReturnsCopy(t *testing.T) {
	t.Parallel()

	columns := ColumnsFor(KindSites)
	columns[0] = "mutated"
	if ColumnsFor(KindSites)[0] != "id" {
		t.Fatalf("ColumnsFor must not expose internal slice")
	}
	if ColumnsFor(Kind("unknown")) != nil {
		t.Fatalf("expected nil columns for unknown kind")
	}
}

func TestMissingFields(t *testing.T) {
	t.Parallel()

	missing, err := MissingFields(&Site{Name: "Tower A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(missing, []string{"location"}) {
		t.Fatalf("unexpected missing fields: %v", missing)
	}

	missing, err = MissingFields(&Expense{Description: "Cement"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(missing, []string{"amount"}) {
		t.Fatalf("zero amount must count as missing, got %v", missing)
	}

	missing, err = MissingFields(&Labour{Name: "Ravi", Skill: "Mason"})
	if err != nil || len(missing) != 0 {
		t.Fatalf("expected valid labour record, got %v, %v", missing, err)
	}
}

func TestMetaStamp(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 5, 8, 0, 0, 0, time.UTC)
	var vendor Vendor
	vendor.Stamp("abc", now)

	if vendor.RecordID() != "abc" {
		t.Fatalf("unexpected id %q", vendor.RecordID())
	}
	if !vendor.CreatedAt.Equal(now) || !vendor.UpdatedAt.Equal(vendor.CreatedAt) {
		t.Fatalf("timestamps must both equal stamp time: %v %v", vendor.CreatedAt, vendor.UpdatedAt)
	}
}

func TestNullString(t *testing.T) {
	t.Parallel()

	if NullString("") != nil {
		t.Fatalf("empty string must map to nil")
	}
	if NullString("x") != "x" {
		t.Fatalf("non-empty string must pass through")
	}
}
