package importer

import "testing"

func TestParseNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{name: "nil", input: nil, want: 0},
		{name: "float", input: 12.5, want: 12.5},
		{name: "int", input: 7, want: 7},
		{name: "plain string", input: "42", want: 42},
		{name: "thousands separators", input: "1,50,000", want: 150000},
		{name: "rupee symbol", input: "₹ 2,500.50", want: 2500.5},
		{name: "dollar symbol", input: "$99", want: 99},
		{name: "rs prefix", input: "Rs. 1200", want: 1200},
		{name: "garbage", input: "abc", want: 0},
		{name: "bool", input: true, want: 0},
		{name: "nan string", input: "NaN", want: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := parseNumber(tc.input); got != tc.want {
				t.Fatalf("parseNumber(%v) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestInferCellValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  any
	}{
		{input: "", want: ""},
		{input: "  ", want: ""},
		{input: "45000", want: 45000.0},
		{input: "0.5", want: 0.5},
		{input: "0", want: 0.0},
		{input: "09876543210", want: "09876543210"},
		{input: "Tower A", want: "Tower A"},
	}

	for _, tc := range tests {
		if got := inferCellValue(tc.input); got != tc.want {
			t.Fatalf("inferCellValue(%q) = %#v, want %#v", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeHeader(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Site Name":  "sitename",
		"site_name":  "sitename",
		"site-name":  "sitename",
		" SITE NAME": "sitename",
		"Catégorie":  "categorie",
	}

	for input, want := range tests {
		if got := normalizeHeader(input); got != want {
			t.Fatalf("normalizeHeader(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestRowValueSkipsEmptyAliases(t *testing.T) {
	t.Parallel()

	row := NewRow(2, map[string]any{"Site Name": "  ", "Project Name": "Tower B"})
	if got := row.String("name", "site_name", "project_name"); got != "Tower B" {
		t.Fatalf("expected fallback alias value, got %q", got)
	}
}

func TestRowStringFormatsNumbersWithoutExponent(t *testing.T) {
	t.Parallel()

	row := NewRow(2, map[string]any{"Phone": 9876543210.0})
	if got := row.String("phone"); got != "9876543210" {
		t.Fatalf("expected plain digits, got %q", got)
	}
}
