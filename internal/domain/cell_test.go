package domain

import (
	"math"
	"testing"
)

func TestCellNormalize(t *testing.T) {
	cases := []struct {
		name string
		cell Cell
		want string
	}{
		{"missing", MissingCell(), ""},
		{"text trimmed", TextCell("  Main St 1  "), "Main St 1"},
		{"text blank", TextCell("   "), ""},
		{"whole number", NumberCell(8001.0), "8001"},
		{"fractional number", NumberCell(8001.5), "8001.5"},
		{"zero", NumberCell(0), "0"},
		{"negative whole", NumberCell(-42.0), "-42"},
		{"nan", NumberCell(math.NaN()), ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cell.Normalize(); got != tc.want {
				t.Errorf("Normalize() = %q, want %q", got, tc.want)
			}
		})
	}
}
