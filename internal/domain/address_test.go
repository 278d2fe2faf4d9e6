package domain

import (
	"strings"
	"testing"
)

func TestBuildFullAddress(t *testing.T) {
	got := BuildFullAddress(TextCell("Main St 1"), NumberCell(8001), TextCell("Zürich"), "Switzerland")

	want := "Main St 1, 8001 Zürich, Switzerland"
	if got != want {
		t.Fatalf("BuildFullAddress = %q, want %q", got, want)
	}
}

func TestBuildFullAddressSegments(t *testing.T) {
	cases := []struct {
		name   string
		street Cell
		postal Cell
		city   Cell
		hint   string
		want   string
	}{
		{"street only", TextCell("Main St 1"), MissingCell(), MissingCell(), "Switzerland", "Main St 1, Switzerland"},
		{"postal only", MissingCell(), NumberCell(8001), MissingCell(), "Switzerland", "8001, Switzerland"},
		{"city only", MissingCell(), MissingCell(), TextCell("Zürich"), "Switzerland", "Zürich, Switzerland"},
		{"no hint", TextCell("Main St 1"), NumberCell(8001), TextCell("Zürich"), "", "Main St 1, 8001 Zürich"},
		{"whole float postal", TextCell("Main St 1"), NumberCell(8001.0), TextCell("Zürich"), "Switzerland", "Main St 1, 8001 Zürich, Switzerland"},
		{"text postal", TextCell("Main St 1"), TextCell(" 8001 "), TextCell("Zürich"), "Switzerland", "Main St 1, 8001 Zürich, Switzerland"},
		{"all empty", MissingCell(), MissingCell(), MissingCell(), "Switzerland", ""},
		{"whitespace only", TextCell("  "), TextCell(" "), TextCell(""), "Switzerland", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildFullAddress(tc.street, tc.postal, tc.city, tc.hint)
			if got != tc.want {
				t.Errorf("BuildFullAddress = %q, want %q", got, tc.want)
			}

			// Any non-empty result must end with the hint and carry no empty segments.
			if got == "" || tc.hint == "" {
				return
			}
			if !strings.HasSuffix(got, tc.hint) {
				t.Errorf("result %q does not end with hint %q", got, tc.hint)
			}
			for _, seg := range strings.Split(got, ", ") {
				if strings.TrimSpace(seg) == "" {
					t.Errorf("result %q contains an empty segment", got)
				}
			}
		})
	}
}
