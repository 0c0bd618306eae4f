package dto

import (
	"testing"
	"time"
)

func i64(v int64) *int64 { return &v }

func TestFormatSalary(t *testing.T) {
	cases := []struct {
		name     string
		min, max *int64
		currency string
		want     string
	}{
		{"both bounds", i64(3000), i64(5000), "BOB", "3,000 - 5,000 BOB"},
		{"large values", i64(1250000), i64(2500000), "BOB", "1,250,000 - 2,500,000 BOB"},
		{"only min", i64(4500), nil, "BOB", "Desde 4,500 BOB"},
		{"only max", nil, i64(8000), "USD", "Hasta 8,000 USD"},
		{"no bounds", nil, nil, "BOB", "A convenir"},
		{"default currency", i64(3000), i64(5000), "", "3,000 - 5,000 BOB"},
		{"under a thousand", i64(900), i64(950), "BOB", "900 - 950 BOB"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatSalary(tc.min, tc.max, tc.currency); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseNullableInt(t *testing.T) {
	if got := ParseNullableInt("3000"); got == nil || *got != 3000 {
		t.Fatalf("expected 3000, got %v", got)
	}
	if got := ParseNullableInt("3500.75"); got == nil || *got != 3500 {
		t.Fatalf("expected truncated 3500, got %v", got)
	}
	for _, s := range []string{"", "  ", "abc", "3,000"} {
		if got := ParseNullableInt(s); got != nil {
			t.Fatalf("expected nil for %q, got %d", s, *got)
		}
	}
}

func TestParseNullableDate(t *testing.T) {
	got := ParseNullableDate("2026-03-09")
	if got == nil {
		t.Fatalf("expected parsed date")
	}
	want := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for _, s := range []string{"", "09/03/2026", "not-a-date"} {
		if ParseNullableDate(s) != nil {
			t.Fatalf("expected nil for %q", s)
		}
	}
}

func TestNewListEnvelope_TotalPages(t *testing.T) {
	env := NewListEnvelope(nil, 25, 2, 10)
	if env.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", env.TotalPages)
	}
	env = NewListEnvelope(nil, 0, 1, 10)
	if env.TotalPages != 0 {
		t.Fatalf("expected 0 pages for empty set, got %d", env.TotalPages)
	}
}
