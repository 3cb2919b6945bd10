package utils

import (
	"testing"
)

func TestFormatPaise(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{19900, "₹199"},
		{2900, "₹29"},
		{1100, "₹11"},
		{2950, "₹29.50"},
		{5, "₹0.05"},
		{0, "₹0"},
	}
	for _, c := range cases {
		if got := FormatPaise(c.amount); got != c.want {
			t.Errorf("FormatPaise(%d) = %q, want %q", c.amount, got, c.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short, 10) = %q", got)
	}
	if got := Truncate("a longer sentence", 8); got != "a longer…" {
		t.Errorf("Truncate(a longer sentence, 8) = %q", got)
	}
	if got := Truncate("♈♉♊♋♌", 3); got != "♈♉♊…" {
		t.Errorf("Truncate on runes = %q", got)
	}
	if got := Truncate("anything", 0); got != "" {
		t.Errorf("Truncate(anything, 0) = %q", got)
	}
}
