package ui

import (
	"testing"
	"time"
)

func TestHumanizeDuration(t *testing.T) {
	cases := []struct {
		name string
		in   int64 // seconds
		want string
	}{
		{"negative", -5, "now"},
		{"subsecond", 0, "now"},
		{"seconds", 12, "12s"},
		{"minutes", 61, "1m"},
		{"hours_only", 2*60*60 + 10, "2h"},
		{"hours_minutes", 2*60*60 + 3*60, "2h 3m"},
		{"days", 24 * 60 * 60, "1d"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := humanizeDuration(timeSeconds(tc.in))
			if got != tc.want {
				t.Fatalf("humanizeDuration(%d) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Fish Tacos", 20); got != "Fish Tacos" {
		t.Fatalf("truncate short = %q", got)
	}
	if got := truncate("Tomato Basil Soup", 10); got != "Tomato ..." {
		t.Fatalf("truncate long = %q", got)
	}
	if got := truncate("abcdef", 2); got != "ab" {
		t.Fatalf("truncate limit<=3 = %q", got)
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle("  ", 10); got != "" {
		t.Fatalf("truncateMiddle blank = %q, want empty", got)
	}
	if got := truncateMiddle("abcd", 2); got != "ab" {
		t.Fatalf("truncateMiddle limit<=3 = %q, want ab", got)
	}
	got := truncateMiddle("https://example.com/recipes/fish-tacos", 16)
	if got == "https://example.com/recipes/fish-tacos" {
		t.Fatalf("expected truncation")
	}
	if len([]rune(got)) > 16 {
		t.Fatalf("got %q (%d runes), want <=16", got, len([]rune(got)))
	}
}

func TestSingleLineAndClamp(t *testing.T) {
	if got := singleLine(" Crispy\n fish\twith  slaw "); got != "Crispy fish with slaw" {
		t.Fatalf("singleLine = %q", got)
	}
	if clamp(5, 3) != 2 || clamp(-1, 3) != 0 || clamp(1, 0) != 0 {
		t.Fatalf("clamp out of range")
	}
}

func timeSeconds(sec int64) time.Duration {
	return time.Duration(sec) * time.Second
}
