package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeLog(t *testing.T, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipes.log")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}
	return path
}

func messages(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message
	}
	return out
}

func TestRead(t *testing.T) {
	var lines []string
	for i := 1; i <= 10; i++ {
		lines = append(lines, fmt.Sprintf("Line %d", i))
	}
	path := writeLog(t, lines)

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"read all (0)", 0, lines},
		{"read all (negative)", -1, lines},
		{"read partial (5)", 5, lines[5:]},
		{"read exactly all (10)", 10, lines},
		{"read more than exists (20)", 20, lines},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := Read(path, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			got := messages(entries)
			if strings.Join(got, "|") != strings.Join(tt.expected, "|") {
				t.Fatalf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	entries, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil || entries != nil {
		t.Fatalf("Read(missing) = %v, %v; want nil, nil", entries, err)
	}
}

func TestRead_SkipsBlankLines(t *testing.T) {
	path := writeLog(t, []string{"first", "", "  ", "second"})
	entries, err := Read(path, 0)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got := messages(entries); len(got) != 2 || got[1] != "second" {
		t.Fatalf("Read() = %v", got)
	}
}

func TestParse(t *testing.T) {
	e := Parse("recipes 2026/03/04 05:06:07 search \"tacos\" failed: HTTP 500")
	want := time.Date(2026, 3, 4, 5, 6, 7, 0, time.Local)
	if !e.Time.Equal(want) {
		t.Fatalf("Time = %v, want %v", e.Time, want)
	}
	if e.Message != "search \"tacos\" failed: HTTP 500" {
		t.Fatalf("Message = %q", e.Message)
	}
	if !e.Problem {
		t.Fatalf("failure line not flagged")
	}

	plain := Parse("recipe finder starting")
	if !plain.Time.IsZero() || plain.Message != "recipe finder starting" || plain.Problem {
		t.Fatalf("plain line parsed as %+v", plain)
	}
}
