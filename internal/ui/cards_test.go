package ui

import (
	"strings"
	"testing"

	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/recipes"
)

func TestCardWindow(t *testing.T) {
	cases := []struct {
		name                      string
		selected, count, capacity int
		wantStart, wantEnd        int
	}{
		{"fits", 0, 3, 5, 0, 3},
		{"top", 0, 10, 4, 0, 4},
		{"scrolled", 6, 10, 4, 3, 7},
		{"last", 9, 10, 4, 6, 10},
		{"no_selection", -1, 10, 4, 0, 4},
		{"zero_capacity", 3, 10, 0, 0, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := cardWindow(tc.selected, tc.count, tc.capacity)
			if start != tc.wantStart || end != tc.wantEnd {
				t.Fatalf("cardWindow(%d, %d, %d) = [%d, %d), want [%d, %d)",
					tc.selected, tc.count, tc.capacity, start, end, tc.wantStart, tc.wantEnd)
			}
		})
	}
}

func TestRenderCards_BadgesAndOverflow(t *testing.T) {
	m, _ := newTestModel(t, newFakeAPI(), sessionNone)
	m.savedIDs["1"] = true
	m.busy["2"] = true

	list := []recipes.Recipe{
		{ID: "1", Title: "Fish Tacos"},
		{ID: "2", Title: "Tomato Basil Soup"},
		{ID: "3", Title: "Chickpea Curry"},
		{ID: "4", Title: "Beef Tacos"},
	}
	out := m.renderCards(list, 0, 2*cardHeight, "")

	if !strings.Contains(out, "★ saved") {
		t.Fatalf("saved badge missing:\n%s", out)
	}
	if !strings.Contains(out, "saving") {
		t.Fatalf("busy badge missing:\n%s", out)
	}
	if strings.Contains(out, "Chickpea Curry") {
		t.Fatalf("card outside window rendered:\n%s", out)
	}
	if !strings.Contains(out, "+2 more") {
		t.Fatalf("overflow hint missing:\n%s", out)
	}
}

func TestRenderCards_Empty(t *testing.T) {
	m, _ := newTestModel(t, newFakeAPI(), sessionNone)
	if got := m.renderCards(nil, 0, 10, ""); got != "" {
		t.Fatalf("renderCards(nil) = %q, want empty", got)
	}
	if got := m.renderCards(nil, 0, 10, "No recipes found."); !strings.Contains(got, "No recipes found.") {
		t.Fatalf("empty message missing: %q", got)
	}
}

func TestCardFacts(t *testing.T) {
	r := recipes.Recipe{ID: "7", Ingredients: []string{"a"}, Instructions: []string{"x", "y"}}
	if got := cardFacts(r); got != "1 ingredient · 2 steps" {
		t.Fatalf("cardFacts = %q", got)
	}
	if got := cardFacts(recipes.Recipe{ID: "7"}); got != "id 7" {
		t.Fatalf("cardFacts bare = %q", got)
	}
}
