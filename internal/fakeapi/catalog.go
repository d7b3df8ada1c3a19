package fakeapi

import (
	"strings"
)

// Recipe is a catalog entry served by the fake backend.
type Recipe struct {
	ID           string
	Title        string
	Summary      string
	ImageURL     string
	SourceURL    string
	Ingredients  []string
	Instructions []string
}

// payload renders r the way the backend does on the wire. Ingredients go out
// as objects and instructions as one newline-joined string so clients see
// the mixed shapes real backends return.
func (r Recipe) payload() map[string]any {
	ingredients := make([]map[string]any, 0, len(r.Ingredients))
	for _, item := range r.Ingredients {
		ingredients = append(ingredients, map[string]any{"original": item})
	}
	return map[string]any{
		"id":           r.ID,
		"title":        r.Title,
		"summary":      r.Summary,
		"image_url":    r.ImageURL,
		"source_url":   r.SourceURL,
		"ingredients":  ingredients,
		"instructions": strings.Join(r.Instructions, "\n"),
	}
}

func (r Recipe) matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Title), q) || strings.Contains(strings.ToLower(r.Summary), q) {
		return true
	}
	for _, item := range r.Ingredients {
		if strings.Contains(strings.ToLower(item), q) {
			return true
		}
	}
	return false
}

// recipeFromPayload accepts a recipe object posted by a client. Only the
// fields the catalog keeps are read.
func recipeFromPayload(obj map[string]any) Recipe {
	str := func(keys ...string) string {
		for _, k := range keys {
			if s, ok := obj[k].(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
		return ""
	}
	return Recipe{
		ID:        str("id", "recipe_id"),
		Title:     str("title", "name"),
		Summary:   str("summary", "description"),
		ImageURL:  str("image_url", "image"),
		SourceURL: str("source_url", "url"),
	}
}

// DefaultRecipes is the catalog seeded when Options.Recipes is empty.
func DefaultRecipes() []Recipe {
	return []Recipe{
		{
			ID:          "1",
			Title:       "Fish Tacos",
			Summary:     "Crispy cod in warm tortillas with lime slaw.",
			ImageURL:    "https://images.example.com/fish-tacos.jpg",
			SourceURL:   "https://recipes.example.com/fish-tacos",
			Ingredients: []string{"400g cod", "8 corn tortillas", "1 lime", "2 cups shredded cabbage"},
			Instructions: []string{
				"Season and pan-fry the cod.",
				"Toss cabbage with lime juice.",
				"Warm tortillas and assemble.",
			},
		},
		{
			ID:          "2",
			Title:       "Tomato Basil Soup",
			Summary:     "A quick soup from canned tomatoes.",
			SourceURL:   "https://recipes.example.com/tomato-soup",
			Ingredients: []string{"2 cans tomatoes", "1 onion", "basil", "1 cup stock"},
			Instructions: []string{
				"Soften the onion.",
				"Add tomatoes and stock, simmer 20 minutes.",
				"Blend with basil.",
			},
		},
		{
			ID:          "3",
			Title:       "Chickpea Curry",
			Summary:     "Weeknight curry with coconut milk.",
			Ingredients: []string{"2 cans chickpeas", "1 can coconut milk", "curry paste", "spinach"},
			Instructions: []string{
				"Fry the curry paste.",
				"Add chickpeas and coconut milk.",
				"Wilt in spinach and serve.",
			},
		},
		{
			ID:           "4",
			Title:        "Beef Tacos",
			Summary:      "Ground beef tacos with pickled onions.",
			Ingredients:  []string{"500g ground beef", "taco seasoning", "red onion", "8 hard shells"},
			Instructions: []string{"Brown the beef with seasoning.", "Fill the shells."},
		},
	}
}
