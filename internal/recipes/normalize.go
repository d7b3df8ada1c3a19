package recipes

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Recipe is the canonical view of a recipe regardless of backend field names.
// Raw keeps the original object so it can be echoed back on save.
type Recipe struct {
	ID           string
	Title        string
	ImageURL     string
	SourceURL    string
	Summary      string
	Ingredients  []string
	Instructions []string
	Raw          map[string]any
}

// FieldMapping lists, per canonical field, the backend keys to try in order.
type FieldMapping struct {
	ID           []string `toml:"id"`
	Title        []string `toml:"title"`
	ImageURL     []string `toml:"image_url"`
	SourceURL    []string `toml:"source_url"`
	Summary      []string `toml:"summary"`
	Ingredients  []string `toml:"ingredients"`
	Instructions []string `toml:"instructions"`
}

const untitled = "Untitled recipe"

// DefaultFieldMapping covers the field names seen across known backends.
func DefaultFieldMapping() FieldMapping {
	return FieldMapping{
		ID:           []string{"id", "recipe_id", "recipeId", "_id", "uuid", "spoonacular_id", "external_id"},
		Title:        []string{"title", "name", "recipe_name", "label"},
		ImageURL:     []string{"image_url", "imageUrl", "image", "thumbnail", "image_front", "imageURL"},
		SourceURL:    []string{"source_url", "sourceUrl", "url", "link", "OriginalURL", "original_url"},
		Summary:      []string{"summary", "description", "desc", "notes"},
		Ingredients:  []string{"ingredients", "extendedIngredients", "ingredient_list"},
		Instructions: []string{"instructions", "steps", "analyzedInstructions", "directions", "method"},
	}
}

// Merge returns m with every non-empty list in over replacing m's list.
func (m FieldMapping) Merge(over FieldMapping) FieldMapping {
	pick := func(base, next []string) []string {
		cleaned := make([]string, 0, len(next))
		for _, k := range next {
			if k = strings.TrimSpace(k); k != "" {
				cleaned = append(cleaned, k)
			}
		}
		if len(cleaned) == 0 {
			return base
		}
		return cleaned
	}
	return FieldMapping{
		ID:           pick(m.ID, over.ID),
		Title:        pick(m.Title, over.Title),
		ImageURL:     pick(m.ImageURL, over.ImageURL),
		SourceURL:    pick(m.SourceURL, over.SourceURL),
		Summary:      pick(m.Summary, over.Summary),
		Ingredients:  pick(m.Ingredients, over.Ingredients),
		Instructions: pick(m.Instructions, over.Instructions),
	}
}

// Normalize maps one backend object to a Recipe. ok is false when the value
// is not an object or carries no id.
func (m FieldMapping) Normalize(value any) (Recipe, bool) {
	obj, isObj := value.(map[string]any)
	if !isObj {
		return Recipe{}, false
	}

	// Favorite rows often wrap the recipe: {"id": 7, "recipe_id": "42", "recipe": {...}}.
	if inner, nested := obj["recipe"].(map[string]any); nested {
		r, _ := m.Normalize(inner)
		if r.ID == "" {
			r.ID = firstString(obj, favoriteIDKeys)
		}
		if r.ID == "" {
			r.ID = firstString(obj, m.ID)
		}
		return r, r.ID != ""
	}

	r := m.fromObject(obj)
	return r, r.ID != ""
}

func (m FieldMapping) fromObject(obj map[string]any) Recipe {
	r := Recipe{
		ID:           firstString(obj, m.ID),
		Title:        firstString(obj, m.Title),
		ImageURL:     firstString(obj, m.ImageURL),
		SourceURL:    firstString(obj, m.SourceURL),
		Summary:      firstString(obj, m.Summary),
		Ingredients:  firstList(obj, m.Ingredients),
		Instructions: firstList(obj, m.Instructions),
		Raw:          obj,
	}
	if r.Title == "" {
		r.Title = untitled
	}
	return r
}

var favoriteIDKeys = []string{"recipe_id", "recipeId"}

// forFavorites returns m with the recipe reference keys tried before the
// generic id keys. Flat favorite rows carry their own row id next to the
// recipe's: {"id": "fav-7", "recipe_id": "42", "user_id": "u1"}.
func (m FieldMapping) forFavorites() FieldMapping {
	ids := append([]string(nil), favoriteIDKeys...)
	for _, k := range m.ID {
		if k != favoriteIDKeys[0] && k != favoriteIDKeys[1] {
			ids = append(ids, k)
		}
	}
	m.ID = ids
	return m
}

// NormalizeList extracts the recipe list from any supported response shape
// and normalizes each entry, dropping entries without an id.
func (m FieldMapping) NormalizeList(payload any) []Recipe {
	entries := ExtractList(payload)
	if len(entries) == 0 {
		return nil
	}
	out := make([]Recipe, 0, len(entries))
	for _, entry := range entries {
		if r, ok := m.Normalize(entry); ok {
			out = append(out, r)
		}
	}
	return out
}

var listKeys = []string{"results", "recipes", "items", "data", "favorites", "saved", "hits"}

// ExtractList finds the array of entries in a list response: a bare array,
// or the first array under a known envelope key (searched one level deep).
func ExtractList(payload any) []any {
	switch v := payload.(type) {
	case []any:
		return v
	case map[string]any:
		for _, key := range listKeys {
			if list, ok := v[key].([]any); ok {
				return list
			}
		}
		for _, key := range listKeys {
			if inner, ok := v[key].(map[string]any); ok {
				if list := ExtractList(inner); list != nil {
					return list
				}
			}
		}
	}
	return nil
}

// detailObject unwraps a single-recipe response.
func detailObject(payload any) any {
	obj, ok := payload.(map[string]any)
	if !ok {
		return payload
	}
	if inner, ok := obj["data"].(map[string]any); ok {
		return inner
	}
	return obj
}

func firstString(obj map[string]any, keys []string) string {
	for _, key := range keys {
		if s := scalarString(obj[key]); s != "" {
			return s
		}
	}
	return ""
}

func scalarString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	}
	return ""
}

func firstList(obj map[string]any, keys []string) []string {
	for _, key := range keys {
		if list := stringList(obj[key]); len(list) > 0 {
			return list
		}
	}
	return nil
}

var entryTextKeys = []string{"original", "text", "step", "description", "name", "display"}

func stringList(v any) []string {
	switch val := v.(type) {
	case string:
		var out []string
		for _, line := range strings.Split(val, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				out = append(out, line)
			}
		}
		return out
	case []any:
		var out []string
		for _, entry := range val {
			switch e := entry.(type) {
			case map[string]any:
				// analyzedInstructions: [{"name": "", "steps": [{"step": "..."}]}]
				if steps, ok := e["steps"].([]any); ok {
					out = append(out, stringList(steps)...)
					continue
				}
				if s := firstString(e, entryTextKeys); s != "" {
					out = append(out, s)
				}
			default:
				if s := scalarString(e); s != "" {
					out = append(out, s)
				}
			}
		}
		return out
	}
	return nil
}

// payload returns the object to send when saving r.
func (r Recipe) payload() map[string]any {
	if r.Raw != nil {
		return r.Raw
	}
	out := map[string]any{"id": r.ID, "title": r.Title}
	if r.ImageURL != "" {
		out["image_url"] = r.ImageURL
	}
	if r.SourceURL != "" {
		out["source_url"] = r.SourceURL
	}
	if r.Summary != "" {
		out["summary"] = r.Summary
	}
	if len(r.Ingredients) > 0 {
		out["ingredients"] = r.Ingredients
	}
	if len(r.Instructions) > 0 {
		out["instructions"] = r.Instructions
	}
	return out
}
