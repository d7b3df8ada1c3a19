package recipes

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	payload := decodeBody([]byte(raw))
	require.NotNil(t, payload, "invalid fixture JSON: %s", raw)
	return payload
}

func TestNormalize_IDVariantsYieldCanonicalID(t *testing.T) {
	fields := DefaultFieldMapping()
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"id", `{"id": "abc"}`, "abc"},
		{"recipe_id", `{"recipe_id": "abc"}`, "abc"},
		{"recipeId", `{"recipeId": "abc"}`, "abc"},
		{"mongo _id", `{"_id": "abc"}`, "abc"},
		{"uuid", `{"uuid": "abc"}`, "abc"},
		{"numeric id", `{"id": 42}`, "42"},
		{"large numeric id", `{"id": 9007199254740993}`, "9007199254740993"},
		{"padded string", `{"id": "  abc  "}`, "abc"},
		{"empty id falls through", `{"id": "", "uuid": "abc"}`, "abc"},
		{"nested recipe", `{"id": 7, "recipe": {"id": "abc"}}`, "abc"},
		{"nested without inner id", `{"id": 7, "recipe_id": "abc", "recipe": {"title": "x"}}`, "abc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, ok := fields.Normalize(decode(t, tc.raw))
			require.True(t, ok)
			assert.Equal(t, tc.want, r.ID)
		})
	}
}

func TestNormalize_DropsEntriesWithoutID(t *testing.T) {
	fields := DefaultFieldMapping()
	_, ok := fields.Normalize(decode(t, `{"title": "No id"}`))
	assert.False(t, ok)

	_, ok = fields.Normalize("not an object")
	assert.False(t, ok)

	list := fields.NormalizeList(decode(t, `[{"id": "1"}, {"name": "orphan"}, 3, {"_id": "2"}]`))
	require.Len(t, list, 2)
	assert.Equal(t, "1", list[0].ID)
	assert.Equal(t, "2", list[1].ID)
}

func TestNormalize_FieldVariants(t *testing.T) {
	fields := DefaultFieldMapping()
	r, ok := fields.Normalize(decode(t, `{
		"_id": "r1",
		"name": "Taco",
		"image": "http://img/taco.jpg",
		"OriginalURL": "http://src/taco",
		"description": "Crunchy",
		"extendedIngredients": [{"original": "2 tortillas"}, {"name": "salsa"}],
		"analyzedInstructions": [{"name": "", "steps": [{"number": 1, "step": "Warm"}, {"number": 2, "step": "Fill"}]}]
	}`))
	require.True(t, ok)
	assert.Equal(t, "Taco", r.Title)
	assert.Equal(t, "http://img/taco.jpg", r.ImageURL)
	assert.Equal(t, "http://src/taco", r.SourceURL)
	assert.Equal(t, "Crunchy", r.Summary)
	assert.Equal(t, []string{"2 tortillas", "salsa"}, r.Ingredients)
	assert.Equal(t, []string{"Warm", "Fill"}, r.Instructions)
	assert.Equal(t, "r1", r.Raw["_id"])
}

func TestNormalize_StringListsAndDefaults(t *testing.T) {
	fields := DefaultFieldMapping()
	r, ok := fields.Normalize(decode(t, `{"id": 1, "steps": "Chop\n\n  Fry  \n", "ingredients": ["egg", " ", 2]}`))
	require.True(t, ok)
	assert.Equal(t, untitled, r.Title)
	assert.Equal(t, []string{"Chop", "Fry"}, r.Instructions)
	assert.Equal(t, []string{"egg", "2"}, r.Ingredients)
}

func TestExtractList_Envelopes(t *testing.T) {
	cases := map[string]string{
		"bare":      `[{"id": 1}]`,
		"results":   `{"results": [{"id": 1}]}`,
		"recipes":   `{"recipes": [{"id": 1}], "count": 1}`,
		"items":     `{"items": [{"id": 1}]}`,
		"favorites": `{"favorites": [{"id": 1}]}`,
		"saved":     `{"saved": [{"id": 1}]}`,
		"nested":    `{"data": {"results": [{"id": 1}]}}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Len(t, ExtractList(decode(t, raw)), 1)
		})
	}
	assert.Nil(t, ExtractList(decode(t, `{"message": "nothing"}`)))
	assert.Nil(t, ExtractList(nil))
}

func TestFieldMapping_MergeReplacesNonEmptyLists(t *testing.T) {
	merged := DefaultFieldMapping().Merge(FieldMapping{ID: []string{" slug ", ""}, Title: nil})
	assert.Equal(t, []string{"slug"}, merged.ID)
	assert.Equal(t, DefaultFieldMapping().Title, merged.Title)

	r, ok := merged.Normalize(map[string]any{"slug": "tacos-al-pastor", "id": "ignored"})
	require.True(t, ok)
	assert.Equal(t, "tacos-al-pastor", r.ID)
}

func TestRecipePayload_PrefersRaw(t *testing.T) {
	raw := map[string]any{"id": "1", "name": "Taco"}
	assert.Equal(t, raw, Recipe{ID: "1", Raw: raw}.payload())

	built := Recipe{ID: "2", Title: "Soup", Ingredients: []string{"water"}}.payload()
	assert.Equal(t, "2", built["id"])
	assert.Equal(t, "Soup", built["title"])
	assert.Equal(t, []string{"water"}, built["ingredients"])
	_, hasImage := built["image_url"]
	assert.False(t, hasImage)
}

func TestScalarString_Numbers(t *testing.T) {
	assert.Equal(t, "42", scalarString(json.Number("42")))
	assert.Equal(t, "42", scalarString(float64(42)))
	assert.Equal(t, "1.5", scalarString(1.5))
	assert.Equal(t, "", scalarString(true))
}
