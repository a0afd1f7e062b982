package convert

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/tracker-convert/internal/export"
	"github.com/handiism/tracker-convert/internal/model"
)

// transformJSON parses an export document and transforms it.
func transformJSON(t *testing.T, doc string) Result {
	t.Helper()
	records, err := export.NewParser().ParseRecords([]byte(doc))
	require.NoError(t, err)
	return Transform(records)
}

func TestTransform_ScenarioA(t *testing.T) {
	result := transformJSON(t, `[{"albumName":"X","wanted":true,"types":{"vinyl":true},"albumArtists":"Solo","id":1700000000}]`)

	got, err := json.Marshal(result.Items)
	require.NoError(t, err)

	want := `[{"title":"X","artist":["Solo"],"format":["Vinyl"],"status":"Wishlist","rating":0,` +
		`"addedAt":1700000000,"customOrder":0,"genres":[]}]`
	assert.Equal(t, want, string(got))
	assert.Equal(t, 1, result.Wishlist)
	assert.Equal(t, 0, result.Collection)
}

func TestTransform_Formats(t *testing.T) {
	tests := []struct {
		name  string
		types string
		want  []string
	}{
		{name: "cd is upper-cased", types: `{"cd": true}`, want: []string{"CD"}},
		{name: "unknown key falls back", types: `{"reissue": true}`, want: []string{"Reissue"}},
		{name: "no types key", types: ``, want: []string{"Digital"}},
		{name: "empty types", types: `{}`, want: []string{"Digital"}},
		{name: "null types", types: `null`, want: []string{"Digital"}},
		{name: "all unset", types: `{"vinyl": false, "tape": 0}`, want: []string{"Digital"}},
		{
			name:  "standard keys in fixed order",
			types: `{"digital": true, "cassette": 1, "cd": "yes", "vinyl": true}`,
			want:  []string{"Vinyl", "CD", "Cassette", "Digital"},
		},
		{
			name:  "standard key suppresses fallback",
			types: `{"reissue": true, "vinyl": true}`,
			want:  []string{"Vinyl"},
		},
		{name: "fallback keeps document order", types: `{"b": 1, "a": 1}`, want: []string{"B", "A"}},
		{name: "fallback lower-cases the rest", types: `{"LP": true, "boxSet": true}`, want: []string{"Lp", "Boxset"}},
		{
			name:  "fallback removes duplicates",
			types: `{"Reissue": true, "reissue": true, "REISSUE": true}`,
			want:  []string{"Reissue"},
		},
		{name: "standard key is case sensitive", types: `{"CD": true}`, want: []string{"Cd"}},
		{name: "unicode key", types: `{"élan": true}`, want: []string{"Élan"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := `{}`
			if tt.types != "" {
				item = fmt.Sprintf(`{"types": %s}`, tt.types)
			}
			result := transformJSON(t, "["+item+"]")
			require.Len(t, result.Items, 1)
			assert.Equal(t, tt.want, result.Items[0].Format)
		})
	}
}

func TestTransform_OmitsEmptyOptionalFields(t *testing.T) {
	doc := `[
		{"imageUrl": "", "releaseDate": "", "albumLink": ""},
		{"imageUrl": null, "releaseDate": null, "albumLink": null},
		{}
	]`
	result := transformJSON(t, doc)

	for i, item := range result.Items {
		data, err := json.Marshal(item)
		require.NoError(t, err)

		var fields map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &fields))

		assert.NotContains(t, fields, "coverUrl", "item %d", i)
		assert.NotContains(t, fields, "releaseDate", "item %d", i)
		assert.NotContains(t, fields, "url", "item %d", i)
		assert.Equal(t, "null", string(fields["title"]), "item %d", i)
	}
}

func TestTransform_CopiesFields(t *testing.T) {
	doc := `[{
		"albumName": "",
		"albumArtists": ["A", "B"],
		"imageUrl": "https://example.com/c.jpg",
		"releaseDate": "2001-05-01",
		"albumLink": "https://example.com/a",
		"genres": ["Jazz"],
		"id": "1650000000.25"
	}]`
	result := transformJSON(t, doc)
	require.Len(t, result.Items, 1)

	empty := ""
	want := model.TrackerItem{
		Title:       &empty,
		Artist:      []string{"A", "B"},
		CoverURL:    "https://example.com/c.jpg",
		ReleaseDate: "2001-05-01",
		URL:         "https://example.com/a",
		Format:      []string{"Digital"},
		Status:      model.StatusCollection,
		AddedAt:     1650000000,
		CustomOrder: 0,
		Genres:      []string{"Jazz"},
	}
	if diff := cmp.Diff(want, result.Items[0]); diff != "" {
		t.Errorf("item mismatch (-want +got):\n%s", diff)
	}
}

func TestTransform_NonNumericID(t *testing.T) {
	result := transformJSON(t, `[{"id": "not-a-number"}]`)
	require.Len(t, result.Items, 1)
	assert.Equal(t, int64(0), result.Items[0].AddedAt)
}

func TestTransform_Properties(t *testing.T) {
	var b strings.Builder
	b.WriteString("[")
	const n = 25
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{"albumName": "Album %d", "wanted": %t, "id": %d`, i, i%3 == 0, 1600000000+i)
		if i%4 == 0 {
			b.WriteString(`, "types": {"custom": true}`)
		}
		if i%5 == 0 {
			b.WriteString(`, "types": {}`)
		}
		b.WriteString("}")
	}
	b.WriteString("]")

	records, err := export.NewParser().ParseRecords([]byte(b.String()))
	require.NoError(t, err)
	result := Transform(records)

	require.Len(t, result.Items, len(records))
	assert.Equal(t, n, result.Total())

	wishlist := 0
	for i, item := range result.Items {
		assert.Equal(t, i, item.CustomOrder)
		assert.NotEmpty(t, item.Format)
		assert.Equal(t, 0, item.Rating)
		if item.Status == model.StatusWishlist {
			wishlist++
		}
	}
	assert.Equal(t, wishlist, result.Wishlist)
	assert.Equal(t, len(result.Items), result.Collection+result.Wishlist)
}

func TestTransform_Empty(t *testing.T) {
	result := Transform(nil)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
	assert.Zero(t, result.Collection)
	assert.Zero(t, result.Wishlist)

	data, err := json.Marshal(result.Items)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestTransform_Fallbacks(t *testing.T) {
	result := transformJSON(t, `[
		{"id": 1, "types": {"vinyl": true}},
		{"id": "x", "types": {"vinyl": true}},
		{"id": 2},
		{}
	]`)

	want := []Fallback{
		{Index: 1, Kind: FallbackAddedAt},
		{Index: 2, Kind: FallbackFormat},
		{Index: 3, Kind: FallbackFormat},
		{Index: 3, Kind: FallbackAddedAt},
	}
	if diff := cmp.Diff(want, result.Fallbacks); diff != "" {
		t.Errorf("fallbacks mismatch (-want +got):\n%s", diff)
	}
}

func TestTransform_DoesNotAliasSource(t *testing.T) {
	records := []model.SourceRecord{{AlbumArtists: []string{"A"}, Genres: []string{"G"}}}
	result := Transform(records)

	records[0].AlbumArtists[0] = "changed"
	records[0].Genres[0] = "changed"

	assert.Equal(t, []string{"A"}, result.Items[0].Artist)
	assert.Equal(t, []string{"G"}, result.Items[0].Genres)
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"vinyl", "Vinyl"},
		{"VINYL", "Vinyl"},
		{"8track", "8track"},
		{"minidisc", "Minidisc"},
		{"ǆemal", "ǅemal"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := capitalize(tt.input); got != tt.want {
				t.Errorf("capitalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
