package fallback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopping-assistant/internal/model"
)

func TestLookup_Wrapped(t *testing.T) {
	got := Lookup(model.CategoryElectronics, nil)

	require.NotEmpty(t, got)
	assert.True(t, strings.HasPrefix(got, preamble))
	assert.True(t, strings.HasSuffix(got, postscript))
	assert.Contains(t, got, electronicsDefault)
}

func TestLookup_ComparisonDiffersFromDefault(t *testing.T) {
	cmp := Lookup(model.CategoryElectronics, []model.QueryType{model.QueryTypeComparison})
	def := Lookup(model.CategoryElectronics, nil)

	assert.NotEqual(t, cmp, def)
	assert.Contains(t, cmp, "GSMArena")
}

func TestLookup_Selection(t *testing.T) {
	tcs := map[string]struct {
		category model.Category
		types    []model.QueryType
		want     string
	}{
		"comparison beats recommendation": {
			category: model.CategoryAppliances,
			types:    []model.QueryType{model.QueryTypeRecommendation, model.QueryTypeComparison},
			want:     appliancesComparison,
		},
		"recommendation": {
			category: model.CategoryElectronics,
			types:    []model.QueryType{model.QueryTypePrice, model.QueryTypeRecommendation},
			want:     electronicsRecommendation,
		},
		"other types use default": {
			category: model.CategoryAppliances,
			types:    []model.QueryType{model.QueryTypeReviews},
			want:     appliancesDefault,
		},
		"missing type falls back to category default": {
			category: model.CategoryServices,
			types:    []model.QueryType{model.QueryTypeRecommendation},
			want:     servicesDefault,
		},
		"missing category falls back to electronics default": {
			category: model.CategoryClothing,
			types:    []model.QueryType{model.QueryTypeComparison},
			want:     electronicsDefault,
		},
		"general category": {
			category: model.CategoryGeneral,
			want:     electronicsDefault,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got := Lookup(tc.category, tc.types)
			assert.Equal(t, preamble+"\n\n"+tc.want+"\n\n"+postscript, got)
		})
	}
}

func TestApology(t *testing.T) {
	got := Apology()
	assert.Contains(t, got, "Alternative Suggestions")
	assert.NotContains(t, got, "Error")
}
