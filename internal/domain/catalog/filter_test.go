package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/catalog"
)

// ──────────────────────────────────────────────────────────────────────────────
// ParseFilter: construction of the conjunction filter
// ──────────────────────────────────────────────────────────────────────────────

// TestParseFilter_AllParams builds the full conjunction: brand exact,
// price band 1-50 inclusive, sorted by price ascending.
func TestParseFilter_AllParams(t *testing.T) {
	f, err := catalog.ParseFilter(catalog.FilterParams{
		Name:     "shirt",
		Category: "Shirts",
		Brand:    "Nike",
		Price:    "1-50",
		Rating:   "4",
		Sort:     "lowest",
	})
	require.NoError(t, err)

	assert.Equal(t, "shirt", f.Name)
	assert.Equal(t, "Shirts", f.Category)
	assert.Equal(t, "Nike", f.Brand)
	require.NotNil(t, f.PriceMin)
	require.NotNil(t, f.PriceMax)
	assert.True(t, f.PriceMin.Equal(decimal.NewFromInt(1)), "lower bound must be 1")
	assert.True(t, f.PriceMax.Equal(decimal.NewFromInt(50)), "upper bound must be 50")
	require.NotNil(t, f.RatingMin)
	assert.True(t, f.RatingMin.Equal(decimal.NewFromInt(4)))
	assert.Equal(t, catalog.SortLowest, f.Sort)
}

// TestParseFilter_EmptyParamsImposeNoConstraint verifies that absent or
// empty-string parameters are stripped before the filter is built.
func TestParseFilter_EmptyParamsImposeNoConstraint(t *testing.T) {
	f, err := catalog.ParseFilter(catalog.FilterParams{})
	require.NoError(t, err)

	assert.Empty(t, f.Name)
	assert.Empty(t, f.Category)
	assert.Empty(t, f.Brand)
	assert.Nil(t, f.PriceMin)
	assert.Nil(t, f.PriceMax)
	assert.Nil(t, f.RatingMin)
	assert.Equal(t, catalog.SortDefault, f.Sort)
}

func TestParseFilter_WhitespaceOnlyIsStripped(t *testing.T) {
	f, err := catalog.ParseFilter(catalog.FilterParams{Name: "   ", Brand: " "})
	require.NoError(t, err)
	assert.Empty(t, f.Name)
	assert.Empty(t, f.Brand)
}

// ──────────────────────────────────────────────────────────────────────────────
// Price band validation: malformed bands are rejected, never NaN bounds
// ──────────────────────────────────────────────────────────────────────────────

func TestParseFilter_MalformedPriceBandRejected(t *testing.T) {
	bands := []string{"abc", "1-", "-", "a-b", "10-x", "1-2-3x", "--"}
	for _, band := range bands {
		_, err := catalog.ParseFilter(catalog.FilterParams{Price: band})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "band %q must be rejected", band)
	}
}

func TestParseFilter_InvertedPriceBandRejected(t *testing.T) {
	_, err := catalog.ParseFilter(catalog.FilterParams{Price: "50-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseFilter_DecimalPriceBandAccepted(t *testing.T) {
	f, err := catalog.ParseFilter(catalog.FilterParams{Price: "0.99-19.99"})
	require.NoError(t, err)
	assert.True(t, f.PriceMin.Equal(decimal.NewFromFloat(0.99)))
	assert.True(t, f.PriceMax.Equal(decimal.NewFromFloat(19.99)))
}

func TestParseFilter_NonNumericRatingRejected(t *testing.T) {
	_, err := catalog.ParseFilter(catalog.FilterParams{Rating: "high"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sort enum
// ──────────────────────────────────────────────────────────────────────────────

func TestParseFilter_SortEnum(t *testing.T) {
	cases := map[string]catalog.Sort{
		"lowest":   catalog.SortLowest,
		"highest":  catalog.SortHighest,
		"toprated": catalog.SortTopRated,
		"newest":   catalog.SortNewest,
		"oldest":   catalog.SortOldest,
	}
	for in, want := range cases {
		f, err := catalog.ParseFilter(catalog.FilterParams{Sort: in})
		require.NoError(t, err)
		assert.Equal(t, want, f.Sort)
	}
}

// TestParseFilter_UnrecognizedSortFallsBack: an unknown sort value gets the
// stable default (identifier descending), not an error.
func TestParseFilter_UnrecognizedSortFallsBack(t *testing.T) {
	f, err := catalog.ParseFilter(catalog.FilterParams{Sort: "cheapest"})
	require.NoError(t, err)
	assert.Equal(t, catalog.SortDefault, f.Sort)
}
