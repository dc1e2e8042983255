// Package catalog holds the pure business rules for browsing the product
// catalog: filter construction from query parameters and page-window math.
// No persistence or HTTP types cross this boundary.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-api/internal/domain"
)

// Sort is the fixed set of catalog sort orders.
type Sort string

const (
	SortLowest   Sort = "lowest"   // price ascending
	SortHighest  Sort = "highest"  // price descending
	SortTopRated Sort = "toprated" // rating descending
	SortNewest   Sort = "newest"   // creation time descending
	SortOldest   Sort = "oldest"   // creation time ascending
	SortDefault  Sort = ""         // identifier descending (stable default)
)

// FilterParams are the raw optional query parameters as received from the
// caller. Empty strings mean "not supplied".
type FilterParams struct {
	Name     string // case-insensitive substring
	Category string // exact match
	Brand    string // exact match
	Price    string // band token "<low>-<high>", inclusive
	Rating   string // minimum inclusive threshold, numeric string
	Sort     string
}

// Filter is the validated filter predicate: a conjunction of the supplied
// sub-filters. Nil bounds mean the dimension is unconstrained.
type Filter struct {
	Name      string
	Category  string
	Brand     string
	PriceMin  *decimal.Decimal
	PriceMax  *decimal.Decimal
	RatingMin *decimal.Decimal
	Sort      Sort
}

// ParseFilter builds a Filter from the raw parameters. Absent (empty-string)
// parameters impose no constraint. A malformed price band or rating is
// rejected with ErrInvalidInput instead of silently matching nothing.
// An unrecognized sort value falls back to the stable default.
func ParseFilter(params FilterParams) (Filter, error) {
	f := Filter{
		Name:     strings.TrimSpace(params.Name),
		Category: strings.TrimSpace(params.Category),
		Brand:    strings.TrimSpace(params.Brand),
		Sort:     parseSort(params.Sort),
	}

	if band := strings.TrimSpace(params.Price); band != "" {
		low, high, err := parsePriceBand(band)
		if err != nil {
			return Filter{}, err
		}
		f.PriceMin = &low
		f.PriceMax = &high
	}

	if rating := strings.TrimSpace(params.Rating); rating != "" {
		min, err := decimal.NewFromString(rating)
		if err != nil || min.IsNegative() {
			return Filter{}, domain.ErrInvalidInput
		}
		f.RatingMin = &min
	}

	return f, nil
}

// parsePriceBand parses a "<low>-<high>" token into inclusive decimal bounds.
// Both halves must be non-negative numbers and low must not exceed high.
func parsePriceBand(band string) (low, high decimal.Decimal, err error) {
	parts := strings.SplitN(band, "-", 2)
	if len(parts) != 2 {
		return low, high, domain.ErrInvalidInput
	}
	low, err = decimal.NewFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return low, high, domain.ErrInvalidInput
	}
	high, err = decimal.NewFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return low, high, domain.ErrInvalidInput
	}
	if low.IsNegative() || high.IsNegative() || low.GreaterThan(high) {
		return low, high, domain.ErrInvalidInput
	}
	return low, high, nil
}

func parseSort(s string) Sort {
	switch Sort(strings.TrimSpace(s)) {
	case SortLowest, SortHighest, SortTopRated, SortNewest, SortOldest:
		return Sort(strings.TrimSpace(s))
	default:
		return SortDefault
	}
}
