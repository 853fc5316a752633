// Package catalog implements the product filter/sort pipeline. Search is a
// pure function: it never mutates its input and the same inputs always yield
// the same ordering.
package catalog

import (
	"sort"
	"strings"

	"github.com/Galyna-kud/flowers-of-happiness/internal/domain"
)

type SortKey string

const (
	// SortPopular preserves the catalog's natural order. There is no
	// popularity metric in the data model, so this is an identity sort.
	SortPopular   SortKey = "popular"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortRating    SortKey = "rating"
)

// CategoryAll matches every category.
const CategoryAll = "all"

// Filter is the full filter/sort configuration. Zero values relax each
// predicate: empty Query matches everything, empty Category means "all",
// MaxPrice 0 means unbounded, empty Sort means SortPopular.
type Filter struct {
	Query    string
	Category string
	MinPrice int
	MaxPrice int
	Sort     SortKey
}

// Search applies the text, category and price predicates conjunctively, then
// stable-sorts the survivors. The result is a fresh slice and always a
// subset of the input.
func Search(products []domain.Bouquet, f Filter) []domain.Bouquet {
	out := make([]domain.Bouquet, 0, len(products))
	for _, p := range products {
		if matches(p, f) {
			out = append(out, p)
		}
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}
	return out
}

func matches(p domain.Bouquet, f Filter) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	if f.Category != "" && f.Category != CategoryAll && p.Category != f.Category {
		return false
	}
	if p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	return true
}
