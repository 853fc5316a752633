package catalog

import (
	"testing"

	"github.com/Galyna-kud/flowers-of-happiness/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []domain.Bouquet {
	return []domain.Bouquet{
		{ID: "1", Name: "Червоні троянди", Description: "класика", Category: "roses", Price: 1200, Rating: 4.9},
		{ID: "2", Name: "Соняшники", Description: "яскравий настрій", Category: "seasonal", Price: 850, Rating: 4.7},
		{ID: "3", Name: "Півонії", Description: "ніжні та пишні", Category: "peonies", Price: 1650, Rating: 4.8},
		{ID: "4", Name: "Польовий мікс", Description: "ромашки і лаванда", Category: "seasonal", Price: 690, Rating: 4.5},
	}
}

func TestSearch_NoFilter_ReturnsAllInOriginalOrder(t *testing.T) {
	products := testProducts()

	got := Search(products, Filter{})

	require.Len(t, got, len(products))
	for i := range products {
		assert.Equal(t, products[i].ID, got[i].ID)
	}
}

func TestSearch_TextMatchesNameOrDescription(t *testing.T) {
	products := testProducts()

	byName := Search(products, Filter{Query: "троянди"})
	require.Len(t, byName, 1)
	assert.Equal(t, "1", byName[0].ID)

	byDescription := Search(products, Filter{Query: "ЛАВАНДА"})
	require.Len(t, byDescription, 1)
	assert.Equal(t, "4", byDescription[0].ID)
}

func TestSearch_CategoryAllMatchesEverything(t *testing.T) {
	products := testProducts()

	assert.Len(t, Search(products, Filter{Category: CategoryAll}), 4)
	got := Search(products, Filter{Category: "seasonal"})
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "4", got[1].ID)
}

func TestSearch_PriceBoundsAreInclusive(t *testing.T) {
	products := testProducts()

	got := Search(products, Filter{MinPrice: 850, MaxPrice: 1200})

	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
}

func TestSearch_FiltersAreConjunctive(t *testing.T) {
	products := testProducts()

	got := Search(products, Filter{Query: "и", Category: "seasonal", MinPrice: 800})

	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestSearch_OutputIsSubsetSatisfyingPredicates(t *testing.T) {
	products := testProducts()
	f := Filter{Query: "і", MinPrice: 700, MaxPrice: 1700, Category: CategoryAll}

	got := Search(products, f)

	ids := make(map[string]bool, len(products))
	for _, p := range products {
		ids[p.ID] = true
	}
	for _, p := range got {
		assert.True(t, ids[p.ID], "no fabricated items")
		assert.GreaterOrEqual(t, p.Price, f.MinPrice)
		assert.LessOrEqual(t, p.Price, f.MaxPrice)
	}
}

func TestSearch_SortPriceAscDescAreReversed(t *testing.T) {
	products := testProducts()

	asc := Search(products, Filter{Sort: SortPriceAsc})
	desc := Search(products, Filter{Sort: SortPriceDesc})

	require.Len(t, asc, len(desc))
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
	for i := 1; i < len(asc); i++ {
		assert.LessOrEqual(t, asc[i-1].Price, asc[i].Price)
	}
}

func TestSearch_SortRatingDescending(t *testing.T) {
	got := Search(testProducts(), Filter{Sort: SortRating})

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Rating, got[i].Rating)
	}
}

func TestSearch_DoesNotMutateInput(t *testing.T) {
	products := testProducts()

	Search(products, Filter{Sort: SortPriceDesc})

	assert.Equal(t, testProducts(), products)
}
