package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtures() []Product {
	return []Product{
		{Id: "1", Name: "Steel Bottle", Description: "Keeps drinks cold", Category: "drinkware", Price: 25, EcoScore: 9, InStock: true, Brand: "Hydra", Tags: []string{"travel"}},
		{Id: "2", Name: "Lunch Box", Description: "Glass container", Category: "food-storage", Price: 20, EcoScore: 8, InStock: true},
		{Id: "3", Name: "Cotton Tote", Description: "Everyday carry", Category: "bags", Price: 15, EcoScore: 9, InStock: false, Materials: []string{"organic cotton"}},
		{Id: "4", Name: "Solar Charger", Description: "Charges off-grid", Category: "electronics", Price: 50, EcoScore: 7, InStock: true, Certifications: []string{"Energy Star"}},
	}
}

func TestSearch(t *testing.T) {
	products := fixtures()

	t.Run("matches name case-insensitively", func(t *testing.T) {
		hits := Search("BOTTLE", products)
		require.Len(t, hits, 1)
		assert.Equal(t, "1", hits[0].Id)
	})

	t.Run("matches description, brand, materials and certifications", func(t *testing.T) {
		assert.Len(t, Search("cold", products), 1)
		assert.Len(t, Search("hydra", products), 1)
		assert.Len(t, Search("cotton", products), 1)
		assert.Len(t, Search("energy", products), 1)
	})

	t.Run("any term is enough", func(t *testing.T) {
		hits := Search("bottle charger", products)
		assert.Len(t, hits, 2)
	})

	t.Run("empty query returns everything", func(t *testing.T) {
		assert.Len(t, Search("", products), len(products))
		assert.Len(t, Search("   ", products), len(products))
	})

	t.Run("no hits yields empty", func(t *testing.T) {
		assert.Empty(t, Search("zeppelin", products))
	})
}

func TestByCategory(t *testing.T) {
	products := fixtures()

	t.Run("filters to the category", func(t *testing.T) {
		hits := ByCategory("bags", products)
		require.Len(t, hits, 1)
		assert.Equal(t, "3", hits[0].Id)
	})

	t.Run("all and empty pass through", func(t *testing.T) {
		assert.Len(t, ByCategory("all", products), len(products))
		assert.Len(t, ByCategory("", products), len(products))
	})

	t.Run("unknown category is empty", func(t *testing.T) {
		assert.Empty(t, ByCategory("vehicles", products))
	})
}

func TestFilter(t *testing.T) {
	products := fixtures()

	t.Run("in stock only", func(t *testing.T) {
		inStock := true
		hits := Filter(products, FilterOptions{InStock: &inStock})
		assert.Len(t, hits, 3)
		for _, p := range hits {
			assert.True(t, p.InStock)
		}
	})

	t.Run("minimum eco score", func(t *testing.T) {
		min := 9
		hits := Filter(products, FilterOptions{MinEcoScore: &min})
		assert.Len(t, hits, 2)
	})

	t.Run("combined", func(t *testing.T) {
		inStock := true
		min := 9
		hits := Filter(products, FilterOptions{InStock: &inStock, MinEcoScore: &min})
		require.Len(t, hits, 1)
		assert.Equal(t, "1", hits[0].Id)
	})
}

func TestSortBy(t *testing.T) {
	products := fixtures()

	t.Run("price ascending", func(t *testing.T) {
		sorted := SortBy(products, SortPriceAsc)
		require.Len(t, sorted, 4)
		assert.Equal(t, "3", sorted[0].Id)
		assert.Equal(t, "4", sorted[3].Id)
	})

	t.Run("price descending", func(t *testing.T) {
		sorted := SortBy(products, SortPriceDesc)
		assert.Equal(t, "4", sorted[0].Id)
	})

	t.Run("eco score descending", func(t *testing.T) {
		sorted := SortBy(products, SortEcoScoreDesc)
		assert.Equal(t, 9, sorted[0].EcoScore)
		assert.Equal(t, 7, sorted[3].EcoScore)
	})

	t.Run("input order is preserved", func(t *testing.T) {
		_ = SortBy(products, SortPriceDesc)
		assert.Equal(t, "1", products[0].Id)
	})
}
