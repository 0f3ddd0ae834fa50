package product

import (
	"testing"

	"EcoSage/app/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowCatalogMapping(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		entry := catalog.Product{
			Id:             "7",
			Name:           "Bamboo Cutlery Set",
			Description:    "Portable utensils",
			Price:          12.99,
			Image:          "/images/cutlery.jpg",
			Category:       "food-storage",
			EcoScore:       9,
			InStock:        true,
			Brand:          "GreenFork",
			Tags:           []string{"travel", "zero-waste"},
			Materials:      []string{"bamboo"},
			Certifications: []string{"FSC"},
		}

		got := FromCatalog(entry).ToCatalog()
		assert.Equal(t, entry, got)
	})

	t.Run("empty lists encode as empty json arrays", func(t *testing.T) {
		row := FromCatalog(catalog.Product{Id: "1", Name: "Plain"})
		assert.Equal(t, "[]", row.Tags)
		assert.Equal(t, "[]", row.Materials)
		assert.Equal(t, "[]", row.Certifications)
		assert.Nil(t, row.ToCatalog().Tags)
	})

	t.Run("bad json degrades to no values", func(t *testing.T) {
		row := &Product{Id: "1", Name: "Broken", Tags: "{not json", Materials: `"scalar"`}
		got := row.ToCatalog()
		assert.Nil(t, got.Tags)
		assert.Nil(t, got.Materials)
	})

	t.Run("eco score is clamped to range", func(t *testing.T) {
		low := &Product{EcoScore: -3}
		high := &Product{EcoScore: 42}
		assert.Equal(t, 0, low.ToCatalog().EcoScore)
		assert.Equal(t, 10, high.ToCatalog().EcoScore)
	})
}

func TestSeedRowsAreWellFormed(t *testing.T) {
	seeds := catalog.Seed()
	require.NotEmpty(t, seeds)

	seen := map[string]bool{}
	for _, p := range seeds {
		require.False(t, seen[p.Id], "duplicate id %s", p.Id)
		seen[p.Id] = true

		row := FromCatalog(p)
		assert.Equal(t, p, row.ToCatalog(), p.Id)
		assert.Greater(t, p.Price, 0.0, p.Id)
		assert.NotEmpty(t, p.Category, p.Id)
	}
}
