package catalog

import (
	"sort"
	"strings"
)

// Search keeps products whose searchable text contains any whitespace
// token of the query. An empty query matches everything. Products missing
// optional fields are still matchable: nil slices contribute nothing.
func Search(query string, products []Product) []Product {
	if strings.TrimSpace(query) == "" {
		return products
	}

	terms := strings.Fields(strings.ToLower(query))
	out := make([]Product, 0, len(products))
	for _, p := range products {
		text := searchableText(p)
		for _, term := range terms {
			if strings.Contains(text, term) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func searchableText(p Product) string {
	parts := []string{p.Name, p.Description, p.Category, p.Brand}
	parts = append(parts, p.Tags...)
	parts = append(parts, p.Materials...)
	parts = append(parts, p.Certifications...)
	return strings.ToLower(strings.Join(parts, " "))
}

// SortBy returns a sorted copy; the input slice is left untouched.
// Unknown orders fall back to price ascending.
func SortBy(products []Product, order string) []Product {
	out := make([]Product, len(products))
	copy(out, products)

	switch order {
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortEcoScoreDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].EcoScore > out[j].EcoScore })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	}
	return out
}
