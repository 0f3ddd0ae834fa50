package catalog

// Product is a read-only catalog entry. Cart and intent code receive
// snapshots of these and never mutate them.
type Product struct {
	Id             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	Image          string   `json:"image"`
	Category       string   `json:"category"`
	EcoScore       int      `json:"ecoScore"`
	InStock        bool     `json:"inStock"`
	Brand          string   `json:"brand,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Materials      []string `json:"materials,omitempty"`
	Certifications []string `json:"certifications,omitempty"`
}

// FilterOptions narrows a product set. Nil fields mean "no constraint".
type FilterOptions struct {
	InStock     *bool
	MinEcoScore *int
}

// SortOrder values accepted by SortBy.
const (
	SortPriceAsc     = "price-asc"
	SortPriceDesc    = "price-desc"
	SortEcoScoreDesc = "ecoscore-desc"
)

// ByCategory returns the products in the given category. The sentinel
// category "all" returns the input unchanged.
func ByCategory(categoryId string, products []Product) []Product {
	if categoryId == "" || categoryId == "all" {
		return products
	}
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Category == categoryId {
			out = append(out, p)
		}
	}
	return out
}

// Filter keeps products satisfying every set option.
func Filter(products []Product, opts FilterOptions) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if opts.InStock != nil && p.InStock != *opts.InStock {
			continue
		}
		if opts.MinEcoScore != nil && p.EcoScore < *opts.MinEcoScore {
			continue
		}
		out = append(out, p)
	}
	return out
}
