package intent

import (
	"strings"

	"EcoSage/app/core/catalog"
)

// Response is what the assistant hands back for one query: a short message,
// a bounded product list, a confidence score and optional follow-ups.
type Response struct {
	Message     string            `json:"message"`
	Products    []catalog.Product `json:"products"`
	Confidence  float64           `json:"confidence"`
	Suggestions []string          `json:"suggestions,omitempty"`
}

// Confidence ladder, one value per tier.
const (
	ConfidenceCanned     = 1.0
	ConfidenceIntent     = 0.9
	ConfidenceCategory   = 0.8
	ConfidenceSearch     = 0.6
	ConfidencePopularity = 0.4
)

// Options tune the matcher's bounds and thresholds. Zero values fall back
// to the storefront defaults.
type Options struct {
	MaxResults        int     // cap on returned products
	HighEcoScore      int     // triggers the eco follow-up suggestion
	HighQualityAvg    float64 // average ecoScore above this earns the enthusiastic suffix
	LowPriceThreshold float64 // triggers the affordability follow-up
	BudgetCeiling     float64 // "budget" intent price cap
	PremiumFloor      float64 // "premium" intent price floor
}

func (o Options) normalized() Options {
	if o.MaxResults <= 0 {
		o.MaxResults = 4
	}
	if o.HighEcoScore <= 0 {
		o.HighEcoScore = 9
	}
	if o.HighQualityAvg <= 0 {
		o.HighQualityAvg = 8
	}
	if o.LowPriceThreshold <= 0 {
		o.LowPriceThreshold = 100
	}
	if o.BudgetCeiling <= 0 {
		o.BudgetCeiling = 100
	}
	if o.PremiumFloor <= 0 {
		o.PremiumFloor = 200
	}
	return o
}

// Matcher maps free-text queries onto the catalog with a fixed tier order:
// canned phrases, named intents, category keywords, free-text search, and a
// popularity fallback. It is a pure function of (query, catalog snapshot)
// and safe for concurrent use.
type Matcher struct {
	opts Options
}

func NewMatcher(opts Options) *Matcher {
	return &Matcher{opts: opts.normalized()}
}

// Match runs the tier pipeline. The first tier producing a non-empty match
// set wins; the popularity fallback guarantees a non-empty result whenever
// the catalog itself is non-empty.
func (m *Matcher) Match(query string, products []catalog.Product) Response {
	normalized := strings.ToLower(strings.TrimSpace(query))

	if resp, ok := cannedResponse(normalized); ok {
		return resp
	}

	if def, ok := matchIntent(normalized); ok {
		if hits := def.apply(m.opts, products); len(hits) > 0 {
			return m.finish(def.message, hits, ConfidenceIntent)
		}
	}

	if def, ok := matchCategory(normalized); ok {
		if hits := catalog.ByCategory(def.category, products); len(hits) > 0 {
			return m.finish(def.message, hits, ConfidenceCategory)
		}
	}

	if len(strings.Fields(normalized)) > 0 {
		if hits := catalog.Search(normalized, products); len(hits) > 0 {
			return m.finish("I found some sustainable products that match your search.", hits, ConfidenceSearch)
		}
	}

	popular := catalog.SortBy(products, catalog.SortEcoScoreDesc)
	return m.finish("I couldn't find an exact match, but here are some popular eco-friendly picks.", popular, ConfidencePopularity)
}

// finish applies the shared post-processing: ecoScore ordering, the result
// cap, the price-range clause in the message, and follow-up suggestions.
func (m *Matcher) finish(message string, products []catalog.Product, confidence float64) Response {
	products = catalog.SortBy(products, catalog.SortEcoScoreDesc)
	if len(products) > m.opts.MaxResults {
		products = products[:m.opts.MaxResults]
	}

	message += priceRangeClause(products)
	if avgEcoScore(products) > m.opts.HighQualityAvg {
		message += " These are some of our greenest picks!"
	}

	return Response{
		Message:     message,
		Products:    products,
		Confidence:  confidence,
		Suggestions: m.suggestions(products),
	}
}

func avgEcoScore(products []catalog.Product) float64 {
	if len(products) == 0 {
		return 0
	}
	sum := 0
	for _, p := range products {
		sum += p.EcoScore
	}
	return float64(sum) / float64(len(products))
}
