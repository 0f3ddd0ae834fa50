package intent

import (
	"strings"

	"EcoSage/app/core/catalog"
)

// Canned phrase sets. Greetings and farewells must equal the whole query;
// gratitude matches anywhere in it.
var (
	greetings        = []string{"hi", "hello", "hey"}
	farewells        = []string{"bye", "goodbye", "see you"}
	gratitudePhrases = []string{"thank you", "thanks", "thank u", "thx", "appreciate", "grateful", "cheers"}

	cannedSuggestions = []string{"Show me reusable bottles", "Recommend sustainable bags"}
)

func cannedResponse(normalized string) (Response, bool) {
	for _, phrase := range gratitudePhrases {
		if strings.Contains(normalized, phrase) {
			return Response{
				Message:     "You're very welcome! If you need help finding more eco-friendly products, just ask.",
				Products:    []catalog.Product{},
				Confidence:  ConfidenceCanned,
				Suggestions: cannedSuggestions,
			}, true
		}
	}

	for _, phrase := range greetings {
		if normalized == phrase {
			return Response{
				Message:     "Hello! How can I help you find eco-friendly products today?",
				Products:    []catalog.Product{},
				Confidence:  ConfidenceCanned,
				Suggestions: cannedSuggestions,
			}, true
		}
	}

	for _, phrase := range farewells {
		if normalized == phrase {
			return Response{
				Message:    "Goodbye! Feel free to ask anytime about eco-friendly products.",
				Products:   []catalog.Product{},
				Confidence: ConfidenceCanned,
			}, true
		}
	}

	return Response{}, false
}

// intentDef is one named intent: a keyword set and a filter/sort over the
// whole catalog. Definitions are evaluated in order; the first substring
// hit wins.
type intentDef struct {
	name     string
	keywords []string
	message  string
	apply    func(opts Options, products []catalog.Product) []catalog.Product
}

var intentDefs = []intentDef{
	{
		name:     "travel",
		keywords: []string{"travel", "trip", "hiking", "outdoor", "commute", "on the go", "portable"},
		message:  "These sustainable picks are built for life on the move!",
		apply: func(opts Options, products []catalog.Product) []catalog.Product {
			return catalog.Search("travel portable hiking outdoor insulated water-resistant", products)
		},
	},
	{
		name:     "budget",
		keywords: []string{"cheap", "affordable", "budget", "inexpensive", "low cost", "deal"},
		message:  "Here are wallet-friendly sustainable options!",
		apply: func(opts Options, products []catalog.Product) []catalog.Product {
			var out []catalog.Product
			for _, p := range products {
				if p.Price <= opts.BudgetCeiling {
					out = append(out, p)
				}
			}
			return catalog.SortBy(out, catalog.SortPriceAsc)
		},
	},
	{
		name:     "premium",
		keywords: []string{"premium", "luxury", "high end", "high-end", "top of the line", "best quality"},
		message:  "Here are our premium sustainable products!",
		apply: func(opts Options, products []catalog.Product) []catalog.Product {
			var out []catalog.Product
			for _, p := range products {
				if p.Price >= opts.PremiumFloor {
					out = append(out, p)
				}
			}
			return catalog.SortBy(out, catalog.SortPriceDesc)
		},
	},
	{
		name:     "beginner",
		keywords: []string{"beginner", "getting started", "start with", "new to", "first time"},
		message:  "Great starting points for a more sustainable routine!",
		apply: func(opts Options, products []catalog.Product) []catalog.Product {
			var out []catalog.Product
			for _, p := range products {
				if p.EcoScore >= 8 && p.Price <= opts.LowPriceThreshold*1.5 {
					out = append(out, p)
				}
			}
			return catalog.SortBy(out, catalog.SortPriceAsc)
		},
	},
	{
		name:     "gift",
		keywords: []string{"gift", "present", "birthday", "anniversary"},
		message:  "These make wonderful eco-conscious gifts!",
		apply: func(opts Options, products []catalog.Product) []catalog.Product {
			inStock := true
			minEco := 8
			return catalog.Filter(products, catalog.FilterOptions{InStock: &inStock, MinEcoScore: &minEco})
		},
	},
}

func matchIntent(normalized string) (intentDef, bool) {
	for _, def := range intentDefs {
		for _, kw := range def.keywords {
			if strings.Contains(normalized, kw) {
				return def, true
			}
		}
	}
	return intentDef{}, false
}

// categoryDef maps keyword hits to one catalog category.
type categoryDef struct {
	category string
	keywords []string
	message  string
}

var categoryDefs = []categoryDef{
	{
		category: "drinkware",
		keywords: []string{"water", "drink", "bottle", "cup", "mug", "hydration"},
		message:  "I found some excellent eco-friendly drinkware options for you!",
	},
	{
		category: "food-storage",
		keywords: []string{"food", "lunch", "meal", "storage", "container", "kitchen"},
		message:  "Here are some fantastic sustainable food storage solutions!",
	},
	{
		category: "bags",
		keywords: []string{"bag", "tote", "shopping", "carry", "backpack"},
		message:  "I found some stylish and sustainable bags for your needs!",
	},
	{
		category: "electronics",
		keywords: []string{"charger", "solar", "phone", "power", "electronic", "case"},
		message:  "Check out these greener electronics!",
	},
	{
		category: "personal-care",
		keywords: []string{"toothbrush", "yoga", "soap", "hygiene", "personal care"},
		message:  "Here are some plastic-free personal care picks!",
	},
	{
		category: "home",
		keywords: []string{"home", "garden", "light", "sheet", "bedding", "decor"},
		message:  "Here are sustainable options for your home!",
	},
}

func matchCategory(normalized string) (categoryDef, bool) {
	for _, def := range categoryDefs {
		for _, kw := range def.keywords {
			if strings.Contains(normalized, kw) {
				return def, true
			}
		}
	}
	return categoryDef{}, false
}
