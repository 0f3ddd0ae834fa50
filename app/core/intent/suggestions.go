package intent

import (
	"fmt"

	"EcoSage/app/core/catalog"
)

const maxSuggestions = 3

// priceRangeClause summarises the result set's price spread for the message.
func priceRangeClause(products []catalog.Product) string {
	if len(products) == 0 {
		return ""
	}

	min, max := products[0].Price, products[0].Price
	for _, p := range products[1:] {
		if p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
	}

	if min == max {
		return fmt.Sprintf(" All priced at $%.2f.", min)
	}
	return fmt.Sprintf(" Prices range from $%.2f to $%.2f.", min, max)
}

// suggestions derives follow-up prompts from the result set: the dominant
// category of the top result first, then conditional affordability and
// eco-score prompts, then generic fillers. Capped at maxSuggestions.
func (m *Matcher) suggestions(products []catalog.Product) []string {
	if len(products) == 0 {
		return nil
	}

	var out []string
	if top := products[0].Category; top != "" {
		out = append(out, fmt.Sprintf("Show me more %s products", top))
	}

	for _, p := range products {
		if p.Price < m.opts.LowPriceThreshold {
			out = append(out, "What are your most affordable options?")
			break
		}
	}

	for _, p := range products {
		if p.EcoScore >= m.opts.HighEcoScore {
			out = append(out, "Which products have the highest eco score?")
			break
		}
	}

	out = append(out,
		"What's good for a zero-waste kitchen?",
		"Recommend a sustainable gift",
	)

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
