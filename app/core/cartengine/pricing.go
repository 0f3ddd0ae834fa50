package cartengine

import (
	"math"
	"strings"
)

// PromoTable maps upper-cased promo codes to discount fractions in (0, 1).
// At most one discount is active per cart; codes do not combine.
type PromoTable map[string]float64

// DefaultPromoCodes is the storefront's fixed table.
func DefaultPromoCodes() PromoTable {
	return PromoTable{
		"ECO10":   0.10,
		"SAVE15":  0.15,
		"GREEN20": 0.20,
	}
}

// Lookup resolves a code case-insensitively. Fractions outside (0, 1) are
// treated as absent so a bad config entry cannot zero out or invert totals.
func (t PromoTable) Lookup(code string) (float64, bool) {
	fraction, ok := t[strings.ToUpper(strings.TrimSpace(code))]
	if !ok || fraction <= 0 || fraction >= 1 {
		return 0, false
	}
	return fraction, true
}

// ShippingConfig holds the free-shipping threshold and the flat fee charged
// below it.
type ShippingConfig struct {
	FreeThreshold float64
	FlatFee       float64
}

// PricingSummary is derived from a cart and never stored.
type PricingSummary struct {
	Subtotal       float64 `json:"subtotal"`
	ShippingFee    float64 `json:"shippingFee"`
	DiscountAmount float64 `json:"discountAmount"`
	GrandTotal     float64 `json:"grandTotal"`
}

// ComputePricingSummary prices a cart. Shipping is free once the subtotal
// exceeds the threshold; the discount applies to the subtotal only, not to
// shipping. All amounts are rounded to cents.
func ComputePricingSummary(cart Cart, discountFraction, freeShippingThreshold, flatShippingFee float64) PricingSummary {
	subtotal := roundCents(cart.Total)

	shipping := flatShippingFee
	if subtotal > freeShippingThreshold {
		shipping = 0
	}

	discount := 0.0
	if discountFraction > 0 && discountFraction < 1 {
		discount = roundCents(subtotal * discountFraction)
	}

	return PricingSummary{
		Subtotal:       subtotal,
		ShippingFee:    shipping,
		DiscountAmount: discount,
		GrandTotal:     roundCents(subtotal + shipping - discount),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
