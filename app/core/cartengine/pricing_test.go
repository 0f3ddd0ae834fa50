package cartengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cartWithTotal(total float64) Cart {
	return Cart{
		Items: []Item{{ProductId: "1", Price: total, Quantity: 1}},
		Total: total,
	}
}

func TestComputePricingSummary(t *testing.T) {
	t.Run("below threshold pays flat shipping", func(t *testing.T) {
		s := ComputePricingSummary(cartWithTotal(45.00), 0.10, 50, 5.99)
		assert.InDelta(t, 45.00, s.Subtotal, 1e-9)
		assert.InDelta(t, 5.99, s.ShippingFee, 1e-9)
		assert.InDelta(t, 4.50, s.DiscountAmount, 1e-9)
		assert.InDelta(t, 46.49, s.GrandTotal, 1e-9)
	})

	t.Run("above threshold ships free", func(t *testing.T) {
		s := ComputePricingSummary(cartWithTotal(60.00), 0, 50, 5.99)
		assert.InDelta(t, 60.00, s.Subtotal, 1e-9)
		assert.Zero(t, s.ShippingFee)
		assert.Zero(t, s.DiscountAmount)
		assert.InDelta(t, 60.00, s.GrandTotal, 1e-9)
	})

	t.Run("exactly at threshold still pays shipping", func(t *testing.T) {
		s := ComputePricingSummary(cartWithTotal(50.00), 0, 50, 5.99)
		assert.InDelta(t, 5.99, s.ShippingFee, 1e-9)
		assert.InDelta(t, 55.99, s.GrandTotal, 1e-9)
	})

	t.Run("empty cart", func(t *testing.T) {
		s := ComputePricingSummary(EmptyCart(), 0.20, 50, 5.99)
		assert.Zero(t, s.Subtotal)
		assert.InDelta(t, 5.99, s.ShippingFee, 1e-9)
		assert.Zero(t, s.DiscountAmount)
		assert.InDelta(t, 5.99, s.GrandTotal, 1e-9)
	})

	t.Run("out-of-range fractions are ignored", func(t *testing.T) {
		for _, fraction := range []float64{0, -0.5, 1, 1.5} {
			s := ComputePricingSummary(cartWithTotal(100), fraction, 50, 5.99)
			assert.Zero(t, s.DiscountAmount)
			assert.InDelta(t, 100.00, s.GrandTotal, 1e-9)
		}
	})

	t.Run("amounts round to cents", func(t *testing.T) {
		// 3 x 9.99 = 29.97, 15% off = 4.4955 -> 4.50
		cart := Cart{Items: []Item{{ProductId: "1", Price: 9.99, Quantity: 3}}, Total: 29.97}
		s := ComputePricingSummary(cart, 0.15, 50, 5.99)
		assert.InDelta(t, 4.50, s.DiscountAmount, 1e-9)
		assert.InDelta(t, 31.46, s.GrandTotal, 1e-9)
	})
}

func TestPromoTableLookup(t *testing.T) {
	table := DefaultPromoCodes()

	t.Run("default codes resolve", func(t *testing.T) {
		for code, want := range map[string]float64{"ECO10": 0.10, "SAVE15": 0.15, "GREEN20": 0.20} {
			got, ok := table.Lookup(code)
			assert.True(t, ok, code)
			assert.InDelta(t, want, got, 1e-9)
		}
	})

	t.Run("case and whitespace are normalized", func(t *testing.T) {
		got, ok := table.Lookup("  eco10 ")
		assert.True(t, ok)
		assert.InDelta(t, 0.10, got, 1e-9)
	})

	t.Run("unknown code misses", func(t *testing.T) {
		_, ok := table.Lookup("NOPE")
		assert.False(t, ok)
	})

	t.Run("bad config fractions are treated as absent", func(t *testing.T) {
		bad := PromoTable{"ZERO": 0, "FULL": 1, "NEG": -0.2, "OVER": 1.3}
		for code := range bad {
			_, ok := bad.Lookup(code)
			assert.False(t, ok, code)
		}
	})
}
