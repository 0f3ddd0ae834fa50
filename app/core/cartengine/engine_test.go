package cartengine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	blobs   map[string][]byte
	loadErr error
	saveErr error
	saves   int
}

func newMemStore() *memStore {
	return &memStore{blobs: map[string][]byte{}}
}

func (s *memStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	if s.loadErr != nil {
		return nil, false, s.loadErr
	}
	blob, ok := s.blobs[key]
	return blob, ok, nil
}

func (s *memStore) Save(_ context.Context, key string, blob []byte) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.blobs[key] = blob
	return nil
}

type countingNotifier struct {
	calls int
}

func (n *countingNotifier) CartChanged(context.Context, string) error {
	n.calls++
	return nil
}

func TestEngineAddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("new line then merge", func(t *testing.T) {
		store := newMemStore()
		e := NewEngine(store)

		cart, err := e.AddItem(ctx, "s1", AddItemInput{ProductId: "1", Name: "Bottle", Price: 24.99, Quantity: 2})
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.EqualValues(t, 2, cart.Items[0].Quantity)

		cart, err = e.AddItem(ctx, "s1", AddItemInput{ProductId: "1", Name: "Bottle", Price: 24.99, Quantity: 3})
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.EqualValues(t, 5, cart.Items[0].Quantity)
		assert.InDelta(t, 124.95, cart.Total, 1e-9)
		assert.EqualValues(t, 1, cart.ItemCount)
		assert.EqualValues(t, 5, cart.TotalQuantity)
	})

	t.Run("second product appends in order", func(t *testing.T) {
		store := newMemStore()
		e := NewEngine(store)

		_, err := e.AddItem(ctx, "s1", AddItemInput{ProductId: "1", Price: 10, Quantity: 1})
		require.NoError(t, err)
		cart, err := e.AddItem(ctx, "s1", AddItemInput{ProductId: "2", Price: 5, Quantity: 4})
		require.NoError(t, err)

		require.Len(t, cart.Items, 2)
		assert.Equal(t, "1", cart.Items[0].ProductId)
		assert.Equal(t, "2", cart.Items[1].ProductId)
		assert.InDelta(t, 30, cart.Total, 1e-9)
		assert.EqualValues(t, 2, cart.ItemCount)
		assert.EqualValues(t, 5, cart.TotalQuantity)
	})

	t.Run("rejects zero and negative quantity without writing", func(t *testing.T) {
		store := newMemStore()
		e := NewEngine(store)

		cart, err := e.AddItem(ctx, "s1", AddItemInput{ProductId: "1", Price: 10, Quantity: 0})
		require.NoError(t, err)
		assert.Empty(t, cart.Items)

		cart, err = e.AddItem(ctx, "s1", AddItemInput{ProductId: "1", Price: 10, Quantity: -3})
		require.NoError(t, err)
		assert.Empty(t, cart.Items)
		assert.Zero(t, store.saves)
	})

	t.Run("propagates store failure", func(t *testing.T) {
		store := newMemStore()
		store.loadErr = errors.New("redis down")
		e := NewEngine(store)

		_, err := e.AddItem(ctx, "s1", AddItemInput{ProductId: "1", Price: 10, Quantity: 1})
		assert.Error(t, err)
	})
}

func TestEngineUpdateQuantity(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*Engine, *memStore) {
		store := newMemStore()
		e := NewEngine(store)
		_, err := e.AddItem(ctx, "s1", AddItemInput{ProductId: "1", Price: 10, Quantity: 2})
		require.NoError(t, err)
		_, err = e.AddItem(ctx, "s1", AddItemInput{ProductId: "2", Price: 3, Quantity: 1})
		require.NoError(t, err)
		return e, store
	}

	t.Run("sets absolute quantity", func(t *testing.T) {
		e, _ := seed(t)
		cart, err := e.UpdateQuantity(ctx, "s1", "1", 7)
		require.NoError(t, err)
		assert.EqualValues(t, 7, cart.Items[0].Quantity)
		assert.InDelta(t, 73, cart.Total, 1e-9)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		e, _ := seed(t)
		cart, err := e.UpdateQuantity(ctx, "s1", "1", 0)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, "2", cart.Items[0].ProductId)
	})

	t.Run("negative removes the line", func(t *testing.T) {
		e, _ := seed(t)
		cart, err := e.UpdateQuantity(ctx, "s1", "1", -5)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
	})

	t.Run("unknown product is a no-op", func(t *testing.T) {
		e, store := seed(t)
		saves := store.saves
		cart, err := e.UpdateQuantity(ctx, "s1", "nope", 3)
		require.NoError(t, err)
		assert.Len(t, cart.Items, 2)
		assert.Equal(t, saves, store.saves)
	})
}

func TestEngineRemoveAndClear(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	e := NewEngine(store)

	_, err := e.AddItem(ctx, "s1", AddItemInput{ProductId: "1", Price: 10, Quantity: 2})
	require.NoError(t, err)
	_, err = e.AddItem(ctx, "s1", AddItemInput{ProductId: "2", Price: 3, Quantity: 1})
	require.NoError(t, err)

	cart, err := e.RemoveItem(ctx, "s1", "1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.InDelta(t, 3, cart.Total, 1e-9)

	cart, err = e.Clear(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)
	assert.Zero(t, cart.ItemCount)
	assert.Zero(t, cart.TotalQuantity)

	cart, err = e.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestEnginePromoCodes(t *testing.T) {
	ctx := context.Background()

	t.Run("known code applies case-insensitively", func(t *testing.T) {
		e := NewEngine(newMemStore())
		_, err := e.AddItem(ctx, "s1", AddItemInput{ProductId: "1", Price: 100, Quantity: 1})
		require.NoError(t, err)

		result, err := e.ApplyPromoCode(ctx, "s1", "eco10")
		require.NoError(t, err)
		assert.True(t, result.Applied)
		assert.InDelta(t, 0.10, result.DiscountFraction, 1e-9)

		cart, err := e.GetCart(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "ECO10", cart.PromoCode)
	})

	t.Run("unknown code leaves prior discount intact", func(t *testing.T) {
		e := NewEngine(newMemStore())
		_, err := e.AddItem(ctx, "s1", AddItemInput{ProductId: "1", Price: 100, Quantity: 1})
		require.NoError(t, err)
		_, err = e.ApplyPromoCode(ctx, "s1", "SAVE15")
		require.NoError(t, err)

		result, err := e.ApplyPromoCode(ctx, "s1", "BOGUS")
		require.NoError(t, err)
		assert.False(t, result.Applied)

		cart, err := e.GetCart(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "SAVE15", cart.PromoCode)
		assert.InDelta(t, 0.15, cart.DiscountFraction, 1e-9)
	})

	t.Run("blank code is rejected quietly", func(t *testing.T) {
		e := NewEngine(newMemStore())
		result, err := e.ApplyPromoCode(ctx, "s1", "   ")
		require.NoError(t, err)
		assert.False(t, result.Applied)
	})

	t.Run("promo survives later mutations under the default policy", func(t *testing.T) {
		e := NewEngine(newMemStore())
		_, err := e.AddItem(ctx, "s1", AddItemInput{ProductId: "1", Price: 100, Quantity: 1})
		require.NoError(t, err)
		_, err = e.ApplyPromoCode(ctx, "s1", "GREEN20")
		require.NoError(t, err)

		cart, err := e.AddItem(ctx, "s1", AddItemInput{ProductId: "2", Price: 5, Quantity: 1})
		require.NoError(t, err)
		assert.Equal(t, "GREEN20", cart.PromoCode)
	})

	t.Run("strict policy drops promo on mutation", func(t *testing.T) {
		e := NewEngine(newMemStore(), WithPolicy(Policy{KeepPromoOnMutate: false, ClearPromoOnCheckout: true}))
		_, err := e.AddItem(ctx, "s1", AddItemInput{ProductId: "1", Price: 100, Quantity: 1})
		require.NoError(t, err)
		_, err = e.ApplyPromoCode(ctx, "s1", "ECO10")
		require.NoError(t, err)

		cart, err := e.AddItem(ctx, "s1", AddItemInput{ProductId: "2", Price: 5, Quantity: 1})
		require.NoError(t, err)
		assert.Empty(t, cart.PromoCode)
		assert.Zero(t, cart.DiscountFraction)
	})
}

func TestEngineCheckout(t *testing.T) {
	ctx := context.Background()
	shipping := ShippingConfig{FreeThreshold: 50, FlatFee: 5.99}

	t.Run("prices then empties the cart", func(t *testing.T) {
		e := NewEngine(newMemStore())
		_, err := e.AddItem(ctx, "s1", AddItemInput{ProductId: "1", Price: 45, Quantity: 1})
		require.NoError(t, err)
		_, err = e.ApplyPromoCode(ctx, "s1", "ECO10")
		require.NoError(t, err)

		summary, err := e.Checkout(ctx, "s1", shipping)
		require.NoError(t, err)
		assert.InDelta(t, 45.00, summary.Subtotal, 1e-9)
		assert.InDelta(t, 5.99, summary.ShippingFee, 1e-9)
		assert.InDelta(t, 4.50, summary.DiscountAmount, 1e-9)
		assert.InDelta(t, 46.49, summary.GrandTotal, 1e-9)

		cart, err := e.GetCart(ctx, "s1")
		require.NoError(t, err)
		assert.Empty(t, cart.Items)
		assert.Empty(t, cart.PromoCode)
	})

	t.Run("keeps promo when the policy says so", func(t *testing.T) {
		e := NewEngine(newMemStore(), WithPolicy(Policy{KeepPromoOnMutate: true, ClearPromoOnCheckout: false}))
		_, err := e.AddItem(ctx, "s1", AddItemInput{ProductId: "1", Price: 100, Quantity: 1})
		require.NoError(t, err)
		_, err = e.ApplyPromoCode(ctx, "s1", "SAVE15")
		require.NoError(t, err)

		_, err = e.Checkout(ctx, "s1", shipping)
		require.NoError(t, err)

		cart, err := e.GetCart(ctx, "s1")
		require.NoError(t, err)
		assert.Empty(t, cart.Items)
		assert.Equal(t, "SAVE15", cart.PromoCode)
	})
}

func TestEngineMalformedBlob(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		blob []byte
	}{
		{"not json", []byte("{{{")},
		{"wrong shape", []byte(`"hello"`)},
		{"missing items", []byte(`{"total": 3}`)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newMemStore()
			store.blobs["s1"] = tc.blob
			e := NewEngine(store)

			cart, err := e.GetCart(ctx, "s1")
			require.NoError(t, err)
			assert.Empty(t, cart.Items)
			assert.Zero(t, cart.Total)
		})
	}

	t.Run("invalid lines are dropped and totals recomputed", func(t *testing.T) {
		store := newMemStore()
		store.blobs["s1"] = []byte(`{"items":[{"productId":"1","price":10,"quantity":2},{"productId":"","price":9,"quantity":1},{"productId":"3","price":4,"quantity":0}],"total":999}`)
		e := NewEngine(store)

		cart, err := e.GetCart(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, "1", cart.Items[0].ProductId)
		assert.InDelta(t, 20, cart.Total, 1e-9)
	})
}

func TestEngineNotifications(t *testing.T) {
	ctx := context.Background()
	n1 := &countingNotifier{}
	n2 := &countingNotifier{}
	e := NewEngine(newMemStore(), WithNotifier(n1), WithNotifier(n2))

	_, err := e.AddItem(ctx, "s1", AddItemInput{ProductId: "1", Price: 10, Quantity: 1})
	require.NoError(t, err)
	_, err = e.UpdateQuantity(ctx, "s1", "1", 3)
	require.NoError(t, err)
	_, err = e.RemoveItem(ctx, "s1", "1")
	require.NoError(t, err)
	_, err = e.Clear(ctx, "s1")
	require.NoError(t, err)

	assert.Equal(t, 4, n1.calls)
	assert.Equal(t, 4, n2.calls)

	// reads never notify
	_, err = e.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 4, n1.calls)
}
