package mq

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExpiryStore struct {
	blobs map[string][]byte
	drops []string
}

func newFakeExpiryStore() *fakeExpiryStore {
	return &fakeExpiryStore{blobs: map[string][]byte{}}
}

func (s *fakeExpiryStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	blob, ok := s.blobs[key]
	return blob, ok, nil
}

func (s *fakeExpiryStore) Drop(_ context.Context, key string) error {
	s.drops = append(s.drops, key)
	delete(s.blobs, key)
	return nil
}

func expireTask(t *testing.T, sessionKey, fp string) *asynq.Task {
	t.Helper()
	payload, err := json.Marshal(CartExpirePayload{SessionKey: sessionKey, Fingerprint: fp})
	require.NoError(t, err)
	return asynq.NewTask(TaskCartExpire, payload)
}

func TestFingerprint(t *testing.T) {
	a := fingerprint([]byte(`{"items":[]}`))
	b := fingerprint([]byte(`{"items":[]}`))
	c := fingerprint([]byte(`{"items":[{"productId":"1"}]}`))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEmpty(t, fingerprint(nil))
}

func TestCartExpireHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("drops an untouched cart", func(t *testing.T) {
		store := newFakeExpiryStore()
		blob := []byte(`{"items":[{"productId":"1","quantity":2}]}`)
		store.blobs["s1"] = blob

		handler := newCartExpireHandler(store)
		err := handler(ctx, expireTask(t, "s1", fingerprint(blob)))
		require.NoError(t, err)
		assert.Equal(t, []string{"s1"}, store.drops)
	})

	t.Run("spares a cart that changed since scheduling", func(t *testing.T) {
		store := newFakeExpiryStore()
		stale := []byte(`{"items":[{"productId":"1","quantity":2}]}`)
		store.blobs["s1"] = []byte(`{"items":[{"productId":"1","quantity":5}]}`)

		handler := newCartExpireHandler(store)
		err := handler(ctx, expireTask(t, "s1", fingerprint(stale)))
		require.NoError(t, err)
		assert.Empty(t, store.drops)
	})

	t.Run("missing cart is not an error", func(t *testing.T) {
		store := newFakeExpiryStore()
		handler := newCartExpireHandler(store)
		err := handler(ctx, expireTask(t, "gone", "deadbeef"))
		require.NoError(t, err)
		assert.Empty(t, store.drops)
	})

	t.Run("garbage payload is swallowed", func(t *testing.T) {
		store := newFakeExpiryStore()
		handler := newCartExpireHandler(store)
		err := handler(ctx, asynq.NewTask(TaskCartExpire, []byte("{{")))
		require.NoError(t, err)
		assert.Empty(t, store.drops)
	})
}
