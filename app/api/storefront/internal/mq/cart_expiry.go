package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
)

// ExpiryStore is the slice of the cart store the expiry path needs.
type ExpiryStore interface {
	Load(ctx context.Context, sessionKey string) ([]byte, bool, error)
	Drop(ctx context.Context, sessionKey string) error
}

// ExpiryScheduler enqueues a delayed sweep after every cart change. It is a
// cartengine.Notifier, like the Kafka producer, so the engine stays unaware
// of asynq.
type ExpiryScheduler struct {
	client *asynq.Client
	store  ExpiryStore
	delay  time.Duration
}

func NewExpiryScheduler(client *asynq.Client, store ExpiryStore, delay time.Duration) *ExpiryScheduler {
	if client == nil || delay <= 0 {
		return nil
	}
	return &ExpiryScheduler{client: client, store: store, delay: delay}
}

func (s *ExpiryScheduler) CartChanged(ctx context.Context, sessionKey string) error {
	blob, ok, err := s.store.Load(ctx, sessionKey)
	if err != nil || !ok {
		return err
	}

	payload, err := json.Marshal(CartExpirePayload{
		SessionKey:  sessionKey,
		Fingerprint: fingerprint(blob),
	})
	if err != nil {
		return err
	}

	_, err = s.client.EnqueueContext(ctx, asynq.NewTask(TaskCartExpire, payload), asynq.ProcessIn(s.delay))
	return err
}

func fingerprint(blob []byte) string {
	h := fnv.New64a()
	_, _ = h.Write(blob)
	return fmt.Sprintf("%x", h.Sum64())
}

// NewAsynqMux registers the expiry handler.
func NewAsynqMux(store ExpiryStore) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskCartExpire, newCartExpireHandler(store))
	return mux
}

func newCartExpireHandler(store ExpiryStore) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload CartExpirePayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			logx.Errorw("unmarshal cart expire payload failed", logx.Field("err", err))
			return nil
		}

		blob, ok, err := store.Load(ctx, payload.SessionKey)
		if err != nil {
			return err
		}
		if !ok || fingerprint(blob) != payload.Fingerprint {
			// gone already, or touched since scheduling
			return nil
		}

		if err := store.Drop(ctx, payload.SessionKey); err != nil {
			return err
		}
		logx.Infow("expired abandoned cart", logx.Field("session", payload.SessionKey))
		return nil
	}
}
