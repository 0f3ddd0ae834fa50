package mq

// CartChangedEvent is the payload published to Kafka whenever a session's
// cart mutates. Subscribers only need the key; the timestamp aids tracing.
type CartChangedEvent struct {
	SessionKey string `json:"session_key"`
	ChangedAt  int64  `json:"changed_at"`
}

// Asynq task type for abandoned-cart expiry.
const TaskCartExpire = "cart:expire"

// CartExpirePayload schedules one sweep. Fingerprint pins the cart state
// seen at scheduling time; the handler only drops the cart when it still
// matches, so an active cart survives its own stale sweeps.
type CartExpirePayload struct {
	SessionKey  string `json:"session_key"`
	Fingerprint string `json:"fingerprint"`
}
