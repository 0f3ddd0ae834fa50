package biz

import "time"

type CtxKey string

const (
	SESSION_KEY CtxKey = "session_key"

	SessionExpire = time.Hour * 24 * 30

	SESSIONTOKEN = "cart_session"
)
