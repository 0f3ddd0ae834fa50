package util

import (
	"net/http"
	"time"

	"EcoSage/app/common/consts/biz"
)

// SetSessionCookie writes the signed session token cookie.
func SetSessionCookie(w http.ResponseWriter, token string) {
	if token == "" {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     biz.SESSIONTOKEN,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(biz.SessionExpire),
		MaxAge:   int(biz.SessionExpire.Seconds()),
	})
}

// SessionTokenFromRequest reads the session token from cookie or header.
func SessionTokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(biz.SESSIONTOKEN); err == nil {
		return cookie.Value
	}
	return r.Header.Get(biz.SESSIONTOKEN)
}
