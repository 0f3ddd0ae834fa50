package middleware

import (
	"errors"
	"net/http"
	"time"

	"EcoSage/app/common/consts/biz"
	"EcoSage/app/common/snowflake"
	"EcoSage/app/common/util"

	"github.com/golang-jwt/jwt/v4"
)

// SessionMiddleware identifies the shopping session behind every request.
// A missing or invalid token is not an error: a fresh session key is minted
// and set as a cookie, so anonymous visitors get a cart on first contact.
type SessionMiddleware struct {
	secret string
}

func NewSessionMiddleware(secret string) *SessionMiddleware {
	return &SessionMiddleware{secret: secret}
}

type sessionClaims struct {
	SessionKey string `json:"sid"`
	jwt.RegisteredClaims
}

func (m *SessionMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionKey := ""
		if token := util.SessionTokenFromRequest(r); token != "" {
			if claims, err := m.parseToken(token); err == nil {
				sessionKey = claims.SessionKey
			}
		}

		if sessionKey == "" {
			sessionKey = snowflake.NextString()
			if signed, err := m.signToken(sessionKey); err == nil {
				util.SetSessionCookie(w, signed)
			}
		}

		util.InjectSessionKey2Ctx(r, sessionKey)
		next(w, r)
	}
}

func (m *SessionMiddleware) signToken(sessionKey string) (string, error) {
	if m.secret == "" {
		return "", errors.New("session secret is empty")
	}

	now := time.Now()
	claims := sessionClaims{
		SessionKey: sessionKey,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(biz.SessionExpire)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

func (m *SessionMiddleware) parseToken(tokenStr string) (*sessionClaims, error) {
	if m.secret == "" {
		return nil, errors.New("session secret is empty")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(m.secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.SessionKey == "" {
		return nil, errors.New("invalid session claims")
	}

	return claims, nil
}
