package util

import (
	"context"
	"net/http"

	"EcoSage/app/common/consts/biz"
	"EcoSage/app/common/consts/errno"

	"github.com/zeromicro/x/errors"
)

func SessionKeyFromCtx(ctx context.Context) (string, error) {
	if ctx == nil {
		return "", errors.New(int(errno.SessionEmpty), "missing context")
	}

	switch val := ctx.Value(biz.SESSION_KEY).(type) {
	case string:
		if val != "" {
			return val, nil
		}
	}

	return "", errors.New(int(errno.SessionEmpty), "no session")
}

func InjectSessionKey2Ctx(r *http.Request, sessionKey string) {
	ctx := context.WithValue(r.Context(), biz.SESSION_KEY, sessionKey)
	*r = *r.WithContext(ctx)
}
