// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	logic "EcoSage/app/api/storefront/internal/logic/cart"
	"EcoSage/app/api/storefront/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func CheckoutHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewCheckoutLogic(r.Context(), svcCtx)
		resp, err := l.Checkout()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
