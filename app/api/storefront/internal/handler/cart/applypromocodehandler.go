// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	logic "EcoSage/app/api/storefront/internal/logic/cart"
	"EcoSage/app/api/storefront/internal/svc"
	"EcoSage/app/api/storefront/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func ApplyPromoCodeHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ApplyPromoRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewApplyPromoCodeLogic(r.Context(), svcCtx)
		resp, err := l.ApplyPromoCode(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
