// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"

	"EcoSage/app/api/storefront/internal/svc"
	"EcoSage/app/api/storefront/internal/types"
	"EcoSage/app/common/consts/errno"
	"EcoSage/app/common/util"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type ApplyPromoCodeLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewApplyPromoCodeLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ApplyPromoCodeLogic {
	return &ApplyPromoCodeLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ApplyPromoCodeLogic) ApplyPromoCode(req *types.ApplyPromoRequest) (resp *types.ApplyPromoResponse, err error) {
	sessionKey, err := util.SessionKeyFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	result, err := l.svcCtx.CartEngine.ApplyPromoCode(l.ctx, sessionKey, req.Code)
	if err != nil {
		l.Logger.Error("logic: apply promo code failed: ", err)
		return nil, errors.New(int(errno.CartStoreUnavailable), "cart store unavailable")
	}

	if !result.Applied {
		resp = &types.ApplyPromoResponse{
			StatusCode: errno.PromoCodeInvalid,
			StatusMsg:  "invalid promo code",
		}
		return
	}

	resp = &types.ApplyPromoResponse{
		StatusCode:       errno.StatusOK,
		StatusMsg:        "success",
		Applied:          true,
		DiscountFraction: result.DiscountFraction,
	}

	return
}
