// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"

	"EcoSage/app/api/storefront/internal/svc"
	"EcoSage/app/api/storefront/internal/types"
	"EcoSage/app/common/consts/errno"
	"EcoSage/app/common/util"
	"EcoSage/app/core/cartengine"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type GetPricingLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetPricingLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetPricingLogic {
	return &GetPricingLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetPricingLogic) GetPricing() (resp *types.GetPricingResponse, err error) {
	sessionKey, err := util.SessionKeyFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	cart, err := l.svcCtx.CartEngine.GetCart(l.ctx, sessionKey)
	if err != nil {
		l.Logger.Error("logic: load cart failed: ", err)
		return nil, errors.New(int(errno.CartStoreUnavailable), "cart store unavailable")
	}

	shipping := shippingConf(l.svcCtx.Config.Cart)
	summary := cartengine.ComputePricingSummary(cart, cart.DiscountFraction, shipping.FreeThreshold, shipping.FlatFee)

	resp = &types.GetPricingResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "success",
		Summary:    toPricingView(summary),
	}

	return
}
