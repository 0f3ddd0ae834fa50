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

type CheckoutLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCheckoutLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CheckoutLogic {
	return &CheckoutLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CheckoutLogic) Checkout() (resp *types.CheckoutResponse, err error) {
	sessionKey, err := util.SessionKeyFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	summary, err := l.svcCtx.CartEngine.Checkout(l.ctx, sessionKey, shippingConf(l.svcCtx.Config.Cart))
	if err != nil {
		l.Logger.Error("logic: checkout failed: ", err)
		return nil, errors.New(int(errno.CartStoreUnavailable), "cart store unavailable")
	}

	resp = &types.CheckoutResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "success",
		Summary:    toPricingView(summary),
	}

	return
}
