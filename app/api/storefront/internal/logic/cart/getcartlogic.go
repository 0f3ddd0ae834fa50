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

type GetCartLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetCartLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetCartLogic {
	return &GetCartLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetCartLogic) GetCart() (resp *types.GetCartResponse, err error) {
	sessionKey, err := util.SessionKeyFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	cart, err := l.svcCtx.CartEngine.GetCart(l.ctx, sessionKey)
	if err != nil {
		l.Logger.Error("logic: load cart failed: ", err)
		return nil, errors.New(int(errno.CartStoreUnavailable), "cart store unavailable")
	}

	resp = &types.GetCartResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "success",
		Cart:       toCartView(cart),
	}

	return
}
