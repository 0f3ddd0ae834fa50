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

type UpdateCartItemLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUpdateCartItemLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UpdateCartItemLogic {
	return &UpdateCartItemLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UpdateCartItemLogic) UpdateCartItem(req *types.UpdateCartItemRequest) (resp *types.CartActionResponse, err error) {
	sessionKey, err := util.SessionKeyFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	if req.ProductId == "" {
		return nil, errors.New(int(errno.InvalidParam), "productId is required")
	}

	cart, err := l.svcCtx.CartEngine.UpdateQuantity(l.ctx, sessionKey, req.ProductId, req.Quantity)
	if err != nil {
		l.Logger.Error("logic: update cart item failed: ", err)
		return nil, errors.New(int(errno.CartStoreUnavailable), "cart store unavailable")
	}

	resp = &types.CartActionResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "success",
		Cart:       toCartView(cart),
	}

	return
}
