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
	productmodel "EcoSage/app/dal/product"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type AddCartItemLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAddCartItemLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AddCartItemLogic {
	return &AddCartItemLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AddCartItemLogic) AddCartItem(req *types.AddCartItemRequest) (resp *types.CartActionResponse, err error) {
	sessionKey, err := util.SessionKeyFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	if req.ProductId == "" {
		return nil, errors.New(int(errno.InvalidParam), "productId is required")
	}
	if req.Quantity < 1 {
		return nil, errors.New(int(errno.InvalidParam), "quantity must be at least 1")
	}

	row, err := l.svcCtx.ProductsModel.FindOne(l.ctx, req.ProductId)
	switch err {
	case nil:
	case productmodel.ErrNotFound:
		return nil, errors.New(int(errno.ProductNotFound), "product not found")
	default:
		l.Logger.Error("logic: find product failed: ", err)
		return nil, errors.New(int(errno.InternalError), "query product failed")
	}

	product := row.ToCatalog()
	cart, err := l.svcCtx.CartEngine.AddItem(l.ctx, sessionKey, cartengine.AddItemInput{
		ProductId: product.Id,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  req.Quantity,
	})
	if err != nil {
		l.Logger.Error("logic: add cart item failed: ", err)
		return nil, errors.New(int(errno.CartStoreUnavailable), "cart store unavailable")
	}

	resp = &types.CartActionResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "success",
		Cart:       toCartView(cart),
	}

	return
}
