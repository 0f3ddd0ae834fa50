// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"

	"EcoSage/app/api/storefront/internal/svc"
	"EcoSage/app/api/storefront/internal/types"
	"EcoSage/app/common/consts/errno"
	productmodel "EcoSage/app/dal/product"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type GetProductLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetProductLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetProductLogic {
	return &GetProductLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetProductLogic) GetProduct(req *types.GetProductRequest) (resp *types.GetProductResponse, err error) {
	if req.Id == "" {
		return nil, errors.New(int(errno.InvalidParam), "product id is required")
	}

	row, err := l.svcCtx.ProductsModel.FindOne(l.ctx, req.Id)
	switch err {
	case nil:
	case productmodel.ErrNotFound:
		return nil, errors.New(int(errno.ProductNotFound), "product not found")
	default:
		l.Logger.Error("logic: find product failed: ", err)
		return nil, errors.New(int(errno.InternalError), "query product failed")
	}

	resp = &types.GetProductResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "success",
		Product:    toProductView(row.ToCatalog()),
	}

	return
}
