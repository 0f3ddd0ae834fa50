// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"

	"EcoSage/app/api/storefront/internal/svc"
	"EcoSage/app/api/storefront/internal/types"
	"EcoSage/app/common/consts/errno"
	"EcoSage/app/core/catalog"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type ListProductsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListProductsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListProductsLogic {
	return &ListProductsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListProductsLogic) ListProducts(req *types.ListProductsRequest) (resp *types.ListProductsResponse, err error) {
	rows, err := l.svcCtx.ProductsModel.ListAll(l.ctx)
	if err != nil {
		l.Logger.Error("logic: list products failed: ", err)
		return nil, errors.New(int(errno.CatalogUnavailable), "catalog unavailable")
	}

	products := make([]catalog.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.ToCatalog())
	}

	products = catalog.ByCategory(req.Category, products)
	if req.Query != "" {
		products = catalog.Search(req.Query, products)
	}

	opts := catalog.FilterOptions{}
	if req.InStockOnly {
		inStock := true
		opts.InStock = &inStock
	}
	if req.MinEcoScore > 0 {
		min := req.MinEcoScore
		opts.MinEcoScore = &min
	}
	if opts.InStock != nil || opts.MinEcoScore != nil {
		products = catalog.Filter(products, opts)
	}

	if req.SortBy != "" {
		products = catalog.SortBy(products, req.SortBy)
	}

	resp = &types.ListProductsResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "success",
		Total:      len(products),
		Products:   toProductSlice(products),
	}

	return
}
