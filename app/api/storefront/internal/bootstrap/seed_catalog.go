package bootstrap

import (
	"context"

	"EcoSage/app/api/storefront/internal/svc"
	"EcoSage/app/core/catalog"
	productmodel "EcoSage/app/dal/product"

	"github.com/zeromicro/go-zero/core/logx"
)

// SeedCatalog loads the built-in product set into an empty catalog table so
// a fresh deployment has something to sell. A non-empty table is left alone.
func SeedCatalog(sc *svc.ServiceContext) {
	ctx := context.Background()

	total, err := sc.ProductsModel.Count(ctx)
	if err != nil {
		logx.Errorw("seed catalog: count failed", logx.Field("err", err))
		return
	}
	if total > 0 {
		return
	}

	seeded := 0
	for _, p := range catalog.Seed() {
		if _, err := sc.ProductsModel.Insert(ctx, productmodel.FromCatalog(p)); err != nil {
			logx.Errorw("seed catalog: insert failed",
				logx.Field("id", p.Id), logx.Field("err", err))
			continue
		}
		seeded++
	}

	logx.Infow("seeded catalog", logx.Field("count", seeded))
}
