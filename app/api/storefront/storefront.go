// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"net/http"

	"EcoSage/app/api/storefront/internal/bootstrap"
	"EcoSage/app/api/storefront/internal/config"
	"EcoSage/app/api/storefront/internal/handler"
	"EcoSage/app/api/storefront/internal/svc"
	"EcoSage/app/common/consts/errno"
	"EcoSage/app/common/response"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/x/errors"
)

var configFile = flag.String("f", "etc/storefront-api.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	httpx.SetErrorHandlerCtx(func(_ context.Context, err error) (int, any) {
		var cm *errors.CodeMsg
		if stderrors.As(err, &cm) {
			return http.StatusOK, response.NewResponse(cm.Code, cm.Msg)
		}
		return http.StatusInternalServerError, response.NewResponse(errno.InternalError, err.Error())
	})

	ctx := svc.NewServiceContext(c)
	handler.RegisterHandlers(server, ctx)

	bootstrap.SeedCatalog(ctx)
	stopAsynq := bootstrap.StartAsynq(ctx)
	defer stopAsynq()

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
