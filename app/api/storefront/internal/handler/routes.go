// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	assistant "EcoSage/app/api/storefront/internal/handler/assistant"
	cart "EcoSage/app/api/storefront/internal/handler/cart"
	product "EcoSage/app/api/storefront/internal/handler/product"
	"EcoSage/app/api/storefront/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.SessionMiddleware},
			[]rest.Route{
				{
					Method:  http.MethodGet,
					Path:    "/cart",
					Handler: cart.GetCartHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/cart/add",
					Handler: cart.AddCartItemHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/cart/update",
					Handler: cart.UpdateCartItemHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/cart/remove",
					Handler: cart.RemoveCartItemHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/cart/clear",
					Handler: cart.ClearCartHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/cart/promo",
					Handler: cart.ApplyPromoCodeHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/cart/pricing",
					Handler: cart.GetPricingHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/cart/checkout",
					Handler: cart.CheckoutHandler(serverCtx),
				},
			}...,
		),
		rest.WithPrefix("/api"),
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/products",
				Handler: product.ListProductsHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/products/:id",
				Handler: product.GetProductHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api"),
	)

	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.SessionMiddleware},
			[]rest.Route{
				{
					Method:  http.MethodPost,
					Path:    "/assistant/chat",
					Handler: assistant.ChatHandler(serverCtx),
				},
			}...,
		),
		rest.WithPrefix("/api"),
	)
}
