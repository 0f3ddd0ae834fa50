package logic

import (
	"EcoSage/app/api/storefront/internal/config"
	"EcoSage/app/api/storefront/internal/types"
	"EcoSage/app/core/cartengine"
)

func toCartView(cart cartengine.Cart) types.Cart {
	items := make([]types.CartItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, types.CartItem{
			ProductId: it.ProductId,
			Name:      it.Name,
			Price:     it.Price,
			Image:     it.Image,
			Quantity:  it.Quantity,
		})
	}

	return types.Cart{
		Items:            items,
		Total:            cart.Total,
		ItemCount:        cart.ItemCount,
		TotalQuantity:    cart.TotalQuantity,
		PromoCode:        cart.PromoCode,
		DiscountFraction: cart.DiscountFraction,
	}
}

func toPricingView(s cartengine.PricingSummary) types.PricingSummary {
	return types.PricingSummary{
		Subtotal:       s.Subtotal,
		ShippingFee:    s.ShippingFee,
		DiscountAmount: s.DiscountAmount,
		GrandTotal:     s.GrandTotal,
	}
}

func shippingConf(c config.CartConf) cartengine.ShippingConfig {
	return cartengine.ShippingConfig{
		FreeThreshold: c.FreeShippingThreshold,
		FlatFee:       c.FlatShippingFee,
	}
}
