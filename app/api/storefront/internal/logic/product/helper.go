package logic

import (
	"EcoSage/app/api/storefront/internal/types"
	"EcoSage/app/core/catalog"
)

func toProductView(p catalog.Product) types.Product {
	return types.Product{
		Id:             p.Id,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		Image:          p.Image,
		Category:       p.Category,
		EcoScore:       p.EcoScore,
		InStock:        p.InStock,
		Brand:          p.Brand,
		Tags:           p.Tags,
		Materials:      p.Materials,
		Certifications: p.Certifications,
	}
}

func toProductSlice(products []catalog.Product) []types.Product {
	if len(products) == 0 {
		return nil
	}

	resp := make([]types.Product, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductView(p))
	}

	return resp
}
