// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

type CartItem struct {
	ProductId string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int64   `json:"quantity"`
}

type Cart struct {
	Items            []CartItem `json:"items"`
	Total            float64    `json:"total"`
	ItemCount        int64      `json:"itemCount"`
	TotalQuantity    int64      `json:"totalQuantity"`
	PromoCode        string     `json:"promoCode,omitempty"`
	DiscountFraction float64    `json:"discountFraction,omitempty"`
}

type PricingSummary struct {
	Subtotal       float64 `json:"subtotal"`
	ShippingFee    float64 `json:"shippingFee"`
	DiscountAmount float64 `json:"discountAmount"`
	GrandTotal     float64 `json:"grandTotal"`
}

type GetCartResponse struct {
	StatusCode int    `json:"code"`
	StatusMsg  string `json:"msg"`
	Cart       Cart   `json:"cart"`
}

type AddCartItemRequest struct {
	ProductId string `json:"productId"`
	Quantity  int64  `json:"quantity,default=1"`
}

type UpdateCartItemRequest struct {
	ProductId string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

type RemoveCartItemRequest struct {
	ProductId string `json:"productId"`
}

type CartActionResponse struct {
	StatusCode int    `json:"code"`
	StatusMsg  string `json:"msg"`
	Cart       Cart   `json:"cart"`
}

type ApplyPromoRequest struct {
	Code string `json:"code"`
}

type ApplyPromoResponse struct {
	StatusCode       int     `json:"code"`
	StatusMsg        string  `json:"msg"`
	Applied          bool    `json:"applied"`
	DiscountFraction float64 `json:"discountFraction"`
}

type GetPricingResponse struct {
	StatusCode int            `json:"code"`
	StatusMsg  string         `json:"msg"`
	Summary    PricingSummary `json:"summary"`
}

type CheckoutResponse struct {
	StatusCode int            `json:"code"`
	StatusMsg  string         `json:"msg"`
	Summary    PricingSummary `json:"summary"`
}

type Product struct {
	Id             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	Image          string   `json:"image"`
	Category       string   `json:"category"`
	EcoScore       int      `json:"ecoScore"`
	InStock        bool     `json:"inStock"`
	Brand          string   `json:"brand,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Materials      []string `json:"materials,omitempty"`
	Certifications []string `json:"certifications,omitempty"`
}

type ListProductsRequest struct {
	Query       string `form:"query,optional"`
	Category    string `form:"category,optional"`
	InStockOnly bool   `form:"inStock,optional"`
	MinEcoScore int    `form:"minEcoScore,optional"`
	SortBy      string `form:"sortBy,optional"`
}

type ListProductsResponse struct {
	StatusCode int       `json:"code"`
	StatusMsg  string    `json:"msg"`
	Total      int       `json:"total"`
	Products   []Product `json:"products"`
}

type GetProductRequest struct {
	Id string `path:"id"`
}

type GetProductResponse struct {
	StatusCode int     `json:"code"`
	StatusMsg  string  `json:"msg"`
	Product    Product `json:"product"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	StatusCode  int       `json:"code"`
	StatusMsg   string    `json:"msg"`
	MessageId   string    `json:"messageId"`
	Content     string    `json:"content"`
	Products    []Product `json:"products"`
	Confidence  float64   `json:"confidence"`
	Suggestions []string  `json:"suggestions,omitempty"`
}
