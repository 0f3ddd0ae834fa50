package cartengine

import "encoding/json"

// Item is one line in a cart. Price is a snapshot taken at add time and is
// never re-read from the catalog on later mutations.
type Item struct {
	ProductId string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int64   `json:"quantity"`
}

// Cart is the aggregate for one shopping session. Total, ItemCount and
// TotalQuantity are derived from Items and recomputed after every mutation,
// never set independently. Items keep insertion order and productIds are
// unique across the slice.
type Cart struct {
	Items         []Item  `json:"items"`
	Total         float64 `json:"total"`
	ItemCount     int64   `json:"itemCount"`
	TotalQuantity int64   `json:"totalQuantity"`

	PromoCode        string  `json:"promoCode,omitempty"`
	DiscountFraction float64 `json:"discountFraction,omitempty"`
}

// EmptyCart returns a cart with all derived fields at zero.
func EmptyCart() Cart {
	return Cart{Items: []Item{}}
}

func (c *Cart) recompute() {
	var total float64
	var quantity int64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
		quantity += item.Quantity
	}
	c.Total = total
	c.ItemCount = int64(len(c.Items))
	c.TotalQuantity = quantity
}

func (c *Cart) findItem(productId string) int {
	for i := range c.Items {
		if c.Items[i].ProductId == productId {
			return i
		}
	}
	return -1
}

// decodeCart turns a persisted blob back into a cart. Anything that does not
// parse as a cart with an item list counts as "no cart": the caller gets an
// empty cart and ok=false, never an error.
func decodeCart(blob []byte) (Cart, bool) {
	if len(blob) == 0 {
		return EmptyCart(), false
	}

	var cart Cart
	if err := json.Unmarshal(blob, &cart); err != nil {
		return EmptyCart(), false
	}
	if cart.Items == nil {
		return EmptyCart(), false
	}

	// drop lines a buggy writer could have left behind
	items := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductId == "" || item.Quantity < 1 {
			continue
		}
		items = append(items, item)
	}
	cart.Items = items

	cart.recompute()
	return cart, true
}

func encodeCart(cart Cart) ([]byte, error) {
	if cart.Items == nil {
		cart.Items = []Item{}
	}
	return json.Marshal(cart)
}
