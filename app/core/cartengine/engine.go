package cartengine

import (
	"context"
	"fmt"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"
)

// Store is the external persistence collaborator. Load reports absence via
// ok=false; transport failures surface as errors and propagate to callers.
type Store interface {
	Load(ctx context.Context, sessionKey string) (blob []byte, ok bool, err error)
	Save(ctx context.Context, sessionKey string, blob []byte) error
}

// Notifier receives a signal after every successful cart mutation. Delivery
// is best effort; failures are logged and never fail the mutation.
type Notifier interface {
	CartChanged(ctx context.Context, sessionKey string) error
}

// Policy settles the promo-code lifecycle questions the storefront leaves
// open: whether an applied discount survives later cart mutations, and
// whether checkout resets it.
type Policy struct {
	KeepPromoOnMutate    bool
	ClearPromoOnCheckout bool
}

func DefaultPolicy() Policy {
	return Policy{KeepPromoOnMutate: true, ClearPromoOnCheckout: true}
}

// AddItemInput carries the catalog snapshot for a new cart line.
type AddItemInput struct {
	ProductId string
	Name      string
	Price     float64
	Image     string
	Quantity  int64
}

// PromoResult reports the outcome of a promo-code application.
type PromoResult struct {
	Applied          bool    `json:"applied"`
	DiscountFraction float64 `json:"discountFraction"`
}

// Engine owns the canonical cart for each session and keeps derived fields
// consistent with the item list across every mutation. It is a stateless
// computation over the store's snapshot: safe for concurrent use across
// sessions, last write wins within one.
type Engine struct {
	store     Store
	notifiers []Notifier
	promos    PromoTable
	policy    Policy
	log       logx.Logger
}

func NewEngine(store Store, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		promos: DefaultPromoCodes(),
		policy: DefaultPolicy(),
		log:    logx.WithContext(context.Background()),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type Option func(*Engine)

// WithNotifier registers an observer; may be used more than once.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) {
		if n != nil {
			e.notifiers = append(e.notifiers, n)
		}
	}
}

func WithPromoTable(t PromoTable) Option {
	return func(e *Engine) { e.promos = t }
}

func WithPolicy(p Policy) Option {
	return func(e *Engine) { e.policy = p }
}

// GetCart returns the persisted cart for the session, or an empty cart when
// nothing is stored or the stored blob fails validation. Only store
// transport failures are returned as errors.
func (e *Engine) GetCart(ctx context.Context, sessionKey string) (Cart, error) {
	blob, ok, err := e.store.Load(ctx, sessionKey)
	if err != nil {
		return EmptyCart(), fmt.Errorf("load cart: %w", err)
	}
	if !ok {
		return EmptyCart(), nil
	}

	cart, valid := decodeCart(blob)
	if !valid {
		e.log.Infof("discarding malformed cart blob for session %s", sessionKey)
	}
	return cart, nil
}

// AddItem merges quantity into an existing line for the same product, or
// appends a new line. Quantities below one are rejected without touching
// state.
func (e *Engine) AddItem(ctx context.Context, sessionKey string, in AddItemInput) (Cart, error) {
	if in.ProductId == "" || in.Quantity < 1 {
		return e.GetCart(ctx, sessionKey)
	}

	cart, err := e.GetCart(ctx, sessionKey)
	if err != nil {
		return cart, err
	}

	if i := cart.findItem(in.ProductId); i >= 0 {
		cart.Items[i].Quantity += in.Quantity
	} else {
		cart.Items = append(cart.Items, Item{
			ProductId: in.ProductId,
			Name:      in.Name,
			Price:     in.Price,
			Image:     in.Image,
			Quantity:  in.Quantity,
		})
	}

	return e.commit(ctx, sessionKey, cart)
}

// UpdateQuantity sets the line quantity to an absolute value. Zero or
// negative removes the line; an unknown product is a no-op.
func (e *Engine) UpdateQuantity(ctx context.Context, sessionKey, productId string, quantity int64) (Cart, error) {
	if quantity <= 0 {
		return e.RemoveItem(ctx, sessionKey, productId)
	}

	cart, err := e.GetCart(ctx, sessionKey)
	if err != nil {
		return cart, err
	}

	i := cart.findItem(productId)
	if i < 0 {
		return cart, nil
	}
	cart.Items[i].Quantity = quantity

	return e.commit(ctx, sessionKey, cart)
}

// RemoveItem deletes the matching line if present.
func (e *Engine) RemoveItem(ctx context.Context, sessionKey, productId string) (Cart, error) {
	cart, err := e.GetCart(ctx, sessionKey)
	if err != nil {
		return cart, err
	}

	i := cart.findItem(productId)
	if i < 0 {
		return cart, nil
	}
	cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)

	return e.commit(ctx, sessionKey, cart)
}

// Clear resets the session to an empty cart. The promo code is dropped with
// the items; Policy only preserves it across ordinary mutations.
func (e *Engine) Clear(ctx context.Context, sessionKey string) (Cart, error) {
	cart := EmptyCart()
	if err := e.persist(ctx, sessionKey, cart); err != nil {
		return cart, err
	}
	e.notify(ctx, sessionKey)
	return cart, nil
}

// ApplyPromoCode looks the code up in the configured table. On a miss the
// cart keeps whatever discount it already had and the result reports
// failure. Empty or whitespace codes never reach the table.
func (e *Engine) ApplyPromoCode(ctx context.Context, sessionKey, code string) (PromoResult, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return PromoResult{}, nil
	}

	fraction, ok := e.promos.Lookup(code)
	if !ok {
		return PromoResult{}, nil
	}

	cart, err := e.GetCart(ctx, sessionKey)
	if err != nil {
		return PromoResult{}, err
	}

	cart.PromoCode = strings.ToUpper(code)
	cart.DiscountFraction = fraction
	if err := e.persist(ctx, sessionKey, cart); err != nil {
		return PromoResult{}, err
	}
	e.notify(ctx, sessionKey)

	return PromoResult{Applied: true, DiscountFraction: fraction}, nil
}

// Checkout prices the current cart, clears it, and applies the promo
// policy. The returned summary reflects the cart as it was priced.
func (e *Engine) Checkout(ctx context.Context, sessionKey string, shipping ShippingConfig) (PricingSummary, error) {
	cart, err := e.GetCart(ctx, sessionKey)
	if err != nil {
		return PricingSummary{}, err
	}

	summary := ComputePricingSummary(cart, cart.DiscountFraction, shipping.FreeThreshold, shipping.FlatFee)

	next := EmptyCart()
	if !e.policy.ClearPromoOnCheckout {
		next.PromoCode = cart.PromoCode
		next.DiscountFraction = cart.DiscountFraction
	}
	if err := e.persist(ctx, sessionKey, next); err != nil {
		return summary, err
	}
	e.notify(ctx, sessionKey)

	return summary, nil
}

// commit recomputes derived fields, applies the promo-mutation policy,
// persists and notifies.
func (e *Engine) commit(ctx context.Context, sessionKey string, cart Cart) (Cart, error) {
	cart.recompute()
	if !e.policy.KeepPromoOnMutate {
		cart.PromoCode = ""
		cart.DiscountFraction = 0
	}
	if err := e.persist(ctx, sessionKey, cart); err != nil {
		return cart, err
	}
	e.notify(ctx, sessionKey)
	return cart, nil
}

func (e *Engine) persist(ctx context.Context, sessionKey string, cart Cart) error {
	blob, err := encodeCart(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := e.store.Save(ctx, sessionKey, blob); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (e *Engine) notify(ctx context.Context, sessionKey string) {
	for _, n := range e.notifiers {
		if err := n.CartChanged(ctx, sessionKey); err != nil {
			e.log.Errorf("cart changed notification failed: %v", err)
		}
	}
}
