// Package cart holds the session-scoped cart state machine. The gateway owns
// the cart object; this side keeps only the persisted cart identity and
// replaces its in-memory view wholesale after every mutation.
package cart

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"lindengoods.dev/store-web/internal/storefront"
)

// Gateway is the slice of the storefront API the cart state machine calls.
type Gateway interface {
	CreateCart(ctx context.Context, lines []storefront.CartLineInput) (*storefront.Cart, error)
	AddCartLines(ctx context.Context, cartID string, lines []storefront.CartLineInput) (*storefront.Cart, error)
	UpdateCartLines(ctx context.Context, cartID string, lines []storefront.CartLineUpdateInput) (*storefront.Cart, error)
	RemoveCartLines(ctx context.Context, cartID string, lineIDs []string) (*storefront.Cart, error)
	Cart(ctx context.Context, id string) (*storefront.Cart, error)
}

// Identity abstracts where the cart id is persisted between requests. It is
// the only durable state on this side of the gateway.
type Identity interface {
	CartID() string
	SetCartID(id string)
	ClearCartID()
}

// ErrInvalidInput indicates the caller supplied an empty id or a quantity
// below one.
var ErrInvalidInput = errors.New("cart: invalid input")

// Manager owns cart mutations. It is constructed once at the composition root
// with its gateway injected; there is no ambient singleton.
type Manager struct {
	gw  Gateway
	log *zap.Logger
}

// NewManager wires the gateway dependency.
func NewManager(gw Gateway, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{gw: gw, log: log}
}

// Load fetches the persisted cart, if any. A cart id the gateway no longer
// knows is cleared so the next add starts a fresh cart.
func (m *Manager) Load(ctx context.Context, ident Identity) (*storefront.Cart, error) {
	id := strings.TrimSpace(ident.CartID())
	if id == "" {
		return nil, nil
	}
	c, err := m.gw.Cart(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		m.log.Info("persisted cart missing at gateway, clearing id", zap.String("cart_id", id))
		ident.ClearCartID()
		return nil, nil
	}
	return c, nil
}

// Add puts qty of the variant in the cart. With no persisted id it creates a
// cart seeded with the line and persists the gateway-issued id; otherwise it
// adds to the existing cart. The returned cart replaces any prior view.
func (m *Manager) Add(ctx context.Context, ident Identity, variantID string, qty int) (*storefront.Cart, error) {
	variantID = strings.TrimSpace(variantID)
	if variantID == "" || qty < 1 {
		return nil, ErrInvalidInput
	}
	lines := []storefront.CartLineInput{{MerchandiseID: variantID, Quantity: qty}}

	if id := strings.TrimSpace(ident.CartID()); id != "" {
		return m.gw.AddCartLines(ctx, id, lines)
	}

	c, err := m.gw.CreateCart(ctx, lines)
	if err != nil {
		return nil, err
	}
	ident.SetCartID(c.ID)
	m.log.Info("created cart", zap.String("cart_id", c.ID))
	return c, nil
}

// UpdateQuantity sets a line's quantity. Quantities below one are rejected;
// removal goes through Remove. The decrement control in the UI is disabled at
// quantity one, so this path is never reached from rendered markup.
func (m *Manager) UpdateQuantity(ctx context.Context, ident Identity, lineID string, qty int) (*storefront.Cart, error) {
	lineID = strings.TrimSpace(lineID)
	id := strings.TrimSpace(ident.CartID())
	if lineID == "" || id == "" || qty < 1 {
		return nil, ErrInvalidInput
	}
	return m.gw.UpdateCartLines(ctx, id, []storefront.CartLineUpdateInput{{ID: lineID, Quantity: qty}})
}

// Remove drops a line by its line id, not its merchandise id.
func (m *Manager) Remove(ctx context.Context, ident Identity, lineID string) (*storefront.Cart, error) {
	lineID = strings.TrimSpace(lineID)
	id := strings.TrimSpace(ident.CartID())
	if lineID == "" || id == "" {
		return nil, ErrInvalidInput
	}
	return m.gw.RemoveCartLines(ctx, id, []string{lineID})
}
