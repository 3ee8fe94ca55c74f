package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lindengoods.dev/store-web/internal/storefront"
)

// stubGateway lets each test wire only the calls it expects.
type stubGateway struct {
	createFn func(lines []storefront.CartLineInput) (*storefront.Cart, error)
	addFn    func(cartID string, lines []storefront.CartLineInput) (*storefront.Cart, error)
	updateFn func(cartID string, lines []storefront.CartLineUpdateInput) (*storefront.Cart, error)
	removeFn func(cartID string, lineIDs []string) (*storefront.Cart, error)
	cartFn   func(id string) (*storefront.Cart, error)
}

func (s *stubGateway) CreateCart(_ context.Context, lines []storefront.CartLineInput) (*storefront.Cart, error) {
	return s.createFn(lines)
}
func (s *stubGateway) AddCartLines(_ context.Context, cartID string, lines []storefront.CartLineInput) (*storefront.Cart, error) {
	return s.addFn(cartID, lines)
}
func (s *stubGateway) UpdateCartLines(_ context.Context, cartID string, lines []storefront.CartLineUpdateInput) (*storefront.Cart, error) {
	return s.updateFn(cartID, lines)
}
func (s *stubGateway) RemoveCartLines(_ context.Context, cartID string, lineIDs []string) (*storefront.Cart, error) {
	return s.removeFn(cartID, lineIDs)
}
func (s *stubGateway) Cart(_ context.Context, id string) (*storefront.Cart, error) {
	return s.cartFn(id)
}

type memIdentity struct {
	id string
}

func (m *memIdentity) CartID() string      { return m.id }
func (m *memIdentity) SetCartID(id string) { m.id = id }
func (m *memIdentity) ClearCartID()        { m.id = "" }

func TestAddCreatesCartOnFirstAddAndPersistsID(t *testing.T) {
	created := &storefront.Cart{ID: "gid://cart/new"}
	gw := &stubGateway{
		createFn: func(lines []storefront.CartLineInput) (*storefront.Cart, error) {
			require.Len(t, lines, 1)
			assert.Equal(t, "gid://v1", lines[0].MerchandiseID)
			assert.Equal(t, 2, lines[0].Quantity)
			return created, nil
		},
	}
	ident := &memIdentity{}
	m := NewManager(gw, nil)

	got, err := m.Add(context.Background(), ident, "gid://v1", 2)
	require.NoError(t, err)
	assert.Same(t, created, got)
	assert.Equal(t, "gid://cart/new", ident.id)
}

func TestAddUsesExistingCart(t *testing.T) {
	gw := &stubGateway{
		addFn: func(cartID string, lines []storefront.CartLineInput) (*storefront.Cart, error) {
			assert.Equal(t, "gid://cart/abc", cartID)
			return &storefront.Cart{ID: cartID}, nil
		},
		createFn: func([]storefront.CartLineInput) (*storefront.Cart, error) {
			t.Fatal("must not create a cart when an id is persisted")
			return nil, nil
		},
	}
	ident := &memIdentity{id: "gid://cart/abc"}
	m := NewManager(gw, nil)

	got, err := m.Add(context.Background(), ident, "gid://v1", 1)
	require.NoError(t, err)
	assert.Equal(t, "gid://cart/abc", got.ID)
	assert.Equal(t, "gid://cart/abc", ident.id)
}

func TestAddRejectsBadInput(t *testing.T) {
	m := NewManager(&stubGateway{}, nil)
	ident := &memIdentity{}

	_, err := m.Add(context.Background(), ident, "", 1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = m.Add(context.Background(), ident, "gid://v1", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLoadClearsStaleCartID(t *testing.T) {
	gw := &stubGateway{
		cartFn: func(id string) (*storefront.Cart, error) { return nil, nil },
	}
	ident := &memIdentity{id: "gid://cart/expired"}
	m := NewManager(gw, nil)

	c, err := m.Load(context.Background(), ident)
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.Empty(t, ident.id, "stale id must be cleared so the next add starts fresh")
}

func TestLoadWithoutIDSkipsGateway(t *testing.T) {
	m := NewManager(&stubGateway{}, nil)

	c, err := m.Load(context.Background(), &memIdentity{})
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestUpdateQuantityRejectsBelowOne(t *testing.T) {
	m := NewManager(&stubGateway{}, nil)
	ident := &memIdentity{id: "gid://cart/abc"}

	_, err := m.UpdateQuantity(context.Background(), ident, "gid://line/1", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateQuantityTargetsLineID(t *testing.T) {
	gw := &stubGateway{
		updateFn: func(cartID string, lines []storefront.CartLineUpdateInput) (*storefront.Cart, error) {
			assert.Equal(t, "gid://cart/abc", cartID)
			require.Len(t, lines, 1)
			assert.Equal(t, "gid://line/1", lines[0].ID)
			assert.Equal(t, 3, lines[0].Quantity)
			return &storefront.Cart{ID: cartID}, nil
		},
	}
	m := NewManager(gw, nil)

	_, err := m.UpdateQuantity(context.Background(), &memIdentity{id: "gid://cart/abc"}, "gid://line/1", 3)
	require.NoError(t, err)
}

func TestRemoveRequiresCartAndLine(t *testing.T) {
	m := NewManager(&stubGateway{}, nil)

	_, err := m.Remove(context.Background(), &memIdentity{}, "gid://line/1")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = m.Remove(context.Background(), &memIdentity{id: "gid://cart/abc"}, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDerivedFieldsNilSafe(t *testing.T) {
	assert.Equal(t, 0, ItemCount(nil))
	assert.Equal(t, 0.0, TotalAmount(nil))
	assert.Empty(t, Items(nil))
	assert.Empty(t, CheckoutURL(nil))

	c := &storefront.Cart{
		CheckoutURL: "https://checkout/abc",
		Cost: storefront.CartCost{
			TotalAmount: storefront.Money{Amount: "59.90", CurrencyCode: "USD"},
		},
		Lines: []storefront.CartLine{
			{ID: "l1", Quantity: 2},
			{ID: "l2", Quantity: 3},
		},
	}
	assert.Equal(t, 5, ItemCount(c))
	assert.InDelta(t, 59.90, TotalAmount(c), 0.0001)
	assert.Equal(t, "https://checkout/abc", CheckoutURL(c))
}
