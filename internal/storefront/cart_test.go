package storefront

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cartBody = `{"data": {"cartCreate": {"cart": {
	"id": "gid://cart/abc", "checkoutUrl": "https://checkout/abc", "totalQuantity": 2,
	"cost": {"totalAmount": {"amount": "59.90", "currencyCode": "USD"}},
	"lines": {"edges": [
		{"node": {"id": "gid://line/1", "quantity": 2,
			"cost": {"totalAmount": {"amount": "59.90", "currencyCode": "USD"}},
			"merchandise": {"id": "gid://v1", "title": "Default Title",
				"price": {"amount": "29.95", "currencyCode": "USD"},
				"product": {"id": "gid://p1", "title": "Oak Board", "handle": "oak-board"}}}}
	]}
}, "userErrors": []}}}`

func TestCreateCartSendsNullLinesWhenEmpty(t *testing.T) {
	c, last := newStubGateway(t, http.StatusOK, cartBody)

	cart, err := c.CreateCart(context.Background(), nil)
	require.NoError(t, err)

	assert.Nil(t, last.Variables["lines"])
	assert.Equal(t, "gid://cart/abc", cart.ID)
	assert.Equal(t, "https://checkout/abc", cart.CheckoutURL)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "Oak Board", cart.Lines[0].Merchandise.Product.Title)
}

func TestCreateCartSendsSeedLines(t *testing.T) {
	c, last := newStubGateway(t, http.StatusOK, cartBody)

	_, err := c.CreateCart(context.Background(), []CartLineInput{{MerchandiseID: "gid://v1", Quantity: 2}})
	require.NoError(t, err)

	lines, ok := last.Variables["lines"].([]any)
	require.True(t, ok)
	require.Len(t, lines, 1)
	line := lines[0].(map[string]any)
	assert.Equal(t, "gid://v1", line["merchandiseId"])
	assert.EqualValues(t, 2, line["quantity"])
}

func TestMutationUserErrorsFailTheCall(t *testing.T) {
	body := `{"data": {"cartLinesAdd": {"cart": null, "userErrors": [
		{"field": ["lines", "0", "quantity"], "message": "Quantity must be positive"}
	]}}}`
	c, _ := newStubGateway(t, http.StatusOK, body)

	_, err := c.AddCartLines(context.Background(), "gid://cart/abc", []CartLineInput{{MerchandiseID: "gid://v1", Quantity: 1}})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Quantity must be positive", apiErr.Message)
}

func TestCartMissingIsNotAnError(t *testing.T) {
	c, last := newStubGateway(t, http.StatusOK, `{"data": {"cart": null}}`)

	cart, err := c.Cart(context.Background(), "gid://cart/expired")
	require.NoError(t, err)
	assert.Nil(t, cart)
	assert.Equal(t, "gid://cart/expired", last.Variables["cartId"])
}

func TestRemoveCartLinesSendsLineIDs(t *testing.T) {
	body := `{"data": {"cartLinesRemove": {"cart": {
		"id": "gid://cart/abc",
		"cost": {"totalAmount": {"amount": "0.0", "currencyCode": "USD"}},
		"lines": {"edges": []}
	}, "userErrors": []}}}`
	c, last := newStubGateway(t, http.StatusOK, body)

	cart, err := c.RemoveCartLines(context.Background(), "gid://cart/abc", []string{"gid://line/1"})
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)

	ids, ok := last.Variables["lineIds"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"gid://line/1"}, ids)
}
