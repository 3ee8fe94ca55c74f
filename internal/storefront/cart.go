package storefront

import "context"

type cartPayload struct {
	Cart       *wireCart   `json:"cart"`
	UserErrors []userError `json:"userErrors"`
}

func (p cartPayload) result() (*Cart, error) {
	if err := firstUserError(p.UserErrors); err != nil {
		return nil, err
	}
	if p.Cart == nil {
		return nil, &APIError{Message: "mutation returned no cart"}
	}
	return p.Cart.flatten(), nil
}

// CreateCart creates a new cart, optionally seeded with lines. The gateway
// issues the cart id and checkout URL.
func (c *Client) CreateCart(ctx context.Context, lines []CartLineInput) (*Cart, error) {
	vars := map[string]any{"lines": nil}
	if len(lines) > 0 {
		vars["lines"] = lines
	}
	var data struct {
		CartCreate cartPayload `json:"cartCreate"`
	}
	if err := c.request(ctx, cartCreateMutation, vars, &data); err != nil {
		return nil, err
	}
	return data.CartCreate.result()
}

// AddCartLines adds lines to an existing cart and returns the full new cart.
func (c *Client) AddCartLines(ctx context.Context, cartID string, lines []CartLineInput) (*Cart, error) {
	var data struct {
		CartLinesAdd cartPayload `json:"cartLinesAdd"`
	}
	err := c.request(ctx, cartLinesAddMutation, map[string]any{
		"cartId": cartID,
		"lines":  lines,
	}, &data)
	if err != nil {
		return nil, err
	}
	return data.CartLinesAdd.result()
}

// UpdateCartLines changes quantities on existing lines, addressed by line id.
func (c *Client) UpdateCartLines(ctx context.Context, cartID string, lines []CartLineUpdateInput) (*Cart, error) {
	var data struct {
		CartLinesUpdate cartPayload `json:"cartLinesUpdate"`
	}
	err := c.request(ctx, cartLinesUpdateMutation, map[string]any{
		"cartId": cartID,
		"lines":  lines,
	}, &data)
	if err != nil {
		return nil, err
	}
	return data.CartLinesUpdate.result()
}

// RemoveCartLines removes lines by line id and returns the full new cart.
func (c *Client) RemoveCartLines(ctx context.Context, cartID string, lineIDs []string) (*Cart, error) {
	var data struct {
		CartLinesRemove cartPayload `json:"cartLinesRemove"`
	}
	err := c.request(ctx, cartLinesRemoveMutation, map[string]any{
		"cartId":  cartID,
		"lineIds": lineIDs,
	}, &data)
	if err != nil {
		return nil, err
	}
	return data.CartLinesRemove.result()
}

// Cart fetches a cart by id. A missing or expired cart returns nil, nil; the
// gateway owns cart expiry.
func (c *Client) Cart(ctx context.Context, id string) (*Cart, error) {
	var data struct {
		Cart *wireCart `json:"cart"`
	}
	err := c.request(ctx, cartQuery, map[string]any{
		"cartId": id,
	}, &data)
	if err != nil {
		return nil, err
	}
	if data.Cart == nil {
		return nil, nil
	}
	return data.Cart.flatten(), nil
}
