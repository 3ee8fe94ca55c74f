package cart

import (
	"strconv"
	"strings"

	"lindengoods.dev/store-web/internal/storefront"
)

// Derived view fields. These are read-only projections of the gateway cart;
// none of them feed back into any request.

// ItemCount sums line quantities. A nil cart counts zero.
func ItemCount(c *storefront.Cart) int {
	if c == nil {
		return 0
	}
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// TotalAmount parses the gateway-provided total. Unparseable or missing
// totals read as zero.
func TotalAmount(c *storefront.Cart) float64 {
	if c == nil {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(c.Cost.TotalAmount.Amount), 64)
	if err != nil {
		return 0
	}
	return f
}

// Items returns the flattened line array, empty for a nil cart.
func Items(c *storefront.Cart) []storefront.CartLine {
	if c == nil {
		return nil
	}
	return c.Lines
}

// CheckoutURL is the gateway-hosted checkout location, empty for a nil cart.
func CheckoutURL(c *storefront.Cart) string {
	if c == nil {
		return ""
	}
	return c.CheckoutURL
}
