package main

import (
	"strconv"
	"strings"

	"lindengoods.dev/store-web/internal/cart"
	"lindengoods.dev/store-web/internal/format"
	"lindengoods.dev/store-web/internal/storefront"
)

const badgeCap = 99

// CartLineView renders one line in the drawer.
type CartLineView struct {
	ID           string
	Title        string
	Options      string
	ProductURL   string
	ImageURL     string
	ImageAlt     string
	Quantity     int
	Price        string
	LineTotal    string
	CanDecrement bool
}

// CartView is the drawer fragment payload. Error carries a mutation failure
// message rendered above the last known good cart state.
type CartView struct {
	Open        bool
	Count       int
	CountLabel  string
	Items       []CartLineView
	Subtotal    string
	CheckoutURL string
	Error       string
	Empty       bool
}

func buildCartView(c *storefront.Cart, open bool) CartView {
	v := CartView{
		Open:        open,
		Count:       cart.ItemCount(c),
		CheckoutURL: cart.CheckoutURL(c),
	}
	v.CountLabel = badgeLabel(v.Count)
	for _, l := range cart.Items(c) {
		v.Items = append(v.Items, buildCartLineView(l))
	}
	v.Empty = len(v.Items) == 0
	if c != nil {
		v.Subtotal = format.Price(c.Cost.TotalAmount.Amount, c.Cost.TotalAmount.CurrencyCode)
	}
	return v
}

func buildCartLineView(l storefront.CartLine) CartLineView {
	m := l.Merchandise
	v := CartLineView{
		ID:           l.ID,
		Title:        m.Product.Title,
		Quantity:     l.Quantity,
		Price:        format.Price(m.Price.Amount, m.Price.CurrencyCode),
		LineTotal:    format.Price(l.Cost.TotalAmount.Amount, l.Cost.TotalAmount.CurrencyCode),
		CanDecrement: l.Quantity > 1,
	}
	if m.Product.Handle != "" {
		v.ProductURL = "/shop/products/" + m.Product.Handle
	}
	// "Default Title" is the gateway's placeholder for single-variant products.
	var opts []string
	for _, o := range m.SelectedOptions {
		if o.Value == "Default Title" {
			continue
		}
		opts = append(opts, o.Value)
	}
	v.Options = strings.Join(opts, " / ")
	if m.Image != nil {
		v.ImageURL = m.Image.URL
		v.ImageAlt = m.Image.AltText
		if v.ImageAlt == "" {
			v.ImageAlt = v.Title
		}
	}
	return v
}

// BadgeView is the header count bubble payload.
type BadgeView struct {
	Count int
	Label string
}

func badgeLabel(n int) string {
	if n > badgeCap {
		return strconv.Itoa(badgeCap) + "+"
	}
	return strconv.Itoa(n)
}
