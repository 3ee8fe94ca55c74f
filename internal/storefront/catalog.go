package storefront

import (
	"context"
	"strings"
)

// Sort keys accepted by the product listing queries.
const (
	SortBestSelling = "BEST_SELLING"
	SortCreatedAt   = "CREATED_AT"
	SortPrice       = "PRICE"
	SortTitle       = "TITLE"
)

const (
	defaultProductCount    = 20
	defaultCollectionCount = 50
)

// ProductListOptions control the product listing query. Zero values take the
// defaults {20, "", BEST_SELLING, false}.
type ProductListOptions struct {
	First   int
	Query   string
	SortKey string
	Reverse bool
}

func (o ProductListOptions) withDefaults() ProductListOptions {
	if o.First <= 0 {
		o.First = defaultProductCount
	}
	if strings.TrimSpace(o.SortKey) == "" {
		o.SortKey = SortBestSelling
	}
	return o
}

// Products returns the product listing flattened in the gateway's edge order.
func (c *Client) Products(ctx context.Context, opts ProductListOptions) ([]Product, error) {
	opts = opts.withDefaults()
	var data struct {
		Products connection[wireProduct] `json:"products"`
	}
	err := c.request(ctx, productsQuery, map[string]any{
		"first":   opts.First,
		"query":   opts.Query,
		"sortKey": opts.SortKey,
		"reverse": opts.Reverse,
	}, &data)
	if err != nil {
		return nil, err
	}
	return flattenProducts(data.Products.nodes()), nil
}

// ProductByHandle returns nil, nil when no product owns the handle; absence is
// not an error at this layer.
func (c *Client) ProductByHandle(ctx context.Context, handle string) (*Product, error) {
	var data struct {
		Product *wireProduct `json:"product"`
	}
	err := c.request(ctx, productByHandleQuery, map[string]any{
		"handle": handle,
	}, &data)
	if err != nil {
		return nil, err
	}
	if data.Product == nil {
		return nil, nil
	}
	p := data.Product.flatten()
	return &p, nil
}

// ProductRecommendations is empty, not an error, when the gateway has none.
func (c *Client) ProductRecommendations(ctx context.Context, productID string) ([]Product, error) {
	var data struct {
		ProductRecommendations []wireProduct `json:"productRecommendations"`
	}
	err := c.request(ctx, productRecommendationsQuery, map[string]any{
		"productId": productID,
	}, &data)
	if err != nil {
		return nil, err
	}
	return flattenProducts(data.ProductRecommendations), nil
}

// Collections lists collections; first defaults to 50.
func (c *Client) Collections(ctx context.Context, first int) ([]Collection, error) {
	if first <= 0 {
		first = defaultCollectionCount
	}
	var data struct {
		Collections connection[wireCollection] `json:"collections"`
	}
	err := c.request(ctx, collectionsQuery, map[string]any{
		"first": first,
	}, &data)
	if err != nil {
		return nil, err
	}
	wired := data.Collections.nodes()
	out := make([]Collection, 0, len(wired))
	for _, col := range wired {
		out = append(out, col.flatten())
	}
	return out, nil
}

// CollectionProductsOptions control the in-collection product listing.
type CollectionProductsOptions struct {
	First   int
	SortKey string
	Reverse bool
}

func (o CollectionProductsOptions) withDefaults() CollectionProductsOptions {
	if o.First <= 0 {
		o.First = defaultCollectionCount
	}
	if strings.TrimSpace(o.SortKey) == "" {
		o.SortKey = SortBestSelling
	}
	return o
}

// CollectionProducts fetches a collection with its products inlined. Returns
// nil, nil when the collection does not exist.
func (c *Client) CollectionProducts(ctx context.Context, handle string, opts CollectionProductsOptions) (*Collection, error) {
	opts = opts.withDefaults()
	var data struct {
		Collection *wireCollection `json:"collection"`
	}
	err := c.request(ctx, collectionProductsQuery, map[string]any{
		"handle":  handle,
		"first":   opts.First,
		"sortKey": opts.SortKey,
		"reverse": opts.Reverse,
	}, &data)
	if err != nil {
		return nil, err
	}
	if data.Collection == nil {
		return nil, nil
	}
	col := data.Collection.flatten()
	return &col, nil
}
