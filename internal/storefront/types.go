package storefront

// Money is an amount/currency pair exactly as the gateway reports it. Amounts
// stay strings end to end; totals are never recomputed on this side.
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

// Image is a gateway-hosted product or collection image.
type Image struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	AltText string `json:"altText"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

// SelectedOption is a chosen option value on a variant (e.g. Size: M).
type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PriceRange spans the cheapest and most expensive variant of a product.
type PriceRange struct {
	MinVariantPrice Money `json:"minVariantPrice"`
	MaxVariantPrice Money `json:"maxVariantPrice"`
}

// ProductOption describes an option axis and its allowed values.
type ProductOption struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Variant is a purchasable variation of a product.
type Variant struct {
	ID                string           `json:"id"`
	Title             string           `json:"title"`
	AvailableForSale  bool             `json:"availableForSale"`
	QuantityAvailable int              `json:"quantityAvailable"`
	SelectedOptions   []SelectedOption `json:"selectedOptions"`
	Price             Money            `json:"price"`
	CompareAtPrice    *Money           `json:"compareAtPrice"`
	Image             *Image           `json:"image"`
}

// Product is the flattened catalog snapshot handed to the view layer. The
// gateway's connection wrappers are already unwrapped, with edge order kept.
type Product struct {
	ID                  string
	Title               string
	Handle              string
	Description         string
	DescriptionHTML     string
	Vendor              string
	ProductType         string
	Tags                []string
	AvailableForSale    bool
	PriceRange          PriceRange
	CompareAtPriceRange *PriceRange
	Images              []Image
	Variants            []Variant
	Options             []ProductOption
}

// Collection groups products under a handle. Products is populated only when
// fetched through CollectionProducts.
type Collection struct {
	ID          string
	Title       string
	Handle      string
	Description string
	Image       *Image
	Products    []Product
}

// Cart mirrors the gateway cart object. Every mutation replaces the whole
// value with the gateway's response; nothing is merged locally.
type Cart struct {
	ID            string
	CheckoutURL   string
	TotalQuantity int
	Cost          CartCost
	Lines         []CartLine
}

// CartCost is the gateway-computed cost breakdown.
type CartCost struct {
	SubtotalAmount Money  `json:"subtotalAmount"`
	TotalAmount    Money  `json:"totalAmount"`
	TotalTaxAmount *Money `json:"totalTaxAmount"`
}

// CartLine is one line item; removal and quantity updates address it by ID,
// not by merchandise id.
type CartLine struct {
	ID          string       `json:"id"`
	Quantity    int          `json:"quantity"`
	Cost        CartLineCost `json:"cost"`
	Merchandise Merchandise  `json:"merchandise"`
}

// CartLineCost carries the line total.
type CartLineCost struct {
	TotalAmount Money `json:"totalAmount"`
}

// Merchandise is the variant snapshot attached to a cart line, including a
// slice of its parent product.
type Merchandise struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	SelectedOptions []SelectedOption `json:"selectedOptions"`
	Price           Money            `json:"price"`
	Image           *Image           `json:"image"`
	Product         LineProduct      `json:"product"`
}

// LineProduct identifies the product a cart line's variant belongs to.
type LineProduct struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Handle string `json:"handle"`
	Vendor string `json:"vendor"`
}

// CartLineInput seeds cartCreate and cartLinesAdd.
type CartLineInput struct {
	MerchandiseID string `json:"merchandiseId"`
	Quantity      int    `json:"quantity"`
}

// CartLineUpdateInput targets an existing line by its line id.
type CartLineUpdateInput struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// --- wire shapes, decoded at the transport boundary only ---

// connection mirrors the gateway's relay-style pagination wrapper.
type connection[T any] struct {
	Edges    []edge[T] `json:"edges"`
	PageInfo pageInfo  `json:"pageInfo"`
}

type edge[T any] struct {
	Node T `json:"node"`
}

type pageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

// nodes flattens the wrapper preserving edge order.
func (c connection[T]) nodes() []T {
	if len(c.Edges) == 0 {
		return nil
	}
	out := make([]T, 0, len(c.Edges))
	for _, e := range c.Edges {
		out = append(out, e.Node)
	}
	return out
}

type wireProduct struct {
	ID                  string              `json:"id"`
	Title               string              `json:"title"`
	Handle              string              `json:"handle"`
	Description         string              `json:"description"`
	DescriptionHTML     string              `json:"descriptionHtml"`
	Vendor              string              `json:"vendor"`
	ProductType         string              `json:"productType"`
	Tags                []string            `json:"tags"`
	AvailableForSale    bool                `json:"availableForSale"`
	PriceRange          PriceRange          `json:"priceRange"`
	CompareAtPriceRange *PriceRange         `json:"compareAtPriceRange"`
	Images              connection[Image]   `json:"images"`
	Variants            connection[Variant] `json:"variants"`
	Options             []ProductOption     `json:"options"`
}

func (p wireProduct) flatten() Product {
	return Product{
		ID:                  p.ID,
		Title:               p.Title,
		Handle:              p.Handle,
		Description:         p.Description,
		DescriptionHTML:     p.DescriptionHTML,
		Vendor:              p.Vendor,
		ProductType:         p.ProductType,
		Tags:                p.Tags,
		AvailableForSale:    p.AvailableForSale,
		PriceRange:          p.PriceRange,
		CompareAtPriceRange: p.CompareAtPriceRange,
		Images:              p.Images.nodes(),
		Variants:            p.Variants.nodes(),
		Options:             p.Options,
	}
}

func flattenProducts(wired []wireProduct) []Product {
	if len(wired) == 0 {
		return nil
	}
	out := make([]Product, 0, len(wired))
	for _, p := range wired {
		out = append(out, p.flatten())
	}
	return out
}

type wireCollection struct {
	ID          string                  `json:"id"`
	Title       string                  `json:"title"`
	Handle      string                  `json:"handle"`
	Description string                  `json:"description"`
	Image       *Image                  `json:"image"`
	Products    connection[wireProduct] `json:"products"`
}

func (c wireCollection) flatten() Collection {
	return Collection{
		ID:          c.ID,
		Title:       c.Title,
		Handle:      c.Handle,
		Description: c.Description,
		Image:       c.Image,
		Products:    flattenProducts(c.Products.nodes()),
	}
}

type wireCart struct {
	ID            string               `json:"id"`
	CheckoutURL   string               `json:"checkoutUrl"`
	TotalQuantity int                  `json:"totalQuantity"`
	Cost          CartCost             `json:"cost"`
	Lines         connection[CartLine] `json:"lines"`
}

func (c wireCart) flatten() *Cart {
	return &Cart{
		ID:            c.ID,
		CheckoutURL:   c.CheckoutURL,
		TotalQuantity: c.TotalQuantity,
		Cost:          c.Cost,
		Lines:         c.Lines.nodes(),
	}
}

// userError is a mutation-level failure reported alongside a 200 response.
type userError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}
