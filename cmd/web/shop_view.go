package main

import (
	"html/template"

	"lindengoods.dev/store-web/internal/content"
	"lindengoods.dev/store-web/internal/format"
	"lindengoods.dev/store-web/internal/storefront"
)

const cardTitleMax = 50

// ShopView is the shop home payload: the grid itself loads lazily.
type ShopView struct {
	Announcement *content.Announcement
	Query        string
	Sort         string
	Reverse      bool
	// GridURL is the fragment endpoint with the active search baked in.
	GridURL string
}

// ProductCardView renders one product tile.
type ProductCardView struct {
	Title         string
	Handle        string
	URL           string
	ImageURL      string
	ImageAlt      string
	Price         string
	HasDiscount   bool
	DiscountLabel string
	VariantID     string
	Available     bool
}

// ProductGridView is the product listing fragment payload.
type ProductGridView struct {
	Products []ProductCardView
	Empty    bool
}

func buildProductCard(p storefront.Product) ProductCardView {
	v := ProductCardView{
		Title:  format.Truncate(p.Title, cardTitleMax),
		Handle: p.Handle,
		URL:    "/shop/products/" + p.Handle,
		Price:  format.Price(p.PriceRange.MinVariantPrice.Amount, p.PriceRange.MinVariantPrice.CurrencyCode),
	}
	if len(p.Images) > 0 {
		v.ImageURL = p.Images[0].URL
		v.ImageAlt = p.Images[0].AltText
		if v.ImageAlt == "" {
			v.ImageAlt = p.Title
		}
	}
	if len(p.Variants) > 0 {
		v.VariantID = p.Variants[0].ID
		v.Available = p.Variants[0].AvailableForSale
	}
	// Discount badge only when the compare-at price actually exceeds the price.
	if p.CompareAtPriceRange != nil {
		pct := format.DiscountPercent(
			p.CompareAtPriceRange.MinVariantPrice.Amount,
			p.PriceRange.MinVariantPrice.Amount,
		)
		if pct > 0 {
			v.HasDiscount = true
			v.DiscountLabel = format.Percent(pct) + " OFF"
		}
	}
	return v
}

func buildProductCards(ps []storefront.Product) []ProductCardView {
	out := make([]ProductCardView, 0, len(ps))
	for _, p := range ps {
		out = append(out, buildProductCard(p))
	}
	return out
}

// VariantView renders one selectable variant on the product page.
type VariantView struct {
	ID        string
	Title     string
	Price     string
	Available bool
}

// ProductDetailView is the product page payload.
type ProductDetailView struct {
	Title         string
	Handle        string
	Vendor        string
	Description   template.HTML
	Images        []storefront.Image
	Price         string
	CompareAt     string
	HasDiscount   bool
	DiscountLabel string
	Variants      []VariantView
	Options       []storefront.ProductOption
	ProductID     string
	Available     bool
	AddVariantID  string
}

func buildProductDetail(p *storefront.Product) ProductDetailView {
	v := ProductDetailView{
		Title:       p.Title,
		Handle:      p.Handle,
		Vendor:      p.Vendor,
		Description: content.SanitizeHTML(p.DescriptionHTML),
		Images:      p.Images,
		Price:       format.Price(p.PriceRange.MinVariantPrice.Amount, p.PriceRange.MinVariantPrice.CurrencyCode),
		Options:     p.Options,
		ProductID:   p.ID,
	}
	for _, vr := range p.Variants {
		v.Variants = append(v.Variants, VariantView{
			ID:        vr.ID,
			Title:     vr.Title,
			Price:     format.Price(vr.Price.Amount, vr.Price.CurrencyCode),
			Available: vr.AvailableForSale,
		})
	}
	if len(p.Variants) > 0 {
		v.AddVariantID = p.Variants[0].ID
		v.Available = p.Variants[0].AvailableForSale
	}
	if p.CompareAtPriceRange != nil {
		pct := format.DiscountPercent(
			p.CompareAtPriceRange.MinVariantPrice.Amount,
			p.PriceRange.MinVariantPrice.Amount,
		)
		if pct > 0 {
			v.HasDiscount = true
			v.DiscountLabel = format.Percent(pct) + " OFF"
			v.CompareAt = format.Price(
				p.CompareAtPriceRange.MinVariantPrice.Amount,
				p.CompareAtPriceRange.MinVariantPrice.CurrencyCode,
			)
		}
	}
	return v
}

// CollectionCardView renders one collection tile.
type CollectionCardView struct {
	Title       string
	URL         string
	Description string
	ImageURL    string
	ImageAlt    string
}

// CollectionsView is the collections index payload.
type CollectionsView struct {
	Collections []CollectionCardView
	Empty       bool
	Error       string
}

func buildCollectionCards(cols []storefront.Collection) []CollectionCardView {
	out := make([]CollectionCardView, 0, len(cols))
	for _, c := range cols {
		v := CollectionCardView{
			Title:       c.Title,
			URL:         "/shop/collections/" + c.Handle,
			Description: c.Description,
		}
		if c.Image != nil {
			v.ImageURL = c.Image.URL
			v.ImageAlt = c.Image.AltText
			if v.ImageAlt == "" {
				v.ImageAlt = c.Title
			}
		}
		out = append(out, v)
	}
	return out
}

// CollectionDetailView heads the collection page; the product list arrives in
// its own fragment so the slug-derived title shows immediately.
type CollectionDetailView struct {
	Title  string
	Handle string
}

// CollectionProductsView is the collection product-grid fragment payload.
type CollectionProductsView struct {
	Title       string
	Description string
	Products    []ProductCardView
	Empty       bool
}
