package main

import (
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	mw "lindengoods.dev/store-web/internal/middleware"
	"lindengoods.dev/store-web/internal/storefront"
)

// ShopHandler renders the shop home. The product grid region lazy-loads from
// /shop/products so the page shell and announcement paint immediately.
func (a *App) ShopHandler(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	sort := r.URL.Query().Get("sort")
	reverse := r.URL.Query().Get("reverse") == "1"

	grid := url.URL{Path: "/shop/products", RawQuery: r.URL.RawQuery}

	pd := buildPageData(r, "Shop", "Browse the full Linden Goods catalog.")
	pd.Shop = ShopView{
		Announcement: a.notice,
		Query:        q,
		Sort:         sort,
		Reverse:      reverse,
		GridURL:      grid.RequestURI(),
	}
	renderTemplate(w, "shop", pd)
}

// ProductGridFrag serves the product grid fragment. When the request carries a
// search, the shop URL is pushed so the query survives a reload.
func (a *App) ProductGridFrag(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	opts := storefront.ProductListOptions{
		Query:   q,
		SortKey: sortKeyFromForm(r.URL.Query().Get("sort")),
		Reverse: r.URL.Query().Get("reverse") == "1",
	}

	products, err := a.store.Products(r.Context(), opts)
	if err != nil {
		a.log.Error("product listing failed", zap.Error(err), zap.String("query", q))
		renderTemplate(w, "frag_error", FetchErrorView{
			Title:    "Could not load products",
			Message:  "The catalog is temporarily unavailable.",
			RetryURL: r.URL.RequestURI(),
			TargetID: "product-grid",
		})
		return
	}

	if mw.IsHTMX(r.Context()) && q != "" {
		push := url.URL{Path: "/shop", RawQuery: r.URL.RawQuery}
		w.Header().Set("HX-Push-Url", push.RequestURI())
	}
	renderTemplate(w, "frag_product_grid", ProductGridView{
		Products: buildProductCards(products),
		Empty:    len(products) == 0,
	})
}

// sortKeyFromForm maps the select control's values onto gateway sort keys.
// Unknown values fall back to best selling.
func sortKeyFromForm(v string) string {
	switch v {
	case "newest":
		return storefront.SortCreatedAt
	case "price":
		return storefront.SortPrice
	case "title":
		return storefront.SortTitle
	case "best-selling", "":
		return storefront.SortBestSelling
	default:
		return storefront.SortBestSelling
	}
}
