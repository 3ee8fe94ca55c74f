package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProductHandler renders the product detail page. Unknown handles get a full
// 404 page, not an error box.
func (a *App) ProductHandler(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "handle")

	p, err := a.store.ProductByHandle(r.Context(), handle)
	if err != nil {
		a.log.Error("product fetch failed", zap.Error(err), zap.String("handle", handle))
		pd := buildPageData(r, "Something went wrong", "")
		pd.Product = FetchErrorView{
			Title:    "Could not load this product",
			Message:  "The catalog is temporarily unavailable.",
			RetryURL: r.URL.RequestURI(),
		}
		renderPageStatus(w, http.StatusBadGateway, "notfound", pd)
		return
	}
	if p == nil {
		pd := buildPageData(r, "Product not found", "")
		pd.Product = FetchErrorView{
			Title:   "Product not found",
			Message: "We couldn't find a product at this address.",
		}
		renderPageStatus(w, http.StatusNotFound, "notfound", pd)
		return
	}

	pd := buildPageData(r, p.Title, p.Description)
	pd.SEO.OG.Type = "product"
	pd.Product = buildProductDetail(p)
	renderTemplate(w, "product", pd)
}

// RecommendationsFrag serves the related-products strip under the product
// page. No recommendations renders an empty strip, not an error.
func (a *App) RecommendationsFrag(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "handle")

	p, err := a.store.ProductByHandle(r.Context(), handle)
	if err == nil && p != nil {
		recs, rerr := a.store.ProductRecommendations(r.Context(), p.ID)
		if rerr == nil {
			renderTemplate(w, "frag_recommendations", ProductGridView{
				Products: buildProductCards(recs),
				Empty:    len(recs) == 0,
			})
			return
		}
		err = rerr
	}
	if err != nil {
		a.log.Error("recommendations fetch failed", zap.Error(err), zap.String("handle", handle))
	}
	// The strip is decorative; render it empty rather than surfacing a retry.
	renderTemplate(w, "frag_recommendations", ProductGridView{Empty: true})
}
