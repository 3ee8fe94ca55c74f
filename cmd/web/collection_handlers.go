package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"lindengoods.dev/store-web/internal/format"
	"lindengoods.dev/store-web/internal/storefront"
)

// CollectionsHandler renders the collections index. The list is fetched
// inline: it is the whole page, there is nothing to paint around it.
func (a *App) CollectionsHandler(w http.ResponseWriter, r *http.Request) {
	pd := buildPageData(r, "Collections", "Shop Linden Goods by collection.")

	cols, err := a.store.Collections(r.Context(), 0)
	if err != nil {
		a.log.Error("collections fetch failed", zap.Error(err))
		pd.Collections = CollectionsView{Error: "The catalog is temporarily unavailable."}
		renderTemplate(w, "collections", pd)
		return
	}
	pd.Collections = CollectionsView{
		Collections: buildCollectionCards(cols),
		Empty:       len(cols) == 0,
	}
	renderTemplate(w, "collections", pd)
}

// CollectionHandler renders the collection page shell. The heading starts as
// the slug-derived title and the product list streams in as a fragment.
func (a *App) CollectionHandler(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "handle")
	title := format.TitleFromHandle(handle)

	pd := buildPageData(r, title, "")
	pd.Collection = CollectionDetailView{
		Title:  title,
		Handle: handle,
	}
	renderTemplate(w, "collection", pd)
}

// CollectionProductsFrag serves the in-collection product grid fragment.
func (a *App) CollectionProductsFrag(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "handle")

	col, err := a.store.CollectionProducts(r.Context(), handle, storefront.CollectionProductsOptions{})
	if err != nil {
		a.log.Error("collection products fetch failed", zap.Error(err), zap.String("handle", handle))
		renderTemplate(w, "frag_error", FetchErrorView{
			Title:    "Could not load this collection",
			Message:  "The catalog is temporarily unavailable.",
			RetryURL: r.URL.RequestURI(),
			TargetID: "collection-products",
		})
		return
	}
	if col == nil {
		renderTemplate(w, "frag_error", FetchErrorView{
			Title:   "Collection not found",
			Message: "We couldn't find a collection at this address.",
		})
		return
	}

	renderTemplate(w, "frag_collection_products", CollectionProductsView{
		Title:       col.Title,
		Description: col.Description,
		Products:    buildProductCards(col.Products),
		Empty:       len(col.Products) == 0,
	})
}
