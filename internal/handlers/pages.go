package handlers

import (
	"lindengoods.dev/store-web/internal/nav"
)

// PageData is the shared view model for full pages using the base layout.
type PageData struct {
	Title string
	Path  string
	CSRF  string
	SEO   SEOData

	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb

	// Optional per-page view model payloads
	Shop        any
	Product     any
	Collection  any
	Collections any
}

// SEOData holds the page metadata rendered into the document head.
type SEOData struct {
	Title       string
	Description string
	Canonical   string
	OG          struct {
		Title       string
		Description string
		Type        string
		URL         string
		SiteName    string
	}
}
