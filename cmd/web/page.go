package main

import (
	"fmt"
	"html/template"
	"net/http"

	handlersPkg "lindengoods.dev/store-web/internal/handlers"
	mw "lindengoods.dev/store-web/internal/middleware"
	"lindengoods.dev/store-web/internal/nav"
)

const brandName = "Linden Goods"

// buildPageData assembles the layout fields every full page shares.
func buildPageData(r *http.Request, title, desc string) handlersPkg.PageData {
	sess := mw.GetSession(r)
	pd := handlersPkg.PageData{
		Title:       title,
		Path:        r.URL.Path,
		CSRF:        sess.CSRFToken,
		Nav:         nav.Build(r.URL.Path),
		Breadcrumbs: nav.Breadcrumbs(r.URL.Path),
	}
	pd.SEO.Title = title + " | " + brandName
	pd.SEO.Description = desc
	pd.SEO.Canonical = absoluteURL(r)
	pd.SEO.OG.URL = pd.SEO.Canonical
	pd.SEO.OG.SiteName = brandName
	pd.SEO.OG.Title = pd.SEO.Title
	pd.SEO.OG.Description = desc
	pd.SEO.OG.Type = "website"
	return pd
}

func absoluteURL(r *http.Request) string {
	scheme := "https"
	if r.TLS == nil && r.Header.Get("X-Forwarded-Proto") != "https" {
		scheme = "http"
	}
	return fmt.Sprintf("%s://%s%s", scheme, r.Host, r.URL.Path)
}

// renderPageStatus renders a full page with an explicit status code (404s).
func renderPageStatus(w http.ResponseWriter, code int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	t := tmplCache
	if devMode {
		tc, err := parseTemplates()
		if err != nil {
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return
		}
		t = tc
	}
	if t == nil {
		http.Error(w, "template not initialized", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(code)
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		// headers already sent; nothing better to do than log via stderr path
		fmt.Fprintf(w, "<!-- template exec error: %v -->", template.HTMLEscapeString(err.Error()))
	}
}

// FetchErrorView is the shared error-box fragment payload. RetryURL re-issues
// the same fetch; TargetID is the region the retry swaps back into.
type FetchErrorView struct {
	Title    string
	Message  string
	RetryURL string
	TargetID string
}
