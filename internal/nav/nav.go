package nav

import (
	"path"
	"strings"

	"lindengoods.dev/store-web/internal/format"
)

// Item represents a top-level navigation item.
type Item struct {
	Path  string // e.g. "/shop"
	Label string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/shop", Label: "Products"},
	{Path: "/shop/collections", Label: "Collections"},
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:   it.Path,
			Label:  it.Label,
			Active: isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	if currentPath == itemPath {
		return true
	}
	// nested nav entries win over their parents
	for _, it := range Main {
		if it.Path != itemPath && strings.HasPrefix(it.Path, itemPath+"/") &&
			(currentPath == it.Path || strings.HasPrefix(currentPath, it.Path+"/")) {
			return false
		}
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds breadcrumb entries from the current path. Deep segments
// get a prettified label from their slug.
func Breadcrumbs(currentPath string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", Label: "Home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	clean := path.Clean(currentPath)
	if clean == "." {
		clean = "/"
	}
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")

	href := ""
	for i, seg := range parts {
		if seg == "" {
			continue
		}
		href = href + "/" + seg
		label := format.TitleFromHandle(seg)
		for _, it := range Main {
			if it.Path == href {
				label = it.Label
				break
			}
		}
		crumbs = append(crumbs, Crumb{
			Href:   href,
			Label:  label,
			Active: i == len(parts)-1,
		})
	}
	return crumbs
}
