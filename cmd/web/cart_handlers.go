package main

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"lindengoods.dev/store-web/internal/cart"
	mw "lindengoods.dev/store-web/internal/middleware"
	"lindengoods.dev/store-web/internal/storefront"
)

const cartUnavailableMsg = "Your cart is temporarily unavailable."

// sessionIdentity adapts the signed session to the cart identity interface.
// Every change is flagged so the middleware rewrites the cookie.
type sessionIdentity struct {
	s *mw.SessionData
}

func (si sessionIdentity) CartID() string { return si.s.CartID }

func (si sessionIdentity) SetCartID(id string) {
	si.s.CartID = id
	si.s.MarkDirty()
}

func (si sessionIdentity) ClearCartID() {
	si.s.CartID = ""
	si.s.MarkDirty()
}

// CartDrawerFrag renders the drawer from the persisted cart, if any.
func (a *App) CartDrawerFrag(w http.ResponseWriter, r *http.Request) {
	sess := mw.GetSession(r)
	c, err := a.carts.Load(r.Context(), sessionIdentity{sess})
	if err != nil {
		a.log.Error("cart load failed", zap.Error(err))
		v := buildCartView(nil, sess.CartOpen)
		v.Error = cartUnavailableMsg
		renderTemplate(w, "frag_cart_drawer", v)
		return
	}
	renderTemplate(w, "frag_cart_drawer", buildCartView(c, sess.CartOpen))
}

// CartBadgeFrag renders the header count bubble. Failures read as zero; the
// badge never shows an error state.
func (a *App) CartBadgeFrag(w http.ResponseWriter, r *http.Request) {
	sess := mw.GetSession(r)
	c, err := a.carts.Load(r.Context(), sessionIdentity{sess})
	if err != nil {
		a.log.Error("cart load failed", zap.Error(err))
		c = nil
	}
	n := cart.ItemCount(c)
	renderTemplate(w, "frag_cart_badge", BadgeView{Count: n, Label: badgeLabel(n)})
}

// OpenCartHandler opens the drawer and persists the open state.
func (a *App) OpenCartHandler(w http.ResponseWriter, r *http.Request) {
	a.setDrawerState(w, r, func(open bool) bool { return true })
}

// CloseCartHandler closes the drawer.
func (a *App) CloseCartHandler(w http.ResponseWriter, r *http.Request) {
	a.setDrawerState(w, r, func(open bool) bool { return false })
}

// ToggleCartHandler flips the drawer.
func (a *App) ToggleCartHandler(w http.ResponseWriter, r *http.Request) {
	a.setDrawerState(w, r, func(open bool) bool { return !open })
}

func (a *App) setDrawerState(w http.ResponseWriter, r *http.Request, next func(bool) bool) {
	sess := mw.GetSession(r)
	open := next(sess.CartOpen)
	if open != sess.CartOpen {
		sess.CartOpen = open
		sess.MarkDirty()
	}
	c, err := a.carts.Load(r.Context(), sessionIdentity{sess})
	if err != nil {
		a.log.Error("cart load failed", zap.Error(err))
		v := buildCartView(nil, open)
		v.Error = cartUnavailableMsg
		renderTemplate(w, "frag_cart_drawer", v)
		return
	}
	renderTemplate(w, "frag_cart_drawer", buildCartView(c, open))
}

// AddItemHandler adds a variant to the cart, creating one on first add, opens
// the drawer, and notifies listeners so the badge refreshes.
func (a *App) AddItemHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	variantID := strings.TrimSpace(r.PostFormValue("variant_id"))
	qty := 1
	if v := strings.TrimSpace(r.PostFormValue("quantity")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "bad quantity", http.StatusBadRequest)
			return
		}
		qty = n
	}

	sess := mw.GetSession(r)
	sess.CartOpen = true
	sess.MarkDirty()

	c, err := a.carts.Add(r.Context(), sessionIdentity{sess}, variantID, qty)
	a.renderMutationResult(w, r, c, err, "add to cart failed")
}

// UpdateLineHandler sets a line's quantity.
func (a *App) UpdateLineHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	lineID := chi.URLParam(r, "lineID")
	qty, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("quantity")))
	if err != nil {
		http.Error(w, "bad quantity", http.StatusBadRequest)
		return
	}

	sess := mw.GetSession(r)
	c, merr := a.carts.UpdateQuantity(r.Context(), sessionIdentity{sess}, lineID, qty)
	a.renderMutationResult(w, r, c, merr, "cart line update failed")
}

// RemoveLineHandler drops a line from the cart.
func (a *App) RemoveLineHandler(w http.ResponseWriter, r *http.Request) {
	lineID := chi.URLParam(r, "lineID")

	sess := mw.GetSession(r)
	c, err := a.carts.Remove(r.Context(), sessionIdentity{sess}, lineID)
	a.renderMutationResult(w, r, c, err, "cart line remove failed")
}

// renderMutationResult renders the drawer after a cart mutation. On failure it
// reloads the last cart state the gateway knows and renders it with the error
// banner; the failed mutation never leaks into the view.
func (a *App) renderMutationResult(w http.ResponseWriter, r *http.Request, c *storefront.Cart, err error, logMsg string) {
	sess := mw.GetSession(r)
	if err != nil {
		if errors.Is(err, cart.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		a.log.Error(logMsg, zap.Error(err))
		last, lerr := a.carts.Load(r.Context(), sessionIdentity{sess})
		if lerr != nil {
			last = nil
		}
		v := buildCartView(last, sess.CartOpen)
		v.Error = mutationMessage(err)
		renderTemplate(w, "frag_cart_drawer", v)
		return
	}
	w.Header().Set("HX-Trigger", "cart:updated")
	renderTemplate(w, "frag_cart_drawer", buildCartView(c, sess.CartOpen))
}

// mutationMessage surfaces gateway user errors verbatim and hides transport
// failures behind a generic line.
func mutationMessage(err error) string {
	var apiErr *storefront.APIError
	if errors.As(err, &apiErr) && apiErr.Status == 0 && apiErr.Message != "" {
		return apiErr.Message
	}
	return cartUnavailableMsg
}
