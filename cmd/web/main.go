package main

import (
	"flag"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"lindengoods.dev/store-web/internal/cart"
	"lindengoods.dev/store-web/internal/config"
	"lindengoods.dev/store-web/internal/content"
	"lindengoods.dev/store-web/internal/logging"
	mw "lindengoods.dev/store-web/internal/middleware"
	"lindengoods.dev/store-web/internal/storefront"
)

var (
	templatesDir = "templates"
	publicDir    = "public"
	// devMode reparses templates on each request
	devMode   bool
	tmplCache *template.Template
)

// App is the composition root: every handler hangs off this struct and all
// dependencies are injected here, nothing is ambient.
type App struct {
	store  *storefront.Client
	carts  *cart.Manager
	notice *content.Announcement
	log    *zap.Logger
}

func main() {
	var (
		addr     string
		tmplPath string
		pubPath  string
	)
	flag.StringVar(&addr, "addr", "", "HTTP listen address (overrides env)")
	flag.StringVar(&tmplPath, "templates", templatesDir, "templates directory")
	flag.StringVar(&pubPath, "public", publicDir, "public assets directory")
	flag.Parse()

	templatesDir = tmplPath
	publicDir = pubPath

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if addr == "" {
		addr = cfg.Addr
	}
	devMode = cfg.Dev

	logger, err := logging.NewLogger()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if !devMode {
		// Parse templates once in production
		tc, err := parseTemplates()
		if err != nil {
			logger.Fatal("parse templates", zap.Error(err))
		}
		tmplCache = tc
	}

	notice, err := content.LoadAnnouncement(cfg.ContentPath)
	if err != nil {
		logger.Warn("announcement disabled", zap.Error(err))
	}

	client := storefront.NewClient(cfg.APIURL, cfg.APIToken, logger)
	app := &App{
		store:  client,
		carts:  cart.NewManager(client, logger),
		notice: notice,
		log:    logger,
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(app, logger),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("web listening", zap.String("addr", addr), zap.Bool("dev", devMode))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("listen", zap.Error(err))
	}
}

func newRouter(a *App, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// Behind a trusted reverse proxy RealIP resolves the client address from
	// X-Forwarded-For; only trusted proxies may set those headers.
	r.Use(chimw.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Session)
	r.Use(mw.CSRF)
	r.Use(mw.Logger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	assets := http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(publicDir, "assets")))
	r.Handle("/assets/*", assets)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/shop", http.StatusMovedPermanently)
	})

	r.Get("/shop", a.ShopHandler)
	r.Get("/shop/products", a.ProductGridFrag)
	r.Get("/shop/products/{handle}", a.ProductHandler)
	r.Get("/shop/products/{handle}/recommendations", a.RecommendationsFrag)
	r.Get("/shop/collections", a.CollectionsHandler)
	r.Get("/shop/collections/{handle}", a.CollectionHandler)
	r.Get("/shop/collections/{handle}/products", a.CollectionProductsFrag)

	r.Get("/cart/drawer", a.CartDrawerFrag)
	r.Get("/cart/badge", a.CartBadgeFrag)
	r.Post("/cart/open", a.OpenCartHandler)
	r.Post("/cart/close", a.CloseCartHandler)
	r.Post("/cart/toggle", a.ToggleCartHandler)
	r.Post("/cart/items", a.AddItemHandler)
	r.Post("/cart/lines/{lineID}", a.UpdateLineHandler)
	r.Delete("/cart/lines/{lineID}", a.RemoveLineHandler)

	return r
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now": time.Now,
		"add": func(a, b int) int { return a + b },
	}
	// Recursively discover and parse all .tmpl files. Note: ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

// renderTemplate executes a named page or fragment template. In dev mode,
// templates are reparsed on each request.
func renderTemplate(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	var t *template.Template
	if devMode {
		tc, err := parseTemplates()
		if err != nil {
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return
		}
		t = tc
	} else {
		t = tmplCache
	}
	if t == nil {
		http.Error(w, "template not initialized", http.StatusInternalServerError)
		return
	}
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
		return
	}
}
