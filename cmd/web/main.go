package main

import (
	"context"
	"flag"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"zielinski.dev/folio-web/internal/config"
	"zielinski.dev/folio-web/internal/content"
	"zielinski.dev/folio-web/internal/logging"
	mw "zielinski.dev/folio-web/internal/middleware"
	"zielinski.dev/folio-web/internal/showcase"
	"zielinski.dev/folio-web/internal/writeup"
)

var (
	cfg       config.Config
	logger    *zap.Logger
	assembler *content.Assembler
	writeups  *writeup.Store
	showcases *showcase.Manager
	locales   []string
)

func main() {
	cfg = config.Load()

	var addr string
	flag.StringVar(&addr, "addr", cfg.Addr, "HTTP listen address")
	flag.StringVar(&cfg.ContentDir, "content", cfg.ContentDir, "content directory")
	flag.StringVar(&cfg.TemplatesDir, "templates", cfg.TemplatesDir, "templates directory")
	flag.StringVar(&cfg.PublicDir, "public", cfg.PublicDir, "public assets directory")
	flag.Parse()
	cfg.Addr = addr

	logger = logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	assembler = content.NewAssembler(cfg.ContentDir, logger)
	writeups = writeup.NewStore(filepath.Join(cfg.ContentDir, "writeups"), logger)
	settings := assembler.Settings()
	showcases = showcase.NewManager(settings, logger)
	locales = content.AvailableLocales(cfg.ContentDir)

	if !cfg.Dev {
		tc, err := parseTemplates()
		if err != nil {
			logger.Fatal("parse templates", zap.Error(err))
		}
		tmplCache = tc
	}

	// live content editing: any change under content/ drops the caches
	if err := content.Watch(context.Background(), cfg.ContentDir, logger, func() {
		assembler.Invalidate()
		writeups.Invalidate()
	}); err != nil {
		logger.Warn("content watcher unavailable", zap.Error(err))
	}

	r := newRouter()
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("web listening",
		zap.String("addr", cfg.Addr),
		zap.Bool("dev", cfg.Dev),
		zap.Strings("locales", locales),
		zap.String("default_lang", settings.DefaultLanguage))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("listen", zap.Error(err))
	}
}

func newRouter() chi.Router {
	settings := assembler.Settings()

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Session)
	r.Use(mw.Locale(locales, settings.DefaultLanguage))
	r.Use(mw.Theme(settings.DefaultTheme))
	r.Use(mw.VaryLocale)
	r.Use(mw.Logger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	assets := http.StripPrefix("/assets/", mw.AssetsWithCache(filepath.Join(cfg.PublicDir, "assets")))
	r.Handle("/assets/*", assets)

	r.Get("/", HomeHandler)
	r.Get("/fragment/showcase/{id}", ShowcaseSelectHandler)
	r.Post("/fragment/showcase/{id}/loaded", ShowcaseLoadedHandler)
	r.Get("/lang/{code}", LangHandler)
	r.Post("/theme/toggle", ThemeToggleHandler)

	return r
}
