package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"invoice-scan-service/internal/config"
	"invoice-scan-service/internal/middleware"
	scanHnd "invoice-scan-service/internal/scan/handler"
	"invoice-scan-service/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", handlers.Health)

	// OCR guess -> cleaned, catalog-reconciled invoice
	r.Post("/scan/normalize", scanHnd.Normalize(cfg, logger))
	// catalog export -> candidate product names for the matcher
	r.Post("/catalog/names", scanHnd.CatalogNames(cfg, logger))

	return r
}
