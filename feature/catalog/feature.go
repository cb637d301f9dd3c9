package catalog

import (
	"catalog-sync/core/feed"
	"catalog-sync/core/shop"
	catalogSync "catalog-sync/feature/catalog/sync"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the catalog sync feature.
func NewFeature(shopName string, client shop.Client, feedCache *feed.Cache, locations *shop.LocationCache, store catalogSync.RunStore, cfg catalogSync.Config, logger *zap.Logger) *Feature {
	svc := NewService(shopName, client, feedCache, locations, store, cfg, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Service exposes the underlying service for CLI use.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "catalog"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
