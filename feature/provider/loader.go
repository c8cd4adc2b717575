package provider

import (
	"storage-provider/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new provider feature bound to scope.
func NewFeature(client storage.Client, scope Scope, logger *zap.Logger, opts ...Option) *Feature {
	svc := NewService(client, scope, logger, opts...)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "provider"
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

// Service returns the facade the feature serves.
func (f *Feature) Service() *Service {
	return f.service
}
