package nucleo

import (
	"catalog-bridge/core/soap"
	"catalog-bridge/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the Nucleo catalog feature.
func NewFeature(client *soap.Client, store storage.Client, bucket string, logger *zap.Logger, policy soap.Backoff) *Feature {
	auth := NewAuthenticator(client, policy, logger)
	svc := NewService(client, auth, store, bucket, logger, policy)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "nucleo"
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
