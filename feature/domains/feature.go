package domains

import (
	"github.com/gofiber/fiber/v2"
)

// Feature exposes the domains routes to the loader.
type Feature struct {
	service *Service
}

// NewFeature wraps a service as a loadable feature.
func NewFeature(service *Service) *Feature {
	return &Feature{service: service}
}

func (f *Feature) Name() string { return "domains" }

func (f *Feature) IsEnabled() bool { return f.service != nil }

// Load registers the routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}
