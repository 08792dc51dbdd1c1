package nucleo

import (
	"catalog-bridge/core/logger"
	"catalog-bridge/feature/nucleo/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Default caps for the list endpoints, matching the legacy surface. They
// bound only the HTTP response, never the reconciliation itself.
const (
	defaultProductLimit    = 100
	defaultWithImagesLimit = 1000
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/nucleo")
	group.Post("/login", h.HandleLogin)
	group.Get("/brands", h.HandleBrands)
	group.Get("/products/base", h.HandleProductsBase)
	group.Get("/products/storage/group", h.HandleProductsStorageGroup)
	group.Get("/products/combined", h.HandleProductsCombined)
	group.Get("/products/combined/withimages", h.HandleProductsCombinedWithImages)
	group.Get("/product/images/load/:id", h.HandleImagesByProduct)
}

// HandleLogin authenticates against the upstream and returns the session token.
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	token, err := h.service.Authenticate(c.Context())
	if err != nil {
		l.Error("Authentication failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"token": token})
}

// HandleBrands returns all brands.
func (h *Handler) HandleBrands(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	brands, err := h.service.Brands(c.Context())
	if err != nil {
		l.Error("Brand feed failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(brands)
}

// HandleProductsBase returns products from the base feed.
func (h *Handler) HandleProductsBase(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	products, err := h.service.ProductsBase(c.Context())
	if err != nil {
		l.Error("Base product feed failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(capProducts(products, c.QueryInt("limit", defaultProductLimit)))
}

// HandleProductsStorageGroup returns products from the storage-group feed.
func (h *Handler) HandleProductsStorageGroup(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	products, err := h.service.ProductsStorageGroup(c.Context())
	if err != nil {
		l.Error("Storage-group product feed failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(capProducts(products, c.QueryInt("limit", defaultProductLimit)))
}

// HandleProductsCombined returns the reconciled catalog.
func (h *Handler) HandleProductsCombined(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	products, err := h.service.ProductsCombined(c.Context())
	if err != nil {
		l.Error("Product reconciliation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(capProducts(products, c.QueryInt("limit", defaultProductLimit)))
}

// HandleProductsCombinedWithImages returns the reconciled catalog with each
// product's image set attached.
func (h *Handler) HandleProductsCombinedWithImages(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	products, err := h.service.ProductsCombinedWithImages(c.Context(), c.QueryInt("limit", defaultWithImagesLimit))
	if err != nil {
		l.Error("Image attachment failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(products)
}

// HandleImagesByProduct returns the stored image set for one product.
func (h *Handler) HandleImagesByProduct(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "product id must be an integer",
		})
	}

	images, err := h.service.Images(c.Context(), id)
	if err != nil {
		l.Error("Image feed failed", zap.Error(err), zap.Int("product_id", id))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(images)
}

func capProducts(products []models.Product, limit int) []models.Product {
	if limit > 0 && len(products) > limit {
		return products[:limit]
	}
	return products
}
