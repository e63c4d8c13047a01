package catalog

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/imc-metrology/catalog-backend/internal/product"
)

// FixtureHandler serves the fixture-file-backed product CRUD used when the
// site runs in fixture mode. It operates on the same files the FixtureStore
// reads, so edits made here show up on the next page load.
type FixtureHandler struct {
	store *FixtureStore
}

func NewFixtureHandler(store *FixtureStore) *FixtureHandler {
	return &FixtureHandler{store: store}
}

func (h *FixtureHandler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/json/products", h.getProducts)
}

func (h *FixtureHandler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/json/products", h.createProduct)
	app.Put("/api/json/products/:id", h.updateProduct)
	app.Delete("/api/json/products/:id", h.deleteProduct)
}

func (h *FixtureHandler) getProducts(c *fiber.Ctx) error {
	products, err := h.store.Products()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(products)
}

func (h *FixtureHandler) createProduct(c *fiber.Ctx) error {
	p := new(product.Product)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	created, err := h.store.CreateProduct(*p)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *FixtureHandler) updateProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	p := new(product.Product)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updated, err := h.store.UpdateProduct(id, *p)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(updated)
}

func (h *FixtureHandler) deleteProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.store.DeleteProduct(id); err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}
