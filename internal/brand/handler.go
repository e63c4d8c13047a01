package brand

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service  *Service
	validate *validator.Validate
}

func NewHandler(service *Service, validate *validator.Validate) *Handler {
	return &Handler{service: service, validate: validate}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/brands", h.getBrands)
	app.Get("/api/brands/:id", h.getBrand)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/brands", h.createBrand)
	app.Put("/api/brands/:id", h.updateBrand)
	app.Delete("/api/brands/:id", h.deleteBrand)
}

func (h *Handler) getBrands(c *fiber.Ctx) error {
	brands, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(brands)
}

func (h *Handler) getBrand(c *fiber.Ctx) error {
	b, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Brand not found"})
	}
	return c.JSON(b)
}

func (h *Handler) createBrand(c *fiber.Ctx) error {
	b := new(Brand)
	if err := c.BodyParser(b); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.validate.Struct(b); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	created, err := h.service.Create(*b)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateBrand(c *fiber.Ctx) error {
	b := new(Brand)
	if err := c.BodyParser(b); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	b.ID = c.Params("id")
	if err := h.validate.Struct(b); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updated, err := h.service.Update(c.Params("id"), *b)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(updated)
}

func (h *Handler) deleteBrand(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}
