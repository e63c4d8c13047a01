package site

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/imc-metrology/catalog-backend/internal/catalog"
	"github.com/imc-metrology/catalog-backend/internal/lang"
)

// Handler serves the public page view models. Every route accepts a ?lang=
// query parameter; anything other than TH renders English.
type Handler struct {
	catalog *catalog.Catalog
}

func NewHandler(cat *catalog.Catalog) *Handler {
	return &Handler{catalog: cat}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/pages/brands", h.getBrandList)
	app.Get("/api/pages/brands/:id", h.getBrandPage)
	app.Get("/api/pages/brands/:brandId/categories/:categoryId", h.getCategoryPage)
	app.Get("/api/pages/categories/:categoryId/products", h.getProductGroup)
}

func (h *Handler) getBrandList(c *fiber.Ctx) error {
	l := lang.Parse(c.Query("lang"))

	brands, err := h.catalog.Brands()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	cards := make([]BrandCard, 0, len(brands))
	for _, b := range brands {
		cards = append(cards, brandCard(l, b))
	}
	return c.JSON(cards)
}

func (h *Handler) getBrandPage(c *fiber.Ctx) error {
	l := lang.Parse(c.Query("lang"))

	b, err := h.catalog.Brand(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if b == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Brand not found"})
	}

	categories, err := h.catalog.CategoriesByBrand(b.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	page := BrandPage{Brand: brandCard(l, *b), Categories: make([]CategoryView, 0, len(categories))}
	for _, cat := range categories {
		page.Categories = append(page.Categories, categoryView(l, cat))
	}
	return c.JSON(page)
}

func (h *Handler) getCategoryPage(c *fiber.Ctx) error {
	l := lang.Parse(c.Query("lang"))

	categoryID, err := strconv.Atoi(c.Params("categoryId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	categories, err := h.catalog.CategoriesByBrand(c.Params("brandId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	for _, cat := range categories {
		if cat.ID == categoryID {
			view := categoryView(l, cat)
			return c.JSON(view)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
}

func (h *Handler) getProductGroup(c *fiber.Ctx) error {
	l := lang.Parse(c.Query("lang"))

	categoryID, err := strconv.Atoi(c.Params("categoryId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	products, err := h.catalog.ProductsByCategory(categoryID, c.Query("brand"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	cards := make([]ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, productCard(l, p))
	}
	return c.JSON(cards)
}
