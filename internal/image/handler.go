package image

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/images", h.getImages)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/images/upload", h.uploadImage)
	app.Delete("/api/images/:id", h.deleteImage)
}

func (h *Handler) getImages(c *fiber.Ctx) error {
	images, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(images)
}

func (h *Handler) uploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file uploaded"})
	}

	if err := os.MkdirAll(h.service.UploadDir(), 0755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	filename := h.service.Filename(file.Filename)
	if err := c.SaveFile(file, filepath.Join(h.service.UploadDir(), filename)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	altText := c.FormValue("alt_text")
	if altText == "" {
		altText = file.Filename
	}
	var page *string
	if p := c.FormValue("page"); p != "" {
		page = &p
	}

	created, err := h.service.Save(filename, &altText, page)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) deleteImage(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.service.Delete(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}
