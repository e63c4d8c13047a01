package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/imc-metrology/catalog-backend/internal/catalog"
	"github.com/imc-metrology/catalog-backend/internal/config"
	"github.com/imc-metrology/catalog-backend/internal/site"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	cat := catalog.New(catalog.Config{
		Mode:       catalog.Mode(cfg.DataMode),
		FixtureDir: cfg.FixtureDir,
		BaseURL:    cfg.APIBaseURL,
	})

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,HEAD",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	site.NewHandler(cat).RegisterPublicRoutes(app)

	addr := cfg.Addr
	if addr == ":8080" {
		// keep the default ports of the two servers apart so they can share
		// one .env in local development
		addr = ":8081"
	}

	log.Printf("site server listening on %s (data mode %s)", addr, cfg.DataMode)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
