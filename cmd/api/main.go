package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/imc-metrology/catalog-backend/internal/adminuser"
	"github.com/imc-metrology/catalog-backend/internal/auth"
	"github.com/imc-metrology/catalog-backend/internal/brand"
	"github.com/imc-metrology/catalog-backend/internal/catalog"
	"github.com/imc-metrology/catalog-backend/internal/category"
	"github.com/imc-metrology/catalog-backend/internal/config"
	"github.com/imc-metrology/catalog-backend/internal/image"
	"github.com/imc-metrology/catalog-backend/internal/migrate"
	"github.com/imc-metrology/catalog-backend/internal/product"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	ensureSchema(db)
	bootstrapAdminAccount(db, cfg)

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLog)

	validate := validator.New()

	brandService := brand.NewService(brand.NewPostgresRepository(db))
	brandHandler := brand.NewHandler(brandService, validate)

	categoryService := category.NewService(category.NewPostgresRepository(db))
	categoryHandler := category.NewHandler(categoryService, validate)

	productService := product.NewService(product.NewPostgresRepository(db))
	productHandler := product.NewHandler(productService, categoryService, validate)

	imageService := image.NewService(image.NewPostgresRepository(db), cfg.UploadDir)
	imageHandler := image.NewHandler(imageService)

	adminUserService := adminuser.NewService(adminuser.NewPostgresRepository(db), cfg.FallbackAdminEmails)
	adminUserHandler := adminuser.NewHandler(adminUserService, validate)

	var mailer auth.Sender = auth.LogMailer{}
	if cfg.SMTPHost != "" {
		mailer = auth.NewSMTPMailer(auth.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})
	}
	authService := auth.NewService(auth.NewPostgresAccountRepository(db), adminUserService, auth.NewOTPStore(), mailer, []byte(cfg.JWTSecret))
	authHandler := auth.NewHandler(authService, cfg.OTPExposeDev)

	fixtures := catalog.NewFixtureStore(cfg.FixtureDir)
	fixtureHandler := catalog.NewFixtureHandler(fixtures)
	migrateHandler := migrate.NewHandler(migrate.NewService(fixtures, brandService, categoryService, productService))

	// public routes first; everything registered after the jwt middleware
	// requires a token
	authHandler.RegisterPublicRoutes(app)
	brandHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	imageHandler.RegisterPublicRoutes(app)
	adminUserHandler.RegisterPublicRoutes(app)
	fixtureHandler.RegisterPublicRoutes(app)

	app.Static("/uploads", cfg.UploadDir)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	// valid token, OTP not necessarily completed: the transitions out of the
	// pending state live here
	authHandler.RegisterAuthenticatedRoutes(app)

	app.Use(auth.RequireVerifiedAdmin)

	brandHandler.RegisterProtectedRoutes(app)
	categoryHandler.RegisterProtectedRoutes(app)
	productHandler.RegisterProtectedRoutes(app)
	imageHandler.RegisterProtectedRoutes(app)
	adminUserHandler.RegisterProtectedRoutes(app)
	fixtureHandler.RegisterProtectedRoutes(app)
	migrateHandler.RegisterProtectedRoutes(app)

	log.Printf("api server listening on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	log.Printf("%s %s -> %d (%s)", c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
	return err
}

func mustOpenDB(url string) *sql.DB {
	if url == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		panic(err)
	}
	if err := db.Ping(); err != nil {
		panic(err)
	}
	return db
}

// ensureSchema creates the tables this server owns. Idempotent; safe to run
// on every start.
func ensureSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS brands (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			logo TEXT,
			cover_image TEXT,
			description_th TEXT,
			description_en TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			brand_id TEXT NOT NULL,
			title_en TEXT NOT NULL,
			title_th TEXT,
			items_en TEXT,
			items_th TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			brand_id TEXT,
			category_id INT NOT NULL,
			name_en TEXT NOT NULL,
			name_th TEXT,
			description_en TEXT,
			description_th TEXT,
			image TEXT,
			price TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS images (
			id SERIAL PRIMARY KEY,
			url TEXT NOT NULL,
			alt_text TEXT,
			page TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS admin_users (
			id SERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS admin_accounts (
			id SERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}
}

// bootstrapAdminAccount seeds the first credential pair from the environment
// so a fresh deployment can log in at all.
func bootstrapAdminAccount(db *sql.DB, cfg config.Config) {
	if cfg.BootstrapAdminEmail == "" || cfg.BootstrapAdminPassword == "" {
		return
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM admin_accounts`).Scan(&count); err != nil || count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.BootstrapAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("warning: could not hash bootstrap password: %v", err)
		return
	}
	if _, err := db.Exec(`INSERT INTO admin_accounts (email, password) VALUES ($1, $2)`, cfg.BootstrapAdminEmail, string(hash)); err != nil {
		log.Printf("warning: could not seed bootstrap admin: %v", err)
	}
}
