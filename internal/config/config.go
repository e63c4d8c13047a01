package config

import (
	"os"
	"strings"
)

// Config carries every environment-driven setting. It is loaded once in main
// and handed to constructors; nothing reads the environment after startup.
type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string

	// DataMode selects the catalog backing store for the site server:
	// "fixture" reads the bundled JSON files, "api" talks to APIBaseURL.
	DataMode   string
	FixtureDir string
	APIBaseURL string

	UploadDir string

	// OTPExposeDev echoes the generated OTP in the sign-in response when no
	// real delivery channel is configured. Never enable in production.
	OTPExposeDev bool

	// FallbackAdminEmails is consulted when the admin_users table cannot be
	// read, so a fresh database still allows first-time login.
	FallbackAdminEmails []string

	// BootstrapAdminEmail/Password seed a first admin account on startup when
	// the accounts table is empty.
	BootstrapAdminEmail    string
	BootstrapAdminPassword string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}

func Load() Config {
	cfg := Config{
		Addr:                   getenv("ADDR", ":8080"),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		DataMode:               getenv("DATA_MODE", "api"),
		FixtureDir:             getenv("FIXTURE_DIR", "./data"),
		APIBaseURL:             getenv("API_BASE_URL", "http://localhost:8080"),
		UploadDir:              getenv("UPLOAD_DIR", "./uploads"),
		OTPExposeDev:           os.Getenv("OTP_EXPOSE_DEV") == "1",
		BootstrapAdminEmail:    os.Getenv("BOOTSTRAP_ADMIN_EMAIL"),
		BootstrapAdminPassword: os.Getenv("BOOTSTRAP_ADMIN_PASSWORD"),
		SMTPHost:               os.Getenv("SMTP_HOST"),
		SMTPPort:               getenv("SMTP_PORT", "587"),
		SMTPUsername:           os.Getenv("SMTP_USERNAME"),
		SMTPPassword:           os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:               os.Getenv("SMTP_FROM"),
	}

	fallback := getenv("FALLBACK_ADMIN_EMAILS", "admin@imc.co.th,imcmetrologyengineers@gmail.com")
	for _, e := range strings.Split(fallback, ",") {
		if e = strings.TrimSpace(strings.ToLower(e)); e != "" {
			cfg.FallbackAdminEmails = append(cfg.FallbackAdminEmails, e)
		}
	}

	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
