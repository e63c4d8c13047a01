package brand

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func ptrString(s string) *string { return &s }

func newTestApp(seed []Brand) (*fiber.App, *InMemoryRepository) {
	repo := NewInMemoryRepository(seed)
	h := NewHandler(NewService(repo), validator.New())
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	return app, repo
}

func TestGetBrands(t *testing.T) {
	app, _ := newTestApp([]Brand{
		{ID: "mitutoyo", Name: "Mitutoyo", DescriptionTH: ptrString("เครื่องมือวัดละเอียด")},
		{ID: "sylvac", Name: "Sylvac"},
	})

	res, err := app.Test(httptest.NewRequest("GET", "/api/brands", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	str := string(body)
	if !strings.Contains(str, "mitutoyo") || !strings.Contains(str, "sylvac") {
		t.Fatalf("unexpected body: %s", str)
	}
}

func TestGetBrand_NotFound(t *testing.T) {
	app, _ := newTestApp(nil)

	res, err := app.Test(httptest.NewRequest("GET", "/api/brands/nope", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), "Brand not found") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestCreateBrand_Validation(t *testing.T) {
	app, repo := newTestApp(nil)

	// missing name must be rejected before it reaches the repository
	req := httptest.NewRequest("POST", "/api/brands", strings.NewReader(`{"id":"insize"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}

	req = httptest.NewRequest("POST", "/api/brands", strings.NewReader(`{"id":"insize","name":"INSIZE"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}
	if _, err := repo.GetByID("insize"); err != nil {
		t.Fatalf("brand not stored: %v", err)
	}
}

func TestDeleteBrand(t *testing.T) {
	app, repo := newTestApp([]Brand{{ID: "insize", Name: "INSIZE"}})

	res, err := app.Test(httptest.NewRequest("DELETE", "/api/brands/insize", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), `"success":true`) {
		t.Fatalf("unexpected body: %s", body)
	}
	if _, err := repo.GetByID("insize"); err != ErrNotFound {
		t.Fatalf("brand still present after delete")
	}
}
