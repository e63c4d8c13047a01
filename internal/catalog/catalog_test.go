package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/imc-metrology/catalog-backend/internal/product"
)

const testBrands = `[
  {"id": "acme", "name": "Acme", "description_en": "Test instruments"},
  {"id": "other", "name": "Other"}
]`

const testBrandProducts = `{
  "acme": {
    "categories": [
      {"id": 10, "title_en": "Widgets", "items_en": "Widget A, Widget B"},
      {"title_en": "Legacy"}
    ]
  }
}`

const testProducts = `[
  {"id": 1, "brand_id": "acme", "category_id": 10, "name_en": "Widget A", "price": "฿100"},
  {"id": 2, "brand_id": "acme", "category_id": 11, "name_en": "Widget B", "price": "฿200"},
  {"id": 3, "brand_id": "other", "category_id": 10, "name_en": "Gadget", "price": "฿300"}
]`

func writeFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		brandsFile:     testBrands,
		categoriesFile: testBrandProducts,
		productsFile:   testProducts,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("write fixture %s: %v", name, err)
		}
	}
	return dir
}

// newAPIServer serves the same data set over the REST surface the client
// speaks, so both modes can be checked against identical expectations.
func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, raw string) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(raw))
	}
	mux.HandleFunc("/api/brands", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, testBrands)
	})
	mux.HandleFunc("/api/brands/acme", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"id": "acme", "name": "Acme", "description_en": "Test instruments"}`)
	})
	mux.HandleFunc("/api/brands/acme/categories", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `[
			{"id": 10, "brand_id": "acme", "title_en": "Widgets", "items_en": "Widget A, Widget B"},
			{"id": 2, "brand_id": "acme", "title_en": "Legacy"}
		]`)
	})
	mux.HandleFunc("/api/brands/nope", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		writeJSON(w, `{"error": "Brand not found"}`)
	})
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, testProducts)
	})
	mux.HandleFunc("/api/categories/10/products", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `[
			{"id": 1, "brand_id": "acme", "category_id": 10, "name_en": "Widget A", "price": "฿100"},
			{"id": 3, "brand_id": "other", "category_id": 10, "name_en": "Gadget", "price": "฿300"}
		]`)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func bothModes(t *testing.T) map[string]*Catalog {
	t.Helper()
	return map[string]*Catalog{
		"fixture": New(Config{Mode: ModeFixture, FixtureDir: writeFixtures(t)}),
		"api":     New(Config{Mode: ModeAPI, BaseURL: newAPIServer(t).URL}),
	}
}

func TestBrandsBothModes(t *testing.T) {
	for mode, cat := range bothModes(t) {
		brands, err := cat.Brands()
		if err != nil {
			t.Fatalf("[%s] unexpected error: %v", mode, err)
		}
		if len(brands) != 2 || brands[0].ID != "acme" {
			t.Fatalf("[%s] unexpected brands: %+v", mode, brands)
		}
	}
}

func TestBrandAbsentIsNilBothModes(t *testing.T) {
	for mode, cat := range bothModes(t) {
		b, err := cat.Brand("nope")
		if err != nil {
			t.Fatalf("[%s] absence must not be an error: %v", mode, err)
		}
		if b != nil {
			t.Fatalf("[%s] expected nil for unknown brand, got %+v", mode, b)
		}

		b, err = cat.Brand("acme")
		if err != nil || b == nil || b.Name != "Acme" {
			t.Fatalf("[%s] known brand lookup failed: %+v, %v", mode, b, err)
		}
	}
}

func TestCategoriesByBrandBothModes(t *testing.T) {
	for mode, cat := range bothModes(t) {
		categories, err := cat.CategoriesByBrand("acme")
		if err != nil {
			t.Fatalf("[%s] unexpected error: %v", mode, err)
		}
		if len(categories) != 2 {
			t.Fatalf("[%s] expected 2 categories, got %+v", mode, categories)
		}
		if categories[0].ID != 10 {
			t.Fatalf("[%s] explicit id not honored: %+v", mode, categories[0])
		}
		// the id-less entry falls back to position+1
		if categories[1].ID != 2 {
			t.Fatalf("[%s] positional id fallback broken: %+v", mode, categories[1])
		}
		if categories[0].ItemsEN == nil || *categories[0].ItemsEN != "Widget A, Widget B" {
			t.Fatalf("[%s] unexpected items: %+v", mode, categories[0])
		}
	}
}

func TestProductsByCategoryWithBrandFilter(t *testing.T) {
	for mode, cat := range bothModes(t) {
		products, err := cat.ProductsByCategory(10, "acme")
		if err != nil {
			t.Fatalf("[%s] unexpected error: %v", mode, err)
		}
		if len(products) != 1 || products[0].NameEN != "Widget A" {
			t.Fatalf("[%s] expected only acme's category-10 product, got %+v", mode, products)
		}

		// no brand filter keeps both brands
		products, err = cat.ProductsByCategory(10, "")
		if err != nil {
			t.Fatalf("[%s] unexpected error: %v", mode, err)
		}
		if len(products) != 2 {
			t.Fatalf("[%s] expected 2 products, got %+v", mode, products)
		}
	}
}

func TestProductsByBrandBothModes(t *testing.T) {
	for mode, cat := range bothModes(t) {
		products, err := cat.ProductsByBrand("acme")
		if err != nil {
			t.Fatalf("[%s] unexpected error: %v", mode, err)
		}
		if len(products) != 2 {
			t.Fatalf("[%s] expected 2 acme products, got %+v", mode, products)
		}
	}
}

func TestClientSurfacesServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/brands", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "database unavailable"}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	cat := New(Config{Mode: ModeAPI, BaseURL: server.URL})
	_, err := cat.Brands()
	if err == nil || err.Error() != "database unavailable" {
		t.Fatalf("expected server error message, got %v", err)
	}
}

func TestFixtureProductCRUD(t *testing.T) {
	dir := writeFixtures(t)
	store := NewFixtureStore(dir)

	created, err := store.CreateProduct(product.Product{CategoryID: 10, NameEN: "Widget C"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	// ids continue past the current maximum
	if created.ID != 4 {
		t.Fatalf("expected id 4, got %d", created.ID)
	}

	// the write is visible through a fresh store reading the same files
	again := NewFixtureStore(dir)
	products, err := again.Products()
	if err != nil {
		t.Fatalf("reread failed: %v", err)
	}
	if len(products) != 4 {
		t.Fatalf("expected 4 products after create, got %d", len(products))
	}

	updated, err := store.UpdateProduct(4, product.Product{CategoryID: 10, NameEN: "Widget C rev2"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ID != 4 || updated.NameEN != "Widget C rev2" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	if _, err := store.UpdateProduct(99, product.Product{NameEN: "ghost"}); err != product.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := store.DeleteProduct(4); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := store.DeleteProduct(4); err != product.ErrNotFound {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}

	// the rewritten file still parses as the canonical array form
	raw, err := os.ReadFile(filepath.Join(dir, productsFile))
	if err != nil {
		t.Fatalf("read products file: %v", err)
	}
	var final []product.Product
	if err := json.Unmarshal(raw, &final); err != nil {
		t.Fatalf("rewritten file is not valid JSON: %v", err)
	}
	if len(final) != 3 {
		t.Fatalf("expected 3 products on disk, got %d", len(final))
	}
}
