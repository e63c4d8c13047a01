package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/imc-metrology/catalog-backend/internal/brand"
	"github.com/imc-metrology/catalog-backend/internal/category"
	"github.com/imc-metrology/catalog-backend/internal/product"
)

const (
	brandsFile     = "brands.json"
	categoriesFile = "brand_products.json"
	productsFile   = "products.json"
)

// FixtureStore reads the bundled JSON data files on every call and rewrites
// products.json for product writes. Files are the unit of consistency; there
// is no cross-file transaction.
type FixtureStore struct {
	dir string
	mu  sync.Mutex
}

// fixtureBrandData matches one value of the brand_products.json map, which is
// keyed by brand id.
type fixtureBrandData struct {
	Categories []fixtureCategory `json:"categories"`
}

type fixtureCategory struct {
	// ID is optional in older fixture files; position+1 is used when absent.
	ID      int     `json:"id"`
	TitleEN string  `json:"title_en"`
	TitleTH *string `json:"title_th"`
	ItemsEN *string `json:"items_en"`
	ItemsTH *string `json:"items_th"`
}

func NewFixtureStore(dir string) *FixtureStore {
	return &FixtureStore{dir: dir}
}

func (f *FixtureStore) Brands() ([]brand.Brand, error) {
	var brands []brand.Brand
	if err := f.readFile(brandsFile, &brands); err != nil {
		return nil, err
	}
	if brands == nil {
		brands = []brand.Brand{}
	}
	return brands, nil
}

func (f *FixtureStore) Brand(id string) (*brand.Brand, error) {
	brands, err := f.Brands()
	if err != nil {
		return nil, err
	}
	for i := range brands {
		if brands[i].ID == id {
			return &brands[i], nil
		}
	}
	return nil, nil
}

func (f *FixtureStore) CategoriesByBrand(brandID string) ([]category.Category, error) {
	var byBrand map[string]fixtureBrandData
	if err := f.readFile(categoriesFile, &byBrand); err != nil {
		return nil, err
	}

	data, ok := byBrand[brandID]
	if !ok {
		return []category.Category{}, nil
	}

	out := make([]category.Category, 0, len(data.Categories))
	for i, cat := range data.Categories {
		id := cat.ID
		if id == 0 {
			id = i + 1
		}
		out = append(out, category.Category{
			ID:      id,
			BrandID: brandID,
			TitleEN: cat.TitleEN,
			TitleTH: cat.TitleTH,
			ItemsEN: cat.ItemsEN,
			ItemsTH: cat.ItemsTH,
		})
	}
	return out, nil
}

func (f *FixtureStore) Products() ([]product.Product, error) {
	var products []product.Product
	if err := f.readFile(productsFile, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []product.Product{}
	}
	return products, nil
}

func (f *FixtureStore) CreateProduct(p product.Product) (product.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	products, err := f.Products()
	if err != nil {
		return product.Product{}, err
	}

	maxID := 0
	for _, existing := range products {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	p.ID = maxID + 1

	products = append(products, p)
	if err := f.writeProducts(products); err != nil {
		return product.Product{}, err
	}
	return p, nil
}

func (f *FixtureStore) UpdateProduct(id int, p product.Product) (product.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	products, err := f.Products()
	if err != nil {
		return product.Product{}, err
	}

	for i := range products {
		if products[i].ID == id {
			p.ID = id
			products[i] = p
			if err := f.writeProducts(products); err != nil {
				return product.Product{}, err
			}
			return p, nil
		}
	}
	return product.Product{}, product.ErrNotFound
}

func (f *FixtureStore) DeleteProduct(id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	products, err := f.Products()
	if err != nil {
		return err
	}

	kept := make([]product.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return product.ErrNotFound
	}
	return f.writeProducts(kept)
}

func (f *FixtureStore) readFile(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(f.dir, name))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (f *FixtureStore) writeProducts(products []product.Product) error {
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(f.dir, productsFile), data, 0644)
}
