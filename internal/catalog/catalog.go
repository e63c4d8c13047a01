// Package catalog presents one bilingual-catalog read/write contract
// regardless of backing store: bundled JSON fixtures or the remote REST API.
// The mode is fixed at construction; a single call never mixes sources.
package catalog

import (
	"errors"
	"net/http"

	"github.com/imc-metrology/catalog-backend/internal/brand"
	"github.com/imc-metrology/catalog-backend/internal/category"
	"github.com/imc-metrology/catalog-backend/internal/product"
)

// Source is the read/write contract shared by the fixture store and the API
// client. Brand returns nil (not an error) when the id is unknown.
type Source interface {
	Brands() ([]brand.Brand, error)
	Brand(id string) (*brand.Brand, error)
	CategoriesByBrand(brandID string) ([]category.Category, error)
	Products() ([]product.Product, error)
	CreateProduct(p product.Product) (product.Product, error)
	UpdateProduct(id int, p product.Product) (product.Product, error)
	DeleteProduct(id int) error
}

type Mode string

const (
	ModeFixture Mode = "fixture"
	ModeAPI     Mode = "api"
)

// Config is injected at startup; the mode is not toggleable afterwards.
type Config struct {
	Mode       Mode
	FixtureDir string
	BaseURL    string
	HTTPClient *http.Client
}

var errNoAPI = errors.New("catalog: no API base URL configured")

// Catalog branches every accessor on the configured mode. Brand and category
// writes always go through the API; only product writes have a fixture-file
// equivalent.
type Catalog struct {
	mode     Mode
	fixtures *FixtureStore
	api      *Client
}

func New(cfg Config) *Catalog {
	c := &Catalog{mode: cfg.Mode}
	if cfg.Mode == ModeFixture {
		c.fixtures = NewFixtureStore(cfg.FixtureDir)
	}
	if cfg.BaseURL != "" {
		c.api = NewClient(cfg.BaseURL, cfg.HTTPClient)
	}
	return c
}

func (c *Catalog) source() Source {
	if c.mode == ModeFixture {
		return c.fixtures
	}
	return c.api
}

func (c *Catalog) Brands() ([]brand.Brand, error) {
	return c.source().Brands()
}

func (c *Catalog) Brand(id string) (*brand.Brand, error) {
	return c.source().Brand(id)
}

func (c *Catalog) CategoriesByBrand(brandID string) ([]category.Category, error) {
	return c.source().CategoriesByBrand(brandID)
}

func (c *Catalog) Products() ([]product.Product, error) {
	return c.source().Products()
}

// ProductsByBrand filters client-side in both modes; neither backing store
// has a by-brand listing.
func (c *Catalog) ProductsByBrand(brandID string) ([]product.Product, error) {
	products, err := c.source().Products()
	if err != nil {
		return nil, err
	}
	return filterByBrand(products, brandID), nil
}

// ProductsByCategory returns the intersection of category and (optional)
// brand. The API has no combined endpoint, so the brand filter is always
// applied here after the fetch.
func (c *Catalog) ProductsByCategory(categoryID int, brandID string) ([]product.Product, error) {
	var (
		products []product.Product
		err      error
	)
	if c.mode == ModeFixture {
		products, err = c.fixtures.Products()
		if err != nil {
			return nil, err
		}
		products = filterByCategory(products, categoryID)
	} else {
		products, err = c.api.ProductsByCategory(categoryID)
		if err != nil {
			return nil, err
		}
	}
	if brandID != "" {
		products = filterByBrand(products, brandID)
	}
	return products, nil
}

func (c *Catalog) CreateProduct(p product.Product) (product.Product, error) {
	return c.source().CreateProduct(p)
}

func (c *Catalog) UpdateProduct(id int, p product.Product) (product.Product, error) {
	return c.source().UpdateProduct(id, p)
}

func (c *Catalog) DeleteProduct(id int) error {
	return c.source().DeleteProduct(id)
}

// Brand and category writes have no fixture-mode implementation; they are
// remote in every mode.

func (c *Catalog) CreateBrand(b brand.Brand) (brand.Brand, error) {
	if c.api == nil {
		return brand.Brand{}, errNoAPI
	}
	return c.api.CreateBrand(b)
}

func (c *Catalog) UpdateBrand(id string, b brand.Brand) (brand.Brand, error) {
	if c.api == nil {
		return brand.Brand{}, errNoAPI
	}
	return c.api.UpdateBrand(id, b)
}

func (c *Catalog) DeleteBrand(id string) error {
	if c.api == nil {
		return errNoAPI
	}
	return c.api.DeleteBrand(id)
}

func (c *Catalog) CreateCategory(cat category.Category) (category.Category, error) {
	if c.api == nil {
		return category.Category{}, errNoAPI
	}
	return c.api.CreateCategory(cat)
}

func (c *Catalog) UpdateCategory(id int, cat category.Category) (category.Category, error) {
	if c.api == nil {
		return category.Category{}, errNoAPI
	}
	return c.api.UpdateCategory(id, cat)
}

func (c *Catalog) DeleteCategory(id int) error {
	if c.api == nil {
		return errNoAPI
	}
	return c.api.DeleteCategory(id)
}

func filterByBrand(products []product.Product, brandID string) []product.Product {
	out := make([]product.Product, 0, len(products))
	for _, p := range products {
		if p.BrandID != nil && *p.BrandID == brandID {
			out = append(out, p)
		}
	}
	return out
}

func filterByCategory(products []product.Product, categoryID int) []product.Product {
	out := make([]product.Product, 0, len(products))
	for _, p := range products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}
