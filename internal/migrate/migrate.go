// Package migrate bulk-loads the bundled fixture files into the relational
// store. Row failures are isolated: one bad row never aborts the batch, and
// the report carries succeeded/failed counts per entity type.
package migrate

import (
	"fmt"

	"github.com/imc-metrology/catalog-backend/internal/brand"
	"github.com/imc-metrology/catalog-backend/internal/catalog"
	"github.com/imc-metrology/catalog-backend/internal/category"
	"github.com/imc-metrology/catalog-backend/internal/product"
)

type Counts struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

type Report struct {
	Brands     Counts `json:"brands"`
	Categories Counts `json:"categories"`
	Products   Counts `json:"products"`
}

func (r Report) Message() string {
	return fmt.Sprintf("Migration completed! Brands: %d, Categories: %d, Products: %d",
		r.Brands.Succeeded, r.Categories.Succeeded, r.Products.Succeeded)
}

type Service struct {
	fixtures   *catalog.FixtureStore
	brands     *brand.Service
	categories *category.Service
	products   *product.Service
}

func NewService(fixtures *catalog.FixtureStore, brands *brand.Service, categories *category.Service, products *product.Service) *Service {
	return &Service{fixtures: fixtures, brands: brands, categories: categories, products: products}
}

// Run imports brands and products as upserts (their fixture ids are stable)
// and categories as inserts. Missing fixture files fail the run as a whole;
// individual row errors only bump the failed counter.
func (s *Service) Run() (Report, error) {
	report := Report{}

	brands, err := s.fixtures.Brands()
	if err != nil {
		return report, err
	}
	for _, b := range brands {
		if err := s.brands.Upsert(b); err != nil {
			report.Brands.Failed++
			continue
		}
		report.Brands.Succeeded++
	}

	for _, b := range brands {
		categories, err := s.fixtures.CategoriesByBrand(b.ID)
		if err != nil {
			return report, err
		}
		for _, cat := range categories {
			cat.ID = 0 // let the store assign identity
			if _, err := s.categories.Create(cat); err != nil {
				report.Categories.Failed++
				continue
			}
			report.Categories.Succeeded++
		}
	}

	products, err := s.fixtures.Products()
	if err != nil {
		return report, err
	}
	for _, p := range products {
		if err := s.products.Upsert(p); err != nil {
			report.Products.Failed++
			continue
		}
		report.Products.Succeeded++
	}

	return report, nil
}
