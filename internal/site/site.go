// Package site builds the bilingual view models behind the public catalog
// pages: brand list, brand detail, category detail, and product group.
package site

import (
	"github.com/imc-metrology/catalog-backend/internal/brand"
	"github.com/imc-metrology/catalog-backend/internal/category"
	"github.com/imc-metrology/catalog-backend/internal/lang"
	"github.com/imc-metrology/catalog-backend/internal/product"
)

// BrandCard is a brand rendered for the selected language.
type BrandCard struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Logo        *string `json:"logo"`
	CoverImage  *string `json:"cover_image"`
	Description string  `json:"description"`
}

// CategoryView carries a resolved title plus the item list expanded from its
// delimited storage form.
type CategoryView struct {
	ID    int      `json:"id"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

type BrandPage struct {
	Brand      BrandCard      `json:"brand"`
	Categories []CategoryView `json:"categories"`
}

type ProductCard struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
	Price       *string `json:"price"`
}

func brandCard(l lang.Lang, b brand.Brand) BrandCard {
	return BrandCard{
		ID:          b.ID,
		Name:        b.Name,
		Logo:        b.Logo,
		CoverImage:  b.CoverImage,
		Description: resolveOptional(l, b.DescriptionTH, b.DescriptionEN),
	}
}

func categoryView(l lang.Lang, cat category.Category) CategoryView {
	return CategoryView{
		ID:    cat.ID,
		Title: lang.ResolvePtr(l, cat.TitleTH, cat.TitleEN),
		Items: category.SplitItems(resolveOptional(l, cat.ItemsTH, cat.ItemsEN)),
	}
}

func productCard(l lang.Lang, p product.Product) ProductCard {
	return ProductCard{
		ID:          p.ID,
		Name:        lang.ResolvePtr(l, p.NameTH, p.NameEN),
		Description: resolveOptional(l, p.DescriptionTH, p.DescriptionEN),
		Image:       p.Image,
		Price:       p.Price,
	}
}

// resolveOptional handles field pairs where both sides may be absent.
func resolveOptional(l lang.Lang, th, en *string) string {
	enVal := ""
	if en != nil {
		enVal = *en
	}
	return lang.ResolvePtr(l, th, enVal)
}
