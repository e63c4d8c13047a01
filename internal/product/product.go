package product

import "strings"

// Product is a priced, imageable catalog leaf tied to exactly one category.
// Price is a free-form display string conventionally prefixed with the baht
// glyph; NormalizePrice enforces the prefix at save time.
type Product struct {
	ID            int     `json:"id"`
	BrandID       *string `json:"brand_id"`
	CategoryID    int     `json:"category_id" validate:"required"`
	NameEN        string  `json:"name_en" validate:"required"`
	NameTH        *string `json:"name_th"`
	DescriptionEN *string `json:"description_en"`
	DescriptionTH *string `json:"description_th"`
	Image         *string `json:"image"`
	Price         *string `json:"price"`
	CreatedAt     *string `json:"created_at,omitempty"`
}

// CurrencyGlyph prefixes every stored price.
const CurrencyGlyph = "฿"

// NormalizePrice guarantees exactly one leading currency glyph. Idempotent;
// empty prices stay empty.
func NormalizePrice(price string) string {
	p := strings.TrimSpace(price)
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, CurrencyGlyph) {
		return p
	}
	return CurrencyGlyph + p
}
