package category

import "strings"

// Category groups item names under a brand. The bilingual item lists are
// stored as a single ", "-delimited string per language, so item text must
// never contain the delimiter itself.
type Category struct {
	ID      int     `json:"id"`
	BrandID string  `json:"brand_id" validate:"required"`
	TitleEN string  `json:"title_en" validate:"required"`
	TitleTH *string `json:"title_th"`
	ItemsEN *string `json:"items_en"`
	ItemsTH *string `json:"items_th"`
}

// ItemDelimiter separates item names inside items_en / items_th.
const ItemDelimiter = ", "

// SplitItems expands a stored item string into the logical item list.
// Empty input yields an empty (non-nil) slice.
func SplitItems(items string) []string {
	if strings.TrimSpace(items) == "" {
		return []string{}
	}
	parts := strings.Split(items, ItemDelimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinItems is the inverse of SplitItems.
func JoinItems(items []string) string {
	return strings.Join(items, ItemDelimiter)
}
