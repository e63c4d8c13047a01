package brand

// Brand is a supplier/manufacturer whose catalog is browsed as a tree of
// categories and products. The id is a human-assigned slug, not a serial.
// JSON tags use snake_case to match the wire format consumed by the site.
type Brand struct {
	ID            string  `json:"id" validate:"required,max=64"`
	Name          string  `json:"name" validate:"required"`
	Logo          *string `json:"logo"`
	CoverImage    *string `json:"cover_image"`
	DescriptionTH *string `json:"description_th"`
	DescriptionEN *string `json:"description_en"`
	CreatedAt     *string `json:"created_at,omitempty"`
}
