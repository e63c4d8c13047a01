package image

// UploadedImage is a metadata row for a file stored under the uploads
// directory. URL is the public path the site references, e.g. /uploads/x.png.
type UploadedImage struct {
	ID        int     `json:"id"`
	URL       string  `json:"url"`
	AltText   *string `json:"alt_text"`
	Page      *string `json:"page"`
	CreatedAt *string `json:"created_at,omitempty"`
}
