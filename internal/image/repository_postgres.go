package image

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	listImagesQuery = `
		SELECT id, url, alt_text, page, created_at::text
		FROM images
		ORDER BY id DESC
	`
	getImageByIDQuery = `
		SELECT id, url, alt_text, page, created_at::text
		FROM images
		WHERE id = $1
	`
	insertImageQuery = `
		INSERT INTO images (url, alt_text, page)
		VALUES ($1,$2,$3)
		RETURNING id
	`
	deleteImageQuery = `DELETE FROM images WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]UploadedImage, error) {
	rows, err := r.db.Query(listImagesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]UploadedImage, 0)
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			continue
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (UploadedImage, error) {
	img, err := scanImage(r.db.QueryRow(getImageByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return UploadedImage{}, ErrNotFound
		}
		return UploadedImage{}, err
	}
	return img, nil
}

func (r *PostgresRepository) Create(img UploadedImage) (UploadedImage, error) {
	var id int
	if err := r.db.QueryRow(insertImageQuery, img.URL, img.AltText, img.Page).Scan(&id); err != nil {
		return UploadedImage{}, err
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteImageQuery, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanImage(scanner rowScanner) (UploadedImage, error) {
	img := UploadedImage{}
	var (
		alt       sql.NullString
		page      sql.NullString
		createdAt sql.NullString
	)
	if err := scanner.Scan(&img.ID, &img.URL, &alt, &page, &createdAt); err != nil {
		return UploadedImage{}, err
	}
	if alt.Valid {
		img.AltText = &alt.String
	}
	if page.Valid {
		img.Page = &page.String
	}
	if createdAt.Valid {
		img.CreatedAt = &createdAt.String
	}
	return img, nil
}
