package brand

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	listBrandsQuery = `
		SELECT id, name, logo, cover_image, description_th, description_en, created_at::text
		FROM brands
		ORDER BY name
	`
	getBrandByIDQuery = `
		SELECT id, name, logo, cover_image, description_th, description_en, created_at::text
		FROM brands
		WHERE id = $1
	`
	insertBrandQuery = `
		INSERT INTO brands (id, name, logo, cover_image, description_th, description_en)
		VALUES ($1,$2,$3,$4,$5,$6)
	`
	updateBrandQuery = `
		UPDATE brands
		SET name = $1,
			logo = $2,
			cover_image = $3,
			description_th = $4,
			description_en = $5
		WHERE id = $6
	`
	upsertBrandQuery = `
		INSERT INTO brands (id, name, logo, cover_image, description_th, description_en)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			logo = EXCLUDED.logo,
			cover_image = EXCLUDED.cover_image,
			description_th = EXCLUDED.description_th,
			description_en = EXCLUDED.description_en
	`
	deleteBrandQuery = `DELETE FROM brands WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Brand, error) {
	rows, err := r.db.Query(listBrandsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Brand, 0)
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			continue
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id string) (Brand, error) {
	b, err := scanBrand(r.db.QueryRow(getBrandByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Brand{}, ErrNotFound
		}
		return Brand{}, err
	}
	return b, nil
}

func (r *PostgresRepository) Create(b Brand) (Brand, error) {
	if _, err := r.db.Exec(insertBrandQuery, b.ID, b.Name, b.Logo, b.CoverImage, b.DescriptionTH, b.DescriptionEN); err != nil {
		return Brand{}, err
	}
	return r.GetByID(b.ID)
}

func (r *PostgresRepository) Update(id string, b Brand) (Brand, error) {
	result, err := r.db.Exec(updateBrandQuery, b.Name, b.Logo, b.CoverImage, b.DescriptionTH, b.DescriptionEN, id)
	if err != nil {
		return Brand{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Brand{}, err
	}
	if affected == 0 {
		return Brand{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id string) error {
	result, err := r.db.Exec(deleteBrandQuery, id)
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

func (r *PostgresRepository) Upsert(b Brand) error {
	_, err := r.db.Exec(upsertBrandQuery, b.ID, b.Name, b.Logo, b.CoverImage, b.DescriptionTH, b.DescriptionEN)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBrand(scanner rowScanner) (Brand, error) {
	b := Brand{}
	var (
		logo      sql.NullString
		cover     sql.NullString
		descTH    sql.NullString
		descEN    sql.NullString
		createdAt sql.NullString
	)
	if err := scanner.Scan(&b.ID, &b.Name, &logo, &cover, &descTH, &descEN, &createdAt); err != nil {
		return Brand{}, err
	}
	if logo.Valid {
		b.Logo = &logo.String
	}
	if cover.Valid {
		b.CoverImage = &cover.String
	}
	if descTH.Valid {
		b.DescriptionTH = &descTH.String
	}
	if descEN.Valid {
		b.DescriptionEN = &descEN.String
	}
	if createdAt.Valid {
		b.CreatedAt = &createdAt.String
	}
	return b, nil
}
