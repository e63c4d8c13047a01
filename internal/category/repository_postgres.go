package category

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	listCategoriesByBrandQuery = `
		SELECT id, brand_id, title_en, title_th, items_en, items_th
		FROM categories
		WHERE brand_id = $1
		ORDER BY id
	`
	getCategoryByIDQuery = `
		SELECT id, brand_id, title_en, title_th, items_en, items_th
		FROM categories
		WHERE id = $1
	`
	insertCategoryQuery = `
		INSERT INTO categories (brand_id, title_en, title_th, items_en, items_th)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`
	updateCategoryQuery = `
		UPDATE categories
		SET brand_id = $1,
			title_en = $2,
			title_th = $3,
			items_en = $4,
			items_th = $5
		WHERE id = $6
	`
	deleteCategoryQuery = `DELETE FROM categories WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByBrand(brandID string) ([]Category, error) {
	rows, err := r.db.Query(listCategoriesByBrandQuery, brandID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			continue
		}
		out = append(out, cat)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Category, error) {
	cat, err := scanCategory(r.db.QueryRow(getCategoryByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Category{}, ErrNotFound
		}
		return Category{}, err
	}
	return cat, nil
}

func (r *PostgresRepository) Create(cat Category) (Category, error) {
	var id int
	err := r.db.QueryRow(insertCategoryQuery, cat.BrandID, cat.TitleEN, cat.TitleTH, cat.ItemsEN, cat.ItemsTH).Scan(&id)
	if err != nil {
		return Category{}, err
	}
	cat.ID = id
	return cat, nil
}

func (r *PostgresRepository) Update(id int, cat Category) (Category, error) {
	result, err := r.db.Exec(updateCategoryQuery, cat.BrandID, cat.TitleEN, cat.TitleTH, cat.ItemsEN, cat.ItemsTH, id)
	if err != nil {
		return Category{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Category{}, err
	}
	if affected == 0 {
		return Category{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteCategoryQuery, id)
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

func scanCategory(scanner rowScanner) (Category, error) {
	cat := Category{}
	var (
		titleTH sql.NullString
		itemsEN sql.NullString
		itemsTH sql.NullString
	)
	if err := scanner.Scan(&cat.ID, &cat.BrandID, &cat.TitleEN, &titleTH, &itemsEN, &itemsTH); err != nil {
		return Category{}, err
	}
	if titleTH.Valid {
		cat.TitleTH = &titleTH.String
	}
	if itemsEN.Valid {
		cat.ItemsEN = &itemsEN.String
	}
	if itemsTH.Valid {
		cat.ItemsTH = &itemsTH.String
	}
	return cat, nil
}
