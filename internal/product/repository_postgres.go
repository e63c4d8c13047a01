package product

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listProductsQuery = `
		SELECT id, brand_id, category_id, name_en, name_th, description_en, description_th, image, price, created_at::text
		FROM products
		ORDER BY id
	`
	getProductByIDQuery = `
		SELECT id, brand_id, category_id, name_en, name_th, description_en, description_th, image, price, created_at::text
		FROM products
		WHERE id = $1
	`
	listProductsByCategoryQuery = `
		SELECT id, brand_id, category_id, name_en, name_th, description_en, description_th, image, price, created_at::text
		FROM products
		WHERE category_id = $1
		ORDER BY id
	`
	listProductsByCategoriesQuery = `
		SELECT id, brand_id, category_id, name_en, name_th, description_en, description_th, image, price, created_at::text
		FROM products
		WHERE category_id = ANY($1::int[])
		ORDER BY id
	`
	insertProductQuery = `
		INSERT INTO products (brand_id, category_id, name_en, name_th, description_en, description_th, image, price)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`
	updateProductQuery = `
		UPDATE products
		SET brand_id = $1,
			category_id = $2,
			name_en = $3,
			name_th = $4,
			description_en = $5,
			description_th = $6,
			image = $7,
			price = $8
		WHERE id = $9
	`
	upsertProductQuery = `
		INSERT INTO products (id, brand_id, category_id, name_en, name_th, description_en, description_th, image, price)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO UPDATE
		SET brand_id = EXCLUDED.brand_id,
			category_id = EXCLUDED.category_id,
			name_en = EXCLUDED.name_en,
			name_th = EXCLUDED.name_th,
			description_en = EXCLUDED.description_en,
			description_th = EXCLUDED.description_th,
			image = EXCLUDED.image,
			price = EXCLUDED.price
	`
	deleteProductQuery = `DELETE FROM products WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Product, error) {
	return r.queryMany(listProductsQuery)
}

func (r *PostgresRepository) ListByCategoryID(categoryID int) ([]Product, error) {
	return r.queryMany(listProductsByCategoryQuery, categoryID)
}

func (r *PostgresRepository) ListByCategoryIDs(ids []int) ([]Product, error) {
	if len(ids) == 0 {
		return []Product{}, nil
	}
	return r.queryMany(listProductsByCategoriesQuery, pq.Array(ids))
}

func (r *PostgresRepository) queryMany(query string, args ...any) ([]Product, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(getProductByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	var id int
	err := r.db.QueryRow(insertProductQuery,
		p.BrandID, p.CategoryID, p.NameEN, p.NameTH,
		p.DescriptionEN, p.DescriptionTH, p.Image, p.Price,
	).Scan(&id)
	if err != nil {
		return Product{}, err
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Update(id int, p Product) (Product, error) {
	result, err := r.db.Exec(updateProductQuery,
		p.BrandID, p.CategoryID, p.NameEN, p.NameTH,
		p.DescriptionEN, p.DescriptionTH, p.Image, p.Price, id,
	)
	if err != nil {
		return Product{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Product{}, err
	}
	if affected == 0 {
		return Product{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteProductQuery, id)
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

func (r *PostgresRepository) Upsert(p Product) error {
	_, err := r.db.Exec(upsertProductQuery,
		p.ID, p.BrandID, p.CategoryID, p.NameEN, p.NameTH,
		p.DescriptionEN, p.DescriptionTH, p.Image, p.Price,
	)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(scanner rowScanner) (Product, error) {
	p := Product{}
	var (
		brandID   sql.NullString
		nameTH    sql.NullString
		descEN    sql.NullString
		descTH    sql.NullString
		image     sql.NullString
		price     sql.NullString
		createdAt sql.NullString
	)
	if err := scanner.Scan(&p.ID, &brandID, &p.CategoryID, &p.NameEN, &nameTH, &descEN, &descTH, &image, &price, &createdAt); err != nil {
		return Product{}, err
	}
	if brandID.Valid {
		p.BrandID = &brandID.String
	}
	if nameTH.Valid {
		p.NameTH = &nameTH.String
	}
	if descEN.Valid {
		p.DescriptionEN = &descEN.String
	}
	if descTH.Valid {
		p.DescriptionTH = &descTH.String
	}
	if image.Valid {
		p.Image = &image.String
	}
	if price.Valid {
		p.Price = &price.String
	}
	if createdAt.Valid {
		p.CreatedAt = &createdAt.String
	}
	return p, nil
}
