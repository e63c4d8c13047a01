package adminuser

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listAdminUsersQuery  = `SELECT id, email, created_at::text FROM admin_users ORDER BY id`
	insertAdminUserQuery = `INSERT INTO admin_users (email) VALUES ($1) RETURNING id, email, created_at::text`
	deleteAdminUserQuery = `DELETE FROM admin_users WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]AdminUser, error) {
	rows, err := r.db.Query(listAdminUsersQuery)
	if err != nil {
		// before first-time setup the table may simply not exist yet; admin
		// login depends on this call succeeding, so degrade to an empty list
		if isUndefinedTable(err) {
			return []AdminUser{}, nil
		}
		return nil, err
	}
	defer rows.Close()

	out := make([]AdminUser, 0)
	for rows.Next() {
		u, err := scanAdminUser(rows)
		if err != nil {
			continue
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Create(email string) (AdminUser, error) {
	u, err := scanAdminUser(r.db.QueryRow(insertAdminUserQuery, strings.ToLower(email)))
	if err != nil {
		return AdminUser{}, err
	}
	return u, nil
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteAdminUserQuery, id)
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

// isUndefinedTable reports whether err is Postgres undefined_table (42P01).
// The string check covers drivers that do not surface a *pgconn.PgError.
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "42P01"
	}
	return strings.Contains(err.Error(), "does not exist")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAdminUser(scanner rowScanner) (AdminUser, error) {
	u := AdminUser{}
	var createdAt sql.NullString
	if err := scanner.Scan(&u.ID, &u.Email, &createdAt); err != nil {
		return AdminUser{}, err
	}
	if createdAt.Valid {
		u.CreatedAt = &createdAt.String
	}
	return u, nil
}
