package auth

import (
	"database/sql"
	"strings"
)

type PostgresAccountRepository struct {
	db *sql.DB
}

const getAccountByEmailQuery = `
	SELECT id, email, password
	FROM admin_accounts
	WHERE email = $1
`

func NewPostgresAccountRepository(db *sql.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

func (r *PostgresAccountRepository) GetByEmail(email string) (Account, error) {
	a := Account{}
	err := r.db.QueryRow(getAccountByEmailQuery, strings.ToLower(email)).Scan(&a.ID, &a.Email, &a.PasswordHash)
	if err != nil {
		if err == sql.ErrNoRows {
			return Account{}, ErrNotFound
		}
		return Account{}, err
	}
	return a, nil
}
