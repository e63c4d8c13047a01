package adminuser

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestList_MissingTableDegradesToEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM admin_users").
		WillReturnError(&pgconn.PgError{Code: "42P01", Message: `relation "admin_users" does not exist`})

	users, err := repo.List()
	if err != nil {
		t.Fatalf("expected empty list on missing table, got error %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected empty list, got %d users", len(users))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestList_MissingTableStringMatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	// some drivers report the condition as a plain error string
	mock.ExpectQuery("FROM admin_users").
		WillReturnError(errors.New(`relation "admin_users" does not exist`))

	users, err := repo.List()
	if err != nil {
		t.Fatalf("expected empty list, got error %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected empty list, got %d users", len(users))
	}
}

func TestList_OtherErrorsPropagate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM admin_users").WillReturnError(errors.New("connection refused"))

	if _, err := repo.List(); err == nil {
		t.Fatalf("expected error to propagate")
	}
}

func TestCreate_LowercasesEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"id", "email", "created_at"}).
		AddRow(1, "new@imc.co.th", "2024-01-01")
	mock.ExpectQuery("INSERT INTO admin_users").WithArgs("new@imc.co.th").WillReturnRows(rows)

	u, err := repo.Create("New@IMC.co.th")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Email != "new@imc.co.th" {
		t.Fatalf("unexpected email: %q", u.Email)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
