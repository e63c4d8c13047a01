package product

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "brand_id", "category_id", "name_en", "name_th", "description_en", "description_th", "image", "price", "created_at"})
}

func TestPostgresListByCategoryIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := productRows().
		AddRow(1, "mitutoyo", 1, "Caliper", "คาลิปเปอร์", nil, nil, nil, "฿4,500", "2024-01-01").
		AddRow(2, "mitutoyo", 2, "Micrometer", nil, nil, nil, nil, nil, "2024-01-02")
	mock.ExpectQuery("ANY\\(\\$1::int\\[\\]\\)").WithArgs(pq.Array([]int{1, 2})).WillReturnRows(rows)

	products, err := repo.ListByCategoryIDs([]int{1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].NameTH == nil || *products[0].NameTH != "คาลิปเปอร์" {
		t.Fatalf("unexpected name_th: %+v", products[0].NameTH)
	}
	if products[1].Price != nil {
		t.Fatalf("expected nil price for NULL column")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresListByCategoryIDs_EmptyInput(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	// no query is issued for an empty id set
	products, err := repo.ListByCategoryIDs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected empty result, got %d", len(products))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO products").
		WithArgs(nil, 1, "Dial Indicator", nil, nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery("WHERE id =").WithArgs(7).
		WillReturnRows(productRows().AddRow(7, nil, 1, "Dial Indicator", nil, nil, nil, nil, nil, "2024-01-01"))

	p, err := repo.Create(Product{CategoryID: 1, NameEN: "Dial Indicator"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 7 {
		t.Fatalf("expected assigned id 7, got %d", p.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresDelete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM products").WithArgs(99).WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(99); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
