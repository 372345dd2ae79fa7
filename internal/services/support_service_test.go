package services

import (
	"testing"
	"time"

	"bustickets/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSupportCreateRejectsMissingFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	svc := SupportService{DB: db}

	cases := [][3]string{
		{"", "a@b.c", "help"},
		{"Ivan", "", "help"},
		{"Ivan", "a@b.c", "   "},
	}
	for _, tc := range cases {
		if _, err := svc.Create(tc[0], tc[1], tc[2]); !domain.IsValidation(err) {
			t.Fatalf("expected validation error for %v, got %v", tc, err)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("store was touched: %v", err)
	}
}

func TestSupportCreateReturnsStoredRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	svc := SupportService{DB: db}

	created := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO support_requests").
		WithArgs("Ivan", "ivan@example.com", "Where is my bus?").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectQuery("FROM support_requests").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "question", "created_at"}).
			AddRow(int64(3), "Ivan", "ivan@example.com", "Where is my bus?", created))

	sr, err := svc.Create("Ivan", "ivan@example.com", "Where is my bus?")
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if sr.ID != 3 || sr.Question != "Where is my bus?" || !sr.CreatedAt.Equal(created) {
		t.Fatalf("unexpected request: %+v", sr)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
