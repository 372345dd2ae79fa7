package services

import (
	"database/sql"
	"testing"

	"bustickets/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"
)

func newAccountService(t *testing.T) (AccountService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	return AccountService{DB: db}, mock, func() { db.Close() }
}

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	svc, mock, done := newAccountService(t)
	defer done()

	mock.ExpectExec("INSERT INTO users").
		WithArgs("Olena", "olena@example.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(5, 1))

	u, err := svc.Register("Olena", "olena@example.com", "s3cret")
	if err != nil {
		t.Fatalf("register error: %v", err)
	}
	if u.ID != 5 || u.Name != "Olena" || u.Email != "olena@example.com" {
		t.Fatalf("unexpected user payload: %+v", u)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	svc, mock, done := newAccountService(t)
	defer done()

	cases := [][3]string{
		{"", "a@b.c", "pw"},
		{"Olena", "", "pw"},
		{"Olena", "a@b.c", ""},
	}
	for _, tc := range cases {
		if _, err := svc.Register(tc[0], tc[1], tc[2]); !domain.IsValidation(err) {
			t.Fatalf("expected validation error for %v, got %v", tc, err)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("store was touched: %v", err)
	}
}

func TestLoginComparesWithBcrypt(t *testing.T) {
	svc, mock, done := newAccountService(t)
	defer done()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}

	rows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "name", "email", "password_hash"}).
			AddRow(int64(5), "Olena", "olena@example.com", string(hash))
	}

	mock.ExpectQuery("SELECT id, name, email, password_hash").
		WithArgs("olena@example.com").
		WillReturnRows(rows())

	u, err := svc.Login("olena@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	if u.ID != 5 {
		t.Fatalf("unexpected user id %d", u.ID)
	}

	// Near-miss password still fails.
	mock.ExpectQuery("SELECT id, name, email, password_hash").
		WithArgs("olena@example.com").
		WillReturnRows(rows())

	if _, err := svc.Login("olena@example.com", "s3cret "); !domain.IsUnauthorized(err) {
		t.Fatalf("expected Unauthorized for wrong password, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLoginUnknownEmailIsUnauthorized(t *testing.T) {
	svc, mock, done := newAccountService(t)
	defer done()

	mock.ExpectQuery("SELECT id, name, email, password_hash").
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	if _, err := svc.Login("ghost@example.com", "whatever"); !domain.IsUnauthorized(err) {
		t.Fatalf("expected Unauthorized, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
