package services

import (
	"database/sql"
	"testing"
	"time"

	"bustickets/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func newQueryService(t *testing.T) (QueryService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	return QueryService{DB: db}, mock, func() { db.Close() }
}

func scheduleRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "origin", "destination", "departure_time", "operator", "price", "seats_available"})
}

func TestTopRoutesKeepsPriceOrder(t *testing.T) {
	svc, mock, done := newQueryService(t)
	defer done()

	dep := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)
	mock.ExpectQuery("ORDER BY price ASC").
		WillReturnRows(scheduleRows().
			AddRow(int64(3), "Kyiv", "Lviv", dep, "FastBus", 250.0, 12).
			AddRow(int64(1), "Kyiv", "Odesa", dep, "SlowBus", 300.0, 0))

	out, err := svc.TopRoutes()
	if err != nil {
		t.Fatalf("top routes error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 schedules, got %d", len(out))
	}
	if out[0].Price > out[1].Price {
		t.Fatalf("rows reordered: %+v", out)
	}
	if out[0].ID != 3 || out[0].Origin != "Kyiv" || out[0].SeatsAvailable != 12 {
		t.Fatalf("unexpected first schedule: %+v", out[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSearchUnmatchedDateReturnsEmptyListNotError(t *testing.T) {
	svc, mock, done := newQueryService(t)
	defer done()

	mock.ExpectQuery("FROM schedule").
		WithArgs("Kyiv", "Lviv", "1999-01-01").
		WillReturnRows(scheduleRows())

	out, err := svc.Search("Kyiv", "Lviv", "1999-01-01")
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty list, got %v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTicketsForUserJoinsScheduleDetails(t *testing.T) {
	svc, mock, done := newQueryService(t)
	defer done()

	dep := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)
	bought := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("JOIN schedule").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "passenger_name", "passenger_phone", "passenger_email", "purchase_time",
			"origin", "destination", "departure_time", "operator", "price",
		}).AddRow(int64(11), "Anna", "0501", "a@b.c", bought, "Kyiv", "Lviv", dep, "FastBus", 250.0))

	out, err := svc.TicketsForUser(2)
	if err != nil {
		t.Fatalf("tickets error: %v", err)
	}
	if len(out) != 1 || out[0].Origin != "Kyiv" || out[0].PassengerName != "Anna" {
		t.Fatalf("unexpected tickets: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTicketByIDUnknownIsNotFound(t *testing.T) {
	svc, mock, done := newQueryService(t)
	defer done()

	mock.ExpectQuery("JOIN schedule").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	if _, err := svc.TicketByID(404); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
