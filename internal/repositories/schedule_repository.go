package repositories

import (
	"database/sql"

	intconfig "bustickets/internal/config"
	"bustickets/internal/domain/models"
)

type ScheduleRepository struct {
	DB *sql.DB
}

func (r ScheduleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const scheduleColumns = `id, origin, destination, departure_time, operator, price, seats_available`

// TopRoutes returns the five cheapest runs regardless of date or
// availability.
func (r ScheduleRepository) TopRoutes() ([]models.Schedule, error) {
	rows, err := r.db().Query(`
		SELECT ` + scheduleColumns + `
		FROM schedule
		ORDER BY price ASC
		LIMIT 5
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSchedules(rows)
}

// Search matches origin/destination exactly and compares the calendar date
// of departure_time only. Runs with no seats left are filtered out.
func (r ScheduleRepository) Search(origin, destination, date string) ([]models.Schedule, error) {
	rows, err := r.db().Query(`
		SELECT `+scheduleColumns+`
		FROM schedule
		WHERE origin = ?
		  AND destination = ?
		  AND DATE(departure_time) = ?
		  AND seats_available > 0
		ORDER BY departure_time
	`, origin, destination, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSchedules(rows)
}

func (r ScheduleRepository) List() ([]models.Schedule, error) {
	rows, err := r.db().Query(`
		SELECT ` + scheduleColumns + `
		FROM schedule
		ORDER BY departure_time
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSchedules(rows)
}

func (r ScheduleRepository) Insert(s models.Schedule) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO schedule (origin, destination, departure_time, operator, price, seats_available)
		VALUES (?, ?, ?, ?, ?, ?)
	`, s.Origin, s.Destination, s.DepartureTime, s.Operator, s.Price, s.SeatsAvailable)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Delete removes a run. Returns the number of rows removed so callers can
// distinguish a missing id.
func (r ScheduleRepository) Delete(id int64) (int64, error) {
	res, err := r.db().Exec(`DELETE FROM schedule WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// SeatsForUpdateTx reads the availability counter under a row lock held for
// the rest of the transaction. sql.ErrNoRows passes through.
func (r ScheduleRepository) SeatsForUpdateTx(tx *sql.Tx, id int64) (int, error) {
	var seats int
	err := tx.QueryRow(`
		SELECT seats_available
		FROM schedule
		WHERE id = ?
		FOR UPDATE
	`, id).Scan(&seats)
	return seats, err
}

// DecrementSeatsTx decrements the counter only while enough seats remain.
// The affected-row count tells the caller whether the decrement applied.
func (r ScheduleRepository) DecrementSeatsTx(tx *sql.Tx, id int64, count int) (int64, error) {
	res, err := tx.Exec(`
		UPDATE schedule
		SET seats_available = seats_available - ?
		WHERE id = ? AND seats_available >= ?
	`, count, id, count)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r ScheduleRepository) IncrementSeatsTx(tx *sql.Tx, id int64) error {
	_, err := tx.Exec(`
		UPDATE schedule
		SET seats_available = seats_available + 1
		WHERE id = ?
	`, id)
	return err
}

func scanSchedules(rows *sql.Rows) ([]models.Schedule, error) {
	out := make([]models.Schedule, 0)
	for rows.Next() {
		var s models.Schedule
		if err := rows.Scan(&s.ID, &s.Origin, &s.Destination, &s.DepartureTime, &s.Operator, &s.Price, &s.SeatsAvailable); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
