package repositories

import (
	"database/sql"
	"strings"

	intconfig "bustickets/internal/config"
	"bustickets/internal/domain/models"
)

type TicketRepository struct {
	DB *sql.DB
}

func (r TicketRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const ticketDetailColumns = `
		t.id, t.passenger_name, t.passenger_phone, t.passenger_email, t.purchase_time,
		s.origin, s.destination, s.departure_time, s.operator, s.price`

// InsertBatchTx inserts one ticket row per passenger in a single statement
// and returns the generated ids in insertion order. With InnoDB the
// auto-increment ids of a multi-row insert are contiguous, so the ids are
// LastInsertId through LastInsertId+n-1.
func (r TicketRepository) InsertBatchTx(tx *sql.Tx, userID, scheduleID int64, names []string, phone, email string) ([]int64, error) {
	placeholders := make([]string, 0, len(names))
	args := make([]any, 0, len(names)*5)
	for _, name := range names {
		placeholders = append(placeholders, "(?, ?, ?, ?, ?)")
		args = append(args, userID, scheduleID, name, phone, email)
	}

	res, err := tx.Exec(`
		INSERT INTO tickets (user_id, schedule_id, passenger_name, passenger_phone, passenger_email)
		VALUES `+strings.Join(placeholders, ","), args...)
	if err != nil {
		return nil, err
	}

	firstID, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(names))
	for i := range ids {
		ids[i] = firstID + int64(i)
	}
	return ids, nil
}

// ScheduleIDForUpdateTx locks the ticket row and returns its schedule
// reference. sql.ErrNoRows passes through.
func (r TicketRepository) ScheduleIDForUpdateTx(tx *sql.Tx, ticketID int64) (int64, error) {
	var scheduleID int64
	err := tx.QueryRow(`
		SELECT schedule_id
		FROM tickets
		WHERE id = ?
		FOR UPDATE
	`, ticketID).Scan(&scheduleID)
	return scheduleID, err
}

func (r TicketRepository) DeleteTx(tx *sql.Tx, ticketID int64) error {
	_, err := tx.Exec(`DELETE FROM tickets WHERE id = ?`, ticketID)
	return err
}

// ListByUser returns the user's tickets joined with schedule details, most
// recent purchase first.
func (r TicketRepository) ListByUser(userID int64) ([]models.TicketDetail, error) {
	rows, err := r.db().Query(`
		SELECT `+ticketDetailColumns+`
		FROM tickets t
		JOIN schedule s ON t.schedule_id = s.id
		WHERE t.user_id = ?
		ORDER BY t.purchase_time DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTicketDetails(rows)
}

// GetByID returns one ticket joined with schedule details. sql.ErrNoRows
// passes through.
func (r TicketRepository) GetByID(id int64) (models.TicketDetail, error) {
	var d models.TicketDetail
	err := r.db().QueryRow(`
		SELECT `+ticketDetailColumns+`
		FROM tickets t
		JOIN schedule s ON t.schedule_id = s.id
		WHERE t.id = ?
	`, id).Scan(
		&d.ID, &d.PassengerName, &d.PassengerPhone, &d.PassengerEmail, &d.PurchaseTime,
		&d.Origin, &d.Destination, &d.DepartureTime, &d.Operator, &d.Price,
	)
	if err != nil {
		return models.TicketDetail{}, err
	}
	return d, nil
}

// ListAll returns raw ticket rows for the admin surface.
func (r TicketRepository) ListAll() ([]models.Ticket, error) {
	rows, err := r.db().Query(`
		SELECT id, user_id, schedule_id, passenger_name, passenger_phone, passenger_email, purchase_time
		FROM tickets
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Ticket, 0)
	for rows.Next() {
		var t models.Ticket
		if err := rows.Scan(&t.ID, &t.UserID, &t.ScheduleID, &t.PassengerName, &t.PassengerPhone, &t.PassengerEmail, &t.PurchaseTime); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func scanTicketDetails(rows *sql.Rows) ([]models.TicketDetail, error) {
	out := make([]models.TicketDetail, 0)
	for rows.Next() {
		var d models.TicketDetail
		if err := rows.Scan(
			&d.ID, &d.PassengerName, &d.PassengerPhone, &d.PassengerEmail, &d.PurchaseTime,
			&d.Origin, &d.Destination, &d.DepartureTime, &d.Operator, &d.Price,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
