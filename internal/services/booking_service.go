package services

import (
	"database/sql"
	"errors"
	"fmt"

	intconfig "bustickets/internal/config"
	"bustickets/internal/domain"
	"bustickets/internal/repositories"
	"bustickets/internal/utils"
)

// BookingService owns every mutation of schedule.seats_available. The
// counter plus the set of live ticket rows must always add up to the run's
// capacity, so both booking and cancellation run as single transactions.
type BookingService struct {
	ScheduleRepo repositories.ScheduleRepository
	TicketRepo   repositories.TicketRepository
	DB           *sql.DB
	RequestID    string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) schedules() repositories.ScheduleRepository {
	if s.ScheduleRepo.DB != nil {
		return s.ScheduleRepo
	}
	return repositories.ScheduleRepository{DB: s.db()}
}

func (s BookingService) tickets() repositories.TicketRepository {
	if s.TicketRepo.DB != nil {
		return s.TicketRepo
	}
	return repositories.TicketRepository{DB: s.db()}
}

// BookingInput is one booking request: up to three passengers sharing the
// same contact phone/email, each getting their own ticket row.
type BookingInput struct {
	UserID         int64
	ScheduleID     int64
	PassengerNames []string
	PassengerPhone string
	PassengerEmail string
}

// Book reserves len(PassengerNames) seats atomically: the availability
// check, the counter decrement and the ticket inserts commit together or
// not at all. Returns the new ticket ids in submission order.
func (s BookingService) Book(in BookingInput) ([]int64, error) {
	count := len(in.PassengerNames)
	if count < 1 || count > 3 {
		return nil, domain.ValidationError{Field: "passenger_names", Msg: "Invalid passenger count (1-3)"}
	}
	if in.UserID <= 0 {
		return nil, domain.ValidationError{Field: "user_id", Msg: "invalid id"}
	}
	if in.ScheduleID <= 0 {
		return nil, domain.ValidationError{Field: "schedule_id", Msg: "invalid id"}
	}

	tx, err := s.db().Begin()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	// The row lock serializes concurrent bookings of the same run for the
	// rest of the transaction.
	seats, err := s.schedules().SeatsForUpdateTx(tx, in.ScheduleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundError{Resource: "Schedule"}
		}
		return nil, domain.InternalError{Err: err}
	}
	if seats < count {
		return nil, domain.InsufficientSeatsError{ScheduleID: in.ScheduleID, Requested: count, Available: seats}
	}

	// Conditional decrement as a second guard: if the affected-row count is
	// zero the counter dropped below the request since the read, whatever
	// the isolation level says.
	affected, err := s.schedules().DecrementSeatsTx(tx, in.ScheduleID, count)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	if affected == 0 {
		return nil, domain.InsufficientSeatsError{ScheduleID: in.ScheduleID, Requested: count, Available: seats}
	}

	ids, err := s.tickets().InsertBatchTx(tx, in.UserID, in.ScheduleID, in.PassengerNames, in.PassengerPhone, in.PassengerEmail)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}

	if err := tx.Commit(); err != nil {
		return nil, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "book",
		fmt.Sprintf("schedule_id=%d seats=%d first_ticket_id=%d", in.ScheduleID, count, ids[0]))
	return ids, nil
}

// Cancel removes the ticket and gives its seat back in one transaction, so
// a crash can never leave the counter and the ticket set out of step.
func (s BookingService) Cancel(ticketID int64) error {
	if ticketID <= 0 {
		return domain.ValidationError{Field: "ticket_id", Msg: "invalid id"}
	}

	tx, err := s.db().Begin()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	scheduleID, err := s.tickets().ScheduleIDForUpdateTx(tx, ticketID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "Ticket"}
		}
		return domain.InternalError{Err: err}
	}

	if err := s.tickets().DeleteTx(tx, ticketID); err != nil {
		return domain.InternalError{Err: err}
	}
	if err := s.schedules().IncrementSeatsTx(tx, scheduleID); err != nil {
		return domain.InternalError{Err: err}
	}

	if err := tx.Commit(); err != nil {
		return domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "cancel",
		fmt.Sprintf("ticket_id=%d schedule_id=%d", ticketID, scheduleID))
	return nil
}
