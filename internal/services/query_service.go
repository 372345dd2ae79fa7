package services

import (
	"database/sql"
	"errors"

	intconfig "bustickets/internal/config"
	"bustickets/internal/domain"
	"bustickets/internal/domain/models"
	"bustickets/internal/repositories"
)

// QueryService bundles the read-only lookups. No side effects anywhere.
type QueryService struct {
	ScheduleRepo repositories.ScheduleRepository
	TicketRepo   repositories.TicketRepository
	DB           *sql.DB
}

func (s QueryService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s QueryService) schedules() repositories.ScheduleRepository {
	if s.ScheduleRepo.DB != nil {
		return s.ScheduleRepo
	}
	return repositories.ScheduleRepository{DB: s.db()}
}

func (s QueryService) tickets() repositories.TicketRepository {
	if s.TicketRepo.DB != nil {
		return s.TicketRepo
	}
	return repositories.TicketRepository{DB: s.db()}
}

func (s QueryService) TopRoutes() ([]models.Schedule, error) {
	out, err := s.schedules().TopRoutes()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

// Search returns runs on the exact origin/destination pair departing on the
// given calendar date. A date matching nothing yields an empty list.
func (s QueryService) Search(origin, destination, date string) ([]models.Schedule, error) {
	out, err := s.schedules().Search(origin, destination, date)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s QueryService) TicketsForUser(userID int64) ([]models.TicketDetail, error) {
	if userID <= 0 {
		return nil, domain.ValidationError{Field: "user_id", Msg: "invalid id"}
	}
	out, err := s.tickets().ListByUser(userID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s QueryService) TicketByID(id int64) (models.TicketDetail, error) {
	if id <= 0 {
		return models.TicketDetail{}, domain.ValidationError{Field: "ticket_id", Msg: "invalid id"}
	}
	d, err := s.tickets().GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TicketDetail{}, domain.NotFoundError{Resource: "Ticket"}
		}
		return models.TicketDetail{}, domain.InternalError{Err: err}
	}
	return d, nil
}
