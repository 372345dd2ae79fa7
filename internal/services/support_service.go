package services

import (
	"database/sql"
	"strings"

	intconfig "bustickets/internal/config"
	"bustickets/internal/domain"
	"bustickets/internal/domain/models"
	"bustickets/internal/repositories"
)

// SupportService is an append-only log of contact-form submissions,
// independent of booking.
type SupportService struct {
	SupportRepo repositories.SupportRepository
	DB          *sql.DB
}

func (s SupportService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s SupportService) requests() repositories.SupportRepository {
	if s.SupportRepo.DB != nil {
		return s.SupportRepo
	}
	return repositories.SupportRepository{DB: s.db()}
}

func (s SupportService) Create(name, email, message string) (models.SupportRequest, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)
	if name == "" || email == "" || message == "" {
		return models.SupportRequest{}, domain.ValidationError{Msg: "name, email and message are required"}
	}

	sr, err := s.requests().Insert(name, email, message)
	if err != nil {
		return models.SupportRequest{}, domain.InternalError{Err: err}
	}
	return sr, nil
}

func (s SupportService) List() ([]models.SupportRequest, error) {
	out, err := s.requests().List()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}
