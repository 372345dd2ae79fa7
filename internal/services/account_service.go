package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "bustickets/internal/config"
	"bustickets/internal/domain"
	"bustickets/internal/domain/models"
	"bustickets/internal/repositories"
	"bustickets/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// AccountService handles registration and login. Passwords are stored as
// bcrypt hashes and compared with bcrypt only.
type AccountService struct {
	UserRepo  repositories.UserRepository
	DB        *sql.DB
	RequestID string
}

func (s AccountService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s AccountService) users() repositories.UserRepository {
	if s.UserRepo.DB != nil {
		return s.UserRepo
	}
	return repositories.UserRepository{DB: s.db()}
}

func (s AccountService) Register(name, email, password string) (models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return models.User{}, domain.ValidationError{Msg: "name, email and password are required"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}

	// Email uniqueness rides on the store constraint; the raw constraint
	// error stays server-side.
	id, err := s.users().Insert(name, email, string(hash))
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "could not create user", Err: err}
	}

	utils.LogEvent(s.RequestID, "account", "register", fmt.Sprintf("user_id=%d", id))
	return models.User{ID: id, Name: name, Email: email}, nil
}

func (s AccountService) Login(email, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.User{}, domain.UnauthorizedError{}
	}

	u, hash, err := s.users().GetByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.UnauthorizedError{}
		}
		return models.User{}, domain.InternalError{Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return models.User{}, domain.UnauthorizedError{}
	}

	utils.LogEvent(s.RequestID, "account", "login", fmt.Sprintf("user_id=%d", u.ID))
	return u, nil
}
