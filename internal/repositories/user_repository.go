package repositories

import (
	"database/sql"

	intconfig "bustickets/internal/config"
	"bustickets/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Insert stores a new user with an already-hashed password. Uniqueness of
// email is enforced by the store constraint, not checked beforehand.
func (r UserRepository) Insert(name, email, passwordHash string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (name, email, password_hash)
		VALUES (?, ?, ?)
	`, name, email, passwordHash)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByEmail returns the public fields plus the stored password hash.
// sql.ErrNoRows passes through for the caller to translate.
func (r UserRepository) GetByEmail(email string) (models.User, string, error) {
	var (
		u    models.User
		hash string
	)
	err := r.db().QueryRow(`
		SELECT id, name, email, password_hash
		FROM users
		WHERE email = ?
	`, email).Scan(&u.ID, &u.Name, &u.Email, &hash)
	if err != nil {
		return models.User{}, "", err
	}
	return u, hash, nil
}

func (r UserRepository) List() ([]models.User, error) {
	rows, err := r.db().Query(`SELECT id, name, email FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
