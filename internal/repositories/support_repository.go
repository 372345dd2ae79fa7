package repositories

import (
	"database/sql"

	intconfig "bustickets/internal/config"
	"bustickets/internal/domain/models"
)

type SupportRepository struct {
	DB *sql.DB
}

func (r SupportRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Insert stores the request and reads the row back so the response carries
// the store-generated created_at.
func (r SupportRepository) Insert(name, email, question string) (models.SupportRequest, error) {
	res, err := r.db().Exec(`
		INSERT INTO support_requests (name, email, question)
		VALUES (?, ?, ?)
	`, name, email, question)
	if err != nil {
		return models.SupportRequest{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.SupportRequest{}, err
	}

	var sr models.SupportRequest
	err = r.db().QueryRow(`
		SELECT id, name, email, question, created_at
		FROM support_requests
		WHERE id = ?
	`, id).Scan(&sr.ID, &sr.Name, &sr.Email, &sr.Question, &sr.CreatedAt)
	if err != nil {
		return models.SupportRequest{}, err
	}
	return sr, nil
}

func (r SupportRepository) List() ([]models.SupportRequest, error) {
	rows, err := r.db().Query(`
		SELECT id, name, email, question, created_at
		FROM support_requests
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.SupportRequest, 0)
	for rows.Next() {
		var sr models.SupportRequest
		if err := rows.Scan(&sr.ID, &sr.Name, &sr.Email, &sr.Question, &sr.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}
