package models

import "time"

// SupportRequest is an append-only record from the contact form.
type SupportRequest struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Question  string    `json:"question"`
	CreatedAt time.Time `json:"created_at"`
}
