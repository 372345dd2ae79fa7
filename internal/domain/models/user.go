package models

// User carries only the public fields; the password hash never leaves the
// repository layer.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
