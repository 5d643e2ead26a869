package entities

import "time"

// User represents a user entity in the database
type User struct {
	ID        string    `json:"id"` // Opaque external identifier (upsert mode) or generated UUID (action mode)
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Password  string    `json:"-"` // Don't expose the stored password in JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
