package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. The password is stored only as a bcrypt hash
// and never leaves the persistence layer in responses.
type User struct {
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	ID           uuid.UUID `db:"id"`
}
