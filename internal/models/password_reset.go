package models

import (
	"time"

	"github.com/google/uuid"
)

// PasswordReset is a one-time reset code issued to a user. A user may hold
// several outstanding rows; the newest unconsumed row matching a presented
// code is the one honored. Codes never expire by time, only via Consumed.
type PasswordReset struct {
	CreatedAt time.Time `db:"created_at"`
	Code      string    `db:"code"`
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Consumed  bool      `db:"consumed"`
}
