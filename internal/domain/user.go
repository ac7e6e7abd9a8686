package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Email is stored lowercased and is unique.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session is a server-side login session. The ID doubles as the jti claim
// of the access token that references it. Stage is the only mutable field.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Email     string
	Stage     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// SessionContext is the request-scoped identity passed to every service
// call: who the caller is and which stage their requests are scoped to.
type SessionContext struct {
	UserID uuid.UUID
	Email  string
	Stage  string
}
