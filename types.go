package lireddit

import (
	"context"
	"time"
)

// User is the account record owned by the relational persistence layer.
// The engine reads and writes it exclusively through [UserStore] and never
// caches it in-process.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EmailVisibleTo applies the field-level visibility rule: only the record's
// owner sees the real address, every other viewer gets "". viewerID is the
// session-resolved id of the requester (0 when unauthenticated).
func (u *User) EmailVisibleTo(viewerID int64) string {
	if u == nil {
		return ""
	}
	if viewerID == u.ID {
		return u.Email
	}
	return ""
}

// NewUser is the input for [UserStore.Insert]. The password arrives already
// hashed; the store never sees plaintext.
type NewUser struct {
	Username     string
	Email        string
	PasswordHash string
}

// UserStore is the interface callers implement to connect the engine to
// their user database. Lookups return [ErrUserNotFound] (possibly wrapped)
// for missing rows; Insert returns *[ConflictError] on uniqueness
// violations. Any other error is treated as the store being unavailable.
//
// Two registrations racing on the same username are resolved by the
// database's uniqueness constraint, not by any locking in this package; the
// engine only translates the resulting conflict into a field error.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
	Insert(ctx context.Context, input NewUser) (*User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// Mailer delivers password-reset links. It is an external collaborator;
// the engine only hands it the recipient address and the raw token to embed
// in the link.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}

// RegisterInput carries the raw registration fields prior to validation.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// UserResult is the outcome of an auth mutation. Exactly one of User or
// Errors is set. SessionID is non-empty when the operation established a new
// session (register, login, and successful password reset auto-login); the
// transport layer bakes it into the session cookie via
// [Config.SessionCookie].
type UserResult struct {
	User      *User
	SessionID string
	Errors    []FieldError
}
