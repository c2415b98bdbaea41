package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	lireddit "github.com/VivianLin61/lireddit-backend"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

// Store implements [lireddit.UserStore] against the users table. Schema and
// migrations live with the owning service; this adapter only issues queries
// and decides, at the boundary, how driver errors map onto the engine's
// typed errors.
type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

type userRow struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r userRow) toUser() *lireddit.User {
	return &lireddit.User{
		ID:           r.ID,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (s *Store) FindByUsername(ctx context.Context, username string) (*lireddit.User, error) {
	const q = `SELECT id, username, email, password_hash, created_at, updated_at
		FROM users WHERE username = $1`
	return s.findOne(ctx, q, username)
}

func (s *Store) FindByEmail(ctx context.Context, email string) (*lireddit.User, error) {
	const q = `SELECT id, username, email, password_hash, created_at, updated_at
		FROM users WHERE email = $1`
	return s.findOne(ctx, q, email)
}

func (s *Store) FindByID(ctx context.Context, id int64) (*lireddit.User, error) {
	const q = `SELECT id, username, email, password_hash, created_at, updated_at
		FROM users WHERE id = $1`
	return s.findOne(ctx, q, id)
}

func (s *Store) findOne(ctx context.Context, query string, arg any) (*lireddit.User, error) {
	var row userRow
	if err := s.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, lireddit.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return row.toUser(), nil
}

// Insert creates the user and returns the stored row. Uniqueness races are
// resolved here by the database constraint; a violation comes back as
// *lireddit.ConflictError naming the losing field.
func (s *Store) Insert(ctx context.Context, input lireddit.NewUser) (*lireddit.User, error) {
	const q = `INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, username, email, password_hash, created_at, updated_at`

	var row userRow
	err := s.db.QueryRowxContext(ctx, q,
		input.Username,
		input.Email,
		input.PasswordHash,
	).StructScan(&row)
	if err != nil {
		if field, ok := uniqueViolationField(err); ok {
			return nil, &lireddit.ConflictError{Field: field}
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return row.toUser(), nil
}

func (s *Store) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	const q = `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`

	res, err := s.db.ExecContext(ctx, q, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if affected == 0 {
		return lireddit.ErrUserNotFound
	}
	return nil
}

// uniqueViolationField inspects a driver error and, for unique-constraint
// violations, names the conflicting field from the constraint identifier.
// Constraints not mentioning "email" are attributed to username, which also
// covers legacy constraint names predating the email index.
func uniqueViolationField(err error) (string, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != pqUniqueViolation {
		return "", false
	}
	if strings.Contains(pqErr.Constraint, "email") {
		return "email", true
	}
	return "username", true
}
