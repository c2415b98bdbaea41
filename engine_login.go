package lireddit

import (
	"context"
	"errors"
	"strings"

	"github.com/VivianLin61/lireddit-backend/session"
)

// Login authenticates by username or email and establishes a session. The
// identifier is treated as an email exactly when it contains an '@'.
//
// Unknown identifiers and wrong passwords produce distinct field errors
// ("that username does not exist" vs "incorrect password"). This reveals
// account existence; the product inherited that contract from the original
// API and it is preserved deliberately.
func (e *Engine) Login(ctx context.Context, usernameOrEmail, plaintext string) (*UserResult, error) {
	if e == nil || e.users == nil {
		return nil, ErrEngineNotReady
	}

	var (
		user *User
		err  error
	)
	if strings.Contains(usernameOrEmail, "@") {
		user, err = e.users.FindByEmail(ctx, usernameOrEmail)
	} else {
		user, err = e.users.FindByUsername(ctx, usernameOrEmail)
	}
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			e.metricInc(MetricLoginFailure)
			e.emitAudit(ctx, auditEventLoginFailure, false, 0, "", ErrUserNotFound)
			return &UserResult{Errors: fieldError("usernameOrEmail", "that username does not exist")}, nil
		}
		return nil, storeFailure(err)
	}

	if !e.passwordHash.Verify(plaintext, user.PasswordHash) {
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, user.ID, "", errors.New("incorrect password"))
		return &UserResult{Errors: fieldError("password", "incorrect password")}, nil
	}

	sid, err := e.createSession(ctx, user.ID)
	if err != nil {
		return nil, storeFailure(err)
	}

	e.metricInc(MetricLoginSuccess)
	e.emitAudit(ctx, auditEventLoginSuccess, true, user.ID, sid, nil)

	return &UserResult{User: user, SessionID: sid}, nil
}

// Logout destroys the session record. It reports false only when the store
// delete failed; destroying an unknown or already-expired session succeeds.
// The transport layer clears the client cookie in both cases: a stuck
// cookie referencing a dead session resolves to absent forever.
func (e *Engine) Logout(ctx context.Context, sessionID string) bool {
	if e == nil || e.sessionStore == nil {
		return false
	}
	if sessionID == "" {
		return true
	}

	if err := e.sessionStore.Delete(ctx, sessionID); err != nil {
		e.emitAudit(ctx, auditEventLogoutSession, false, 0, sessionID, ErrSessionInvalidationFailed)
		return false
	}

	e.metricInc(MetricLogout)
	e.metricInc(MetricSessionDestroyed)
	e.emitAudit(ctx, auditEventLogoutSession, true, 0, sessionID, nil)
	return true
}

// Me resolves the session to its user. It is a pure read: no store
// mutation, no TTL refresh. Returns (nil, nil) when the session is missing,
// expired, or references a user that no longer exists.
func (e *Engine) Me(ctx context.Context, sessionID string) (*User, error) {
	if e == nil || e.users == nil {
		return nil, ErrEngineNotReady
	}
	if sessionID == "" {
		return nil, nil
	}

	sess, err := e.sessionStore.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, nil
		}
		return nil, storeFailure(err)
	}

	user, err := e.users.FindByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, nil
		}
		return nil, storeFailure(err)
	}

	return user, nil
}
