package lireddit

import (
	"context"
	"time"

	"github.com/VivianLin61/lireddit-backend/internal"
	"github.com/VivianLin61/lireddit-backend/password"
	"github.com/VivianLin61/lireddit-backend/session"
)

const (
	auditEventRegisterSuccess      = "register_success"
	auditEventRegisterConflict     = "register_conflict"
	auditEventLoginSuccess         = "login_success"
	auditEventLoginFailure         = "login_failure"
	auditEventLogoutSession        = "logout_session"
	auditEventPasswordResetRequest = "password_reset_request"
	auditEventPasswordResetConfirm = "password_reset_confirm"
)

// Engine orchestrates the auth use cases over the session store, reset-token
// store, credential hasher, and the caller-supplied [UserStore]. Construct
// it through [Builder.Build]; after that it is immutable and safe for
// concurrent use.
type Engine struct {
	config       Config
	sessionStore *session.Store
	resetStore   *resetStore
	passwordHash *password.Hasher
	users        UserStore
	mailer       Mailer
	audit        *auditDispatcher
	metrics      *Metrics
}

// Close flushes and stops the audit dispatcher. It does not close the Redis
// client or the user store; both are owned by the caller.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// AuditDropped reports how many audit events were discarded because the
// dispatcher buffer was full.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot returns a point-in-time copy of all counters. Exporters
// under metrics/export read from here.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters: map[MetricID]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

func (e *Engine) emitAudit(
	ctx context.Context,
	eventType string,
	success bool,
	userID int64,
	sessionID string,
	err error,
) {
	if e == nil || e.audit == nil {
		return
	}

	event := AuditEvent{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		UserID:    userID,
		SessionID: sessionID,
		IP:        clientIPFromContext(ctx),
		Success:   success,
	}
	if err != nil {
		event.Error = err.Error()
	}

	e.audit.Emit(ctx, event)
}

// createSession mints a fresh session id and persists the record with the
// configured long TTL. Returns the id for the transport layer to bake into
// the session cookie.
func (e *Engine) createSession(ctx context.Context, userID int64) (string, error) {
	sid, err := internal.NewSessionID()
	if err != nil {
		return "", err
	}

	sess := &session.Session{
		SessionID: sid.String(),
		UserID:    userID,
		CreatedAt: time.Now().Unix(),
	}
	if err := e.sessionStore.Save(ctx, sess, e.config.Session.TTL); err != nil {
		return "", err
	}

	e.metricInc(MetricSessionCreated)
	return sess.SessionID, nil
}
