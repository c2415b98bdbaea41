package lireddit

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// RequestPasswordReset issues a single-use reset token for the account
// behind email and hands it to the mailer. The outcome is identical whether
// or not the account exists, so an unauthenticated caller cannot enumerate
// accounts; only infrastructure failures surface as errors.
func (e *Engine) RequestPasswordReset(ctx context.Context, email string) error {
	if e == nil || e.users == nil {
		return ErrEngineNotReady
	}

	user, err := e.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// Report success without issuing anything.
			e.metricInc(MetricPasswordResetRequest)
			e.emitAudit(ctx, auditEventPasswordResetRequest, true, 0, "", nil)
			return nil
		}
		return storeFailure(err)
	}

	token := uuid.NewString()
	if err := e.resetStore.Save(ctx, token, user.ID, e.config.PasswordReset.TTL); err != nil {
		return err
	}

	if e.mailer != nil {
		if err := e.mailer.SendPasswordReset(ctx, user.Email, token); err != nil {
			// The token is stored and will expire naturally; the caller can
			// safely retry the whole request.
			return fmt.Errorf("send password reset mail: %w", err)
		}
	}

	e.metricInc(MetricPasswordResetRequest)
	e.emitAudit(ctx, auditEventPasswordResetRequest, true, user.ID, "", nil)
	return nil
}

// ChangePassword redeems a reset token: token lookup, user lookup, password
// policy, persist the new hash, delete the token, then auto-login. Each step
// short-circuits the rest; the token is deleted only after the password
// write succeeded, so a failed persistence leaves the token redeemable for
// a retry. Deletion last is the single-use guarantee: a successfully
// redeemed token can never be redeemed again.
func (e *Engine) ChangePassword(ctx context.Context, token, newPassword string) (*UserResult, error) {
	if e == nil || e.users == nil {
		return nil, ErrEngineNotReady
	}

	userID, err := e.resetStore.Get(ctx, token)
	if err != nil {
		if errors.Is(err, errResetNotFound) {
			e.metricInc(MetricPasswordResetConfirmFailure)
			e.emitAudit(ctx, auditEventPasswordResetConfirm, false, 0, "", errResetNotFound)
			return &UserResult{Errors: fieldError("token", "token expired")}, nil
		}
		return nil, err
	}

	user, err := e.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// The token was valid; its subject is gone. Distinct from expiry.
			e.metricInc(MetricPasswordResetConfirmFailure)
			e.emitAudit(ctx, auditEventPasswordResetConfirm, false, userID, "", ErrUserNotFound)
			return &UserResult{Errors: fieldError("token", "user no longer exists")}, nil
		}
		return nil, storeFailure(err)
	}

	if len(newPassword) <= 2 {
		e.metricInc(MetricPasswordResetConfirmFailure)
		return &UserResult{Errors: fieldError("newPassword", "length must be greater than 2")}, nil
	}

	hash, err := e.passwordHash.Hash(newPassword)
	if err != nil {
		return nil, err
	}

	if err := e.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		// Token intentionally left in place so the user can retry.
		return nil, storeFailure(err)
	}
	user.PasswordHash = hash

	if err := e.resetStore.Delete(ctx, token); err != nil {
		// Password is changed; the undeleted token expires naturally.
		return nil, err
	}

	sid, err := e.createSession(ctx, user.ID)
	if err != nil {
		return nil, storeFailure(err)
	}

	e.metricInc(MetricPasswordResetConfirmSuccess)
	e.emitAudit(ctx, auditEventPasswordResetConfirm, true, user.ID, sid, nil)

	return &UserResult{User: user, SessionID: sid}, nil
}
