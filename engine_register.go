package lireddit

import (
	"context"
	"errors"
)

// Register validates input, hashes the password, inserts the user, and
// establishes a session (auto-login after register). A uniqueness violation
// from the user store comes back as a field-level error, never as a raw
// database failure; racing registrations are resolved by the database's
// unique constraint alone.
func (e *Engine) Register(ctx context.Context, input RegisterInput) (*UserResult, error) {
	if e == nil || e.users == nil {
		return nil, ErrEngineNotReady
	}

	if errs := validateRegister(input); errs != nil {
		e.metricInc(MetricRegisterInvalid)
		return &UserResult{Errors: errs}, nil
	}

	hash, err := e.passwordHash.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := e.users.Insert(ctx, NewUser{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
	})
	if err != nil {
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			e.metricInc(MetricRegisterConflict)
			e.emitAudit(ctx, auditEventRegisterConflict, false, 0, "", conflict)
			return &UserResult{Errors: fieldError(conflict.Field, conflict.Field+" already taken")}, nil
		}
		return nil, storeFailure(err)
	}

	sid, err := e.createSession(ctx, user.ID)
	if err != nil {
		return nil, storeFailure(err)
	}

	e.metricInc(MetricRegisterSuccess)
	e.emitAudit(ctx, auditEventRegisterSuccess, true, user.ID, sid, nil)

	return &UserResult{User: user, SessionID: sid}, nil
}
