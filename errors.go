package lireddit

import (
	"errors"
	"fmt"
)

var (
	// ErrEngineNotReady is returned when an Engine method is called before
	// the engine was initialized through [Builder.Build].
	ErrEngineNotReady = errors.New("engine not initialized")
	// ErrUserNotFound is the sentinel a [UserStore] must return (possibly
	// wrapped) when a lookup matches no user.
	ErrUserNotFound = errors.New("user not found")
	// ErrStoreUnavailable marks infrastructure failures: Redis or the user
	// store unreachable. It is never translated into a field error.
	ErrStoreUnavailable = errors.New("backing store unavailable")
	// ErrSessionInvalidationFailed is reported through audit when a logout
	// could not delete the session record.
	ErrSessionInvalidationFailed = errors.New("session invalidation failed")
)

// ConflictError is returned by [UserStore.Insert] when a uniqueness
// constraint is violated. Field names the conflicting column ("username" or
// "email") and is decided by the store at the boundary; the engine never
// inspects driver error strings.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already taken", e.Field)
}

// FieldError identifies which input a validation or conflict failure
// concerns, in a shape the API layer can render as inline form errors.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func fieldError(field, message string) []FieldError {
	return []FieldError{{Field: field, Message: message}}
}

// storeFailure folds any infrastructure error into the ErrStoreUnavailable
// taxonomy so callers can map it to a generic operation failure. Field-level
// conditions never pass through here.
func storeFailure(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
