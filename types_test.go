package lireddit

import "testing"

func TestEmailVisibleTo(t *testing.T) {
	user := &User{ID: 7, Email: "alice@example.com"}

	if got := user.EmailVisibleTo(7); got != "alice@example.com" {
		t.Fatalf("owner sees %q", got)
	}
	if got := user.EmailVisibleTo(8); got != "" {
		t.Fatalf("other viewer sees %q, want empty", got)
	}
	if got := user.EmailVisibleTo(0); got != "" {
		t.Fatalf("unauthenticated viewer sees %q, want empty", got)
	}

	var nilUser *User
	if got := nilUser.EmailVisibleTo(7); got != "" {
		t.Fatalf("nil user returned %q", got)
	}
}

func TestConflictErrorMessage(t *testing.T) {
	err := &ConflictError{Field: "username"}
	if err.Error() != "username already taken" {
		t.Fatalf("Error() = %q", err.Error())
	}
}
