package lireddit

import (
	"context"
	"errors"
	"testing"
)

func TestRegisterCreatesUserAndSession(t *testing.T) {
	mr, rdb := newTestRedis(t)
	defer mr.Close()

	ctx := context.Background()
	users := newMockUserStore()
	engine := newTestEngine(t, rdb, users)

	result, err := engine.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret-pass",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected field errors: %+v", result.Errors)
	}
	if result.User == nil || result.User.Username != "alice" {
		t.Fatalf("unexpected user: %+v", result.User)
	}
	if result.User.PasswordHash == "secret-pass" {
		t.Fatal("password stored in plaintext")
	}
	if result.SessionID == "" {
		t.Fatal("expected auto-login session id")
	}

	// The fresh session resolves to the new user.
	me, err := engine.Me(ctx, result.SessionID)
	if err != nil {
		t.Fatalf("Me failed: %v", err)
	}
	if me == nil || me.ID != result.User.ID {
		t.Fatalf("Me = %+v, want user %d", me, result.User.ID)
	}

	if !mr.Exists("sess:" + result.SessionID) {
		t.Fatal("expected session record in redis under the sess prefix")
	}
}

func TestRegisterValidationShortCircuits(t *testing.T) {
	mr, rdb := newTestRedis(t)
	defer mr.Close()

	ctx := context.Background()
	users := newMockUserStore()
	engine := newTestEngine(t, rdb, users)

	tests := []struct {
		name        string
		input       RegisterInput
		wantField   string
		wantMessage string
	}{
		{
			name:        "email without at sign",
			input:       RegisterInput{Username: "alice", Email: "nope", Password: "secret-pass"},
			wantField:   "email",
			wantMessage: "invalid email",
		},
		{
			name:        "username too short",
			input:       RegisterInput{Username: "ab", Email: "a@b.c", Password: "secret-pass"},
			wantField:   "username",
			wantMessage: "length must be greater than 2",
		},
		{
			name:        "username with at sign",
			input:       RegisterInput{Username: "al@ce", Email: "a@b.c", Password: "secret-pass"},
			wantField:   "username",
			wantMessage: "cannot include an @",
		},
		{
			name:        "password too short",
			input:       RegisterInput{Username: "alice", Email: "a@b.c", Password: "abc"},
			wantField:   "password",
			wantMessage: "length must be greater than 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Register(ctx, tt.input)
			if err != nil {
				t.Fatalf("Register failed: %v", err)
			}
			if len(result.Errors) != 1 {
				t.Fatalf("errors = %+v, want exactly one", result.Errors)
			}
			fe := result.Errors[0]
			if fe.Field != tt.wantField || fe.Message != tt.wantMessage {
				t.Fatalf("got {%s %q}, want {%s %q}", fe.Field, fe.Message, tt.wantField, tt.wantMessage)
			}
			if result.User != nil || result.SessionID != "" {
				t.Fatal("rejected input must not produce a user or session")
			}
		})
	}

	if users.insertCalls != 0 {
		t.Fatalf("insertCalls = %d, want 0: validation must run before the store", users.insertCalls)
	}
}

func TestRegisterDuplicateReportsConflictField(t *testing.T) {
	mr, rdb := newTestRedis(t)
	defer mr.Close()

	ctx := context.Background()
	users := newMockUserStore()
	engine := newTestEngine(t, rdb, users)

	if _, err := engine.Register(ctx, RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "secret-pass",
	}); err != nil {
		t.Fatalf("seed Register failed: %v", err)
	}

	result, err := engine.Register(ctx, RegisterInput{
		Username: "alice", Email: "other@example.com", Password: "secret-pass",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if len(result.Errors) != 1 || result.Errors[0].Field != "username" || result.Errors[0].Message != "username already taken" {
		t.Fatalf("errors = %+v, want username conflict", result.Errors)
	}

	result, err = engine.Register(ctx, RegisterInput{
		Username: "alice2", Email: "alice@example.com", Password: "secret-pass",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if len(result.Errors) != 1 || result.Errors[0].Field != "email" || result.Errors[0].Message != "email already taken" {
		t.Fatalf("errors = %+v, want email conflict", result.Errors)
	}
}

func TestRegisterStoreFailure(t *testing.T) {
	mr, rdb := newTestRedis(t)
	defer mr.Close()

	users := newMockUserStore()
	users.insertErr = errors.New("connection refused")
	engine := newTestEngine(t, rdb, users)

	_, err := engine.Register(context.Background(), RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "secret-pass",
	})
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("err = %v, want ErrStoreUnavailable", err)
	}
}
