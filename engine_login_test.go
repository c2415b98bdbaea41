package lireddit

import (
	"context"
	"testing"
	"time"
)

func seedUser(t *testing.T, engine *Engine, username, email, pw string) *UserResult {
	t.Helper()

	result, err := engine.Register(context.Background(), RegisterInput{
		Username: username,
		Email:    email,
		Password: pw,
	})
	if err != nil {
		t.Fatalf("seed Register failed: %v", err)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("seed Register rejected: %+v", result.Errors)
	}
	return result
}

func TestLoginDispatchesOnAtSign(t *testing.T) {
	mr, rdb := newTestRedis(t)
	defer mr.Close()

	ctx := context.Background()
	users := newMockUserStore()
	engine := newTestEngine(t, rdb, users)
	seedUser(t, engine, "alice", "alice@example.com", "secret-pass")

	usernameLookups := users.findByUsernameCalls
	emailLookups := users.findByEmailCalls

	result, err := engine.Login(ctx, "alice", "secret-pass")
	if err != nil {
		t.Fatalf("Login by username failed: %v", err)
	}
	if result.User == nil || result.SessionID == "" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if users.findByUsernameCalls != usernameLookups+1 || users.findByEmailCalls != emailLookups {
		t.Fatal("identifier without @ must resolve through the username lookup")
	}

	result, err = engine.Login(ctx, "alice@example.com", "secret-pass")
	if err != nil {
		t.Fatalf("Login by email failed: %v", err)
	}
	if result.User == nil {
		t.Fatalf("unexpected result: %+v", result)
	}
	if users.findByEmailCalls != emailLookups+1 {
		t.Fatal("identifier with @ must resolve through the email lookup")
	}
}

func TestLoginFailureModesAreDistinct(t *testing.T) {
	mr, rdb := newTestRedis(t)
	defer mr.Close()

	ctx := context.Background()
	users := newMockUserStore()
	engine := newTestEngine(t, rdb, users)
	seedUser(t, engine, "alice", "alice@example.com", "secret-pass")

	result, err := engine.Login(ctx, "nobody", "secret-pass")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if len(result.Errors) != 1 || result.Errors[0].Field != "usernameOrEmail" || result.Errors[0].Message != "that username does not exist" {
		t.Fatalf("unknown identifier errors = %+v", result.Errors)
	}

	result, err = engine.Login(ctx, "alice", "wrong-pass")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if len(result.Errors) != 1 || result.Errors[0].Field != "password" || result.Errors[0].Message != "incorrect password" {
		t.Fatalf("wrong password errors = %+v", result.Errors)
	}
}

func TestEachLoginCreatesFreshSession(t *testing.T) {
	mr, rdb := newTestRedis(t)
	defer mr.Close()

	ctx := context.Background()
	users := newMockUserStore()
	engine := newTestEngine(t, rdb, users)
	first := seedUser(t, engine, "alice", "alice@example.com", "secret-pass")

	second, err := engine.Login(ctx, "alice", "secret-pass")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if second.SessionID == first.SessionID {
		t.Fatal("login must mint a fresh session id")
	}

	// Both sessions are independently valid.
	for _, sid := range []string{first.SessionID, second.SessionID} {
		me, err := engine.Me(ctx, sid)
		if err != nil || me == nil {
			t.Fatalf("Me(%s) = %v, %v", sid, me, err)
		}
	}
}

func TestLogoutDestroysOnlyThatSession(t *testing.T) {
	mr, rdb := newTestRedis(t)
	defer mr.Close()

	ctx := context.Background()
	users := newMockUserStore()
	engine := newTestEngine(t, rdb, users)
	first := seedUser(t, engine, "alice", "alice@example.com", "secret-pass")

	second, err := engine.Login(ctx, "alice", "secret-pass")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if !engine.Logout(ctx, first.SessionID) {
		t.Fatal("Logout reported failure")
	}

	if me, err := engine.Me(ctx, first.SessionID); err != nil || me != nil {
		t.Fatalf("destroyed session resolved to %+v, %v", me, err)
	}
	if me, err := engine.Me(ctx, second.SessionID); err != nil || me == nil {
		t.Fatalf("remaining session should survive, got %v, %v", me, err)
	}

	// Replaying the dead session id is idempotent.
	if !engine.Logout(ctx, first.SessionID) {
		t.Fatal("repeat Logout should succeed")
	}
	if !engine.Logout(ctx, "") {
		t.Fatal("Logout with empty session id should succeed")
	}
}

func TestMeIsPureRead(t *testing.T) {
	mr, rdb := newTestRedis(t)
	defer mr.Close()

	ctx := context.Background()
	users := newMockUserStore()
	engine := newTestEngine(t, rdb, users)
	result := seedUser(t, engine, "alice", "alice@example.com", "secret-pass")

	key := "sess:" + result.SessionID
	before := mr.TTL(key)

	mr.FastForward(time.Hour)

	if me, err := engine.Me(ctx, result.SessionID); err != nil || me == nil {
		t.Fatalf("Me = %v, %v", me, err)
	}

	// A read must not refresh the record's TTL.
	if after := mr.TTL(key); after != before-time.Hour {
		t.Fatalf("TTL after read = %v, want %v", after, before-time.Hour)
	}
}

func TestMeAbsentCases(t *testing.T) {
	mr, rdb := newTestRedis(t)
	defer mr.Close()

	ctx := context.Background()
	users := newMockUserStore()
	engine := newTestEngine(t, rdb, users)
	result := seedUser(t, engine, "alice", "alice@example.com", "secret-pass")

	if me, err := engine.Me(ctx, ""); err != nil || me != nil {
		t.Fatalf("Me with empty session id = %v, %v, want nil, nil", me, err)
	}
	if me, err := engine.Me(ctx, "does-not-exist"); err != nil || me != nil {
		t.Fatalf("Me with unknown session id = %v, %v, want nil, nil", me, err)
	}

	// Valid session whose user row is gone resolves to absent, not an error.
	users.deleteUser(result.User.ID)
	if me, err := engine.Me(ctx, result.SessionID); err != nil || me != nil {
		t.Fatalf("Me with deleted user = %v, %v, want nil, nil", me, err)
	}
}
