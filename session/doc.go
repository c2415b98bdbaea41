// Package session provides Redis-backed session persistence and compact
// binary session encoding.
//
// # Lifecycle
//
// A session id moves absent → active on [Store.Save] and back to absent on
// [Store.Delete] or TTL expiry. There are no other states; Redis key
// liveness is the single source of truth, and reads never extend the TTL.
//
// # Architecture boundaries
//
// This package owns the [Store] (Redis operations) and the [Session] model.
// It does NOT mint session ids, bake cookies, or enforce authentication
// policy; those responsibilities belong to the Engine.
//
// # What this package must NOT do
//
//   - Import the root lireddit package (no upward imports).
//   - Touch expiry on read (sliding sessions are explicitly out).
//   - Store credentials or email addresses in [Session] fields.
package session
