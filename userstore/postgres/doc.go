// Package postgres provides a UserStore backed by PostgreSQL via sqlx
// and the lib/pq driver.
//
// # Architecture boundaries
//
// This package is an adapter. It owns the SQL and the translation of
// driver errors into the engine's typed errors: sql.ErrNoRows becomes
// ErrUserNotFound, and unique-constraint violations (SQLSTATE 23505)
// become *ConflictError carrying the field the constraint protects.
// Nothing above this package ever inspects a SQLSTATE or a constraint
// name.
//
// # What this package must NOT do
//
//   - Hash or verify passwords.
//   - Create or destroy sessions.
//   - Render field errors for clients; it reports conflicts as typed
//     values and leaves presentation to the engine.
package postgres
