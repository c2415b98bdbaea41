// Package lireddit provides the authentication core for the lireddit API:
// Redis-backed cookie sessions, argon2id credential hashing, and single-use
// time-expiring password-reset tokens, orchestrated behind register / login /
// logout / me / password-reset use cases.
//
// The package is designed for concurrent request handlers: Engine methods are
// safe to call from multiple goroutines after initialization through
// [Builder.Build]. The Engine holds no mutable shared state of its own; all
// shared state lives in Redis and the caller-supplied [UserStore].
//
// # Architecture boundaries
//
// lireddit is the public surface. It exposes [Engine], [Builder], [Config],
// and value types ([User], [UserResult], [FieldError]). Session persistence
// lives in the session subpackage, hashing in password, and the relational
// user collaborator behind the [UserStore] interface (a reference Postgres
// adapter ships in userstore/postgres).
//
// # Error contract
//
// Every auth mutation returns either a populated [UserResult.User] or a
// non-empty ordered [UserResult.Errors] list of {field, message} pairs,
// never both and never neither. Infrastructure failures (Redis or the user
// store unreachable) are returned as Go errors wrapping
// [ErrStoreUnavailable] and are never folded into field errors.
//
// # What this package must NOT do
//
//   - Parse HTTP requests or read cookies; callers resolve the session id
//     from the transport and pass it explicitly. Cookie baking helpers
//     ([Config.SessionCookie]) produce attributes only.
//   - Expose Redis clients or session encoding details in its public API.
//   - Unify login failure messages: "that username does not exist" and
//     "incorrect password" are distinct by product contract, inherited from
//     the original API surface.
package lireddit
