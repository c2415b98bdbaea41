// Package password implements password hashing and verification with
// Argon2id defaults.
//
// # Output format
//
// Hashes are encoded in PHC string format:
//
//	$argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<hash>
//
// [Hasher.Verify] treats malformed or foreign digests as a failed match
// rather than an error, so a corrupted stored hash can never crash a login
// path. [Hasher.NeedsRehash] reports parameter upgrades so callers can
// re-hash on the next successful login.
//
// # Architecture boundaries
//
// This package owns hashing and verification only. Password policy (length
// rules) is enforced by the Engine.
//
// # What this package must NOT do
//
//   - Store or retrieve passwords; callers supply plaintext and receive
//     hashes.
//   - Import any other lireddit package.
//   - Log plaintext passwords or hash parameters at runtime.
package password
