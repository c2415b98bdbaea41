// Package internal contains helper utilities that are intentionally private
// to lireddit-backend, currently secure session id generation.
//
// # Sub-packages
//
//   - metrics — lock-free counters behind Engine.MetricsSnapshot
//
// # What this package must NOT do
//
//   - Export types that appear in the public lireddit API.
//   - Be imported by any package outside this module.
package internal
