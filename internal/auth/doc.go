// Package auth provides authentication for Innkeeper.
//
// It implements:
//   - Argon2id password hashing in PHC string format, with per-call random
//     salts and constant-time verification
//   - Stateless HS256 JWT bearer tokens with a fixed 24-hour expiry
//   - A SQLite-backed user repository with store-enforced username uniqueness
//
// Tokens are self-contained: validation needs only the signing secret and a
// clock, never a database lookup. There is no refresh flow and no revocation
// list; a token stays valid until its natural expiry. Expiry is strict — a
// token whose expiry equals the verification instant is already expired.
//
// The token functions are pure and safe for concurrent use from arbitrarily
// many requests. Password hashing is deliberately CPU- and memory-expensive
// (Argon2id, 64 MiB); it runs on the calling goroutine and the Go scheduler
// keeps it from blocking other requests.
package auth
