// Package sec provides the password hashing primitives used by credential
// verification.
//
// Passwords are stored only as bcrypt digests, which embed a random per-record
// salt. Comparison is constant-time.
//
// IMPORTANT: Basic Auth transmits credentials base64-encoded, not encrypted.
// TLS must be used in production to protect credentials in transit.
package sec
