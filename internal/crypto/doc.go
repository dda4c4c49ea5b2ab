// Package crypto signs and verifies calcd session tokens.
//
// A token is "<uuid>.<mac>" where mac is a truncated keyed BLAKE2b-256 over
// the session id, base64url encoded without padding. Tokens carry no expiry;
// idle sessions are dropped by the server's store instead.
package crypto
