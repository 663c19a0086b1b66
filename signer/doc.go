// Package signer provides a timestamped signing serializer for cookie values.
//
// Values are serialized to a compact, URL-safe wire string carrying the
// payload, a signing timestamp and an HMAC-SHA256 signature:
//
//	base64url(value) "." base64url(timestamp) "." base64url(signature)
//
// The signature covers both the payload and the timestamp, so neither can be
// altered without detection. The timestamp lets readers enforce a maximum
// age on unsign, rejecting values older than the caller tolerates.
//
// # Key derivation and rotation
//
// Signing keys are derived per secret as HMAC-SHA256(secret, salt). Distinct
// salts therefore produce independent signing domains from the same secret.
// Multiple secrets enable key rotation: the first secret signs new values,
// every secret is tried on verification so old cookies stay readable during
// a rotation window.
//
// # Usage
//
//	s, err := signer.New([]string{os.Getenv("COOKIE_SECRET")})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	wire := s.Sign("hello")
//	value, err := s.Unsign(wire, time.Hour) // reject if older than 1h
//
// # Error Handling
//
// Unsign returns sentinel errors usable with errors.Is: ErrInvalidFormat for
// malformed wire strings, ErrInvalidSignature when no key verifies, and
// ErrExpired when the value is older than the supplied maximum age.
package signer
