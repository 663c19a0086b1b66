package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"slices"
	"strings"
	"time"
)

const (
	minSecretLength = 32
	defaultSalt     = "signed-cookie"
)

// Signer serializes string values into signed, timestamped wire strings and
// back. It is immutable after construction and safe for concurrent use.
type Signer struct {
	keys [][]byte
	salt string
	now  func() time.Time
}

// New creates a Signer from one or more secrets. The first secret signs new
// values; all secrets are tried on verification to support key rotation.
func New(secrets []string, opts ...Option) (*Signer, error) {
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	for i, s := range secrets {
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}
	}

	s := &Signer{
		salt: defaultSalt,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Derive one key per secret so different salts never share a signing domain.
	s.keys = make([][]byte, 0, len(secrets))
	for _, secret := range secrets {
		s.keys = append(s.keys, deriveKey(secret, s.salt))
	}

	return s, nil
}

// Option configures a Signer during construction.
type Option func(*Signer)

// WithSalt sets the key-derivation salt. Values signed under one salt do not
// verify under another.
func WithSalt(salt string) Option {
	return func(s *Signer) {
		if salt != "" {
			s.salt = salt
		}
	}
}

// WithClock overrides the time source used for timestamping and age checks.
func WithClock(now func() time.Time) Option {
	return func(s *Signer) {
		if now != nil {
			s.now = now
		}
	}
}

// Sign serializes value into the signed wire format, timestamped with the
// current time.
func (s *Signer) Sign(value string) string {
	payload := base64.RawURLEncoding.EncodeToString([]byte(value))
	ts := encodeTimestamp(s.now().Unix())

	mac := hmac.New(sha256.New, s.keys[0])
	mac.Write([]byte(payload + "." + ts))
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))

	return payload + "." + ts + "." + sig
}

// Unsign verifies a wire string and returns the original value. A positive
// maxAge rejects values signed longer than maxAge ago; maxAge <= 0 disables
// the age check. Future timestamps are tolerated as clock skew.
func (s *Signer) Unsign(signed string, maxAge time.Duration) (string, error) {
	parts := strings.Split(signed, ".")
	if len(parts) != 3 {
		return "", ErrInvalidFormat
	}
	payload, ts, sig := parts[0], parts[1], parts[2]

	if !s.verify([]byte(payload+"."+ts), sig) {
		return "", ErrInvalidSignature
	}

	issuedAt, err := decodeTimestamp(ts)
	if err != nil {
		return "", ErrInvalidFormat
	}

	if maxAge > 0 {
		age := s.now().Sub(time.Unix(issuedAt, 0))
		if age > maxAge {
			return "", fmt.Errorf("%w: value is %s old, max age %s", ErrExpired, age.Truncate(time.Second), maxAge)
		}
	}

	value, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return "", ErrInvalidFormat
	}

	return string(value), nil
}

// verify tries every derived key so rotated-out secrets remain readable.
// Signatures are compared in the encoded domain: base64 tolerates non-zero
// trailing bits on decode, which would otherwise let distinct wire strings
// verify against the same MAC.
func (s *Signer) verify(signed []byte, sig string) bool {
	for _, key := range s.keys {
		mac := hmac.New(sha256.New, key)
		mac.Write(signed)
		expected := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
		if subtle.ConstantTimeCompare([]byte(sig), []byte(expected)) == 1 {
			return true
		}
	}
	return false
}

func deriveKey(secret, salt string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(salt))
	return mac.Sum(nil)
}

func encodeTimestamp(unix int64) string {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(unix))
	// Strip leading zero bytes for a compact wire form.
	i := 0
	for i < 7 && buf[i] == 0 {
		i++
	}
	return base64.RawURLEncoding.EncodeToString(buf[i:])
}

func decodeTimestamp(encoded string) (int64, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return 0, err
	}
	if len(raw) == 0 || len(raw) > 8 {
		return 0, ErrInvalidFormat
	}
	buf := make([]byte, 8)
	copy(buf[8-len(raw):], raw)
	return int64(binary.BigEndian.Uint64(buf)), nil
}
