package signer

import "errors"

var (
	ErrNoSecret         = errors.New("signer.no_secret")
	ErrSecretTooShort   = errors.New("signer.secret_too_short")
	ErrInvalidFormat    = errors.New("signer.invalid_format")
	ErrInvalidSignature = errors.New("signer.invalid_signature")
	ErrExpired          = errors.New("signer.expired")
)
