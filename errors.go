package signedcookies

import "errors"

var (
	// ErrNoSessionInterface indicates the manager was constructed without a
	// session-interface collaborator.
	ErrNoSessionInterface = errors.New("signedcookies.no_session_interface")

	// ErrNoSigningSerializer indicates the session interface does not provide
	// a signing serializer.
	ErrNoSigningSerializer = errors.New("signedcookies.no_signing_serializer")
)
