package signedcookies

import (
	"github.com/dmitrymomot/signedcookies/signer"
)

// SessionInterface is the collaborator a Manager borrows its signing
// serializer and default cookie attributes from. Any session layer that can
// satisfy it plugs in directly; applications without one can use
// CookieSession.
type SessionInterface interface {
	// Salt returns the per-application secret salt used for name hashing.
	Salt() string

	// SigningSerializer returns the serializer used to sign and verify
	// cookie values. A nil return means the capability is missing and the
	// Manager refuses to start.
	SigningSerializer() *signer.Signer

	// Default cookie attributes, consulted at flush time for any attribute
	// the caller did not set explicitly.
	CookiePath() string
	CookieDomain() string
	CookieSecure() bool
	CookieHTTPOnly() bool
}

// CookieSession is the default SessionInterface implementation, configured
// from Config. It owns a Signer and a static cookie attribute policy.
type CookieSession struct {
	signer   *signer.Signer
	salt     string
	path     string
	domain   string
	secure   bool
	httpOnly bool
}

// NewCookieSession builds a CookieSession from cfg. The signer is derived
// from the configured secrets and salt.
func NewCookieSession(cfg Config) (*CookieSession, error) {
	s, err := signer.New(cfg.parseSecrets(), signer.WithSalt(cfg.Salt))
	if err != nil {
		return nil, err
	}

	return &CookieSession{
		signer:   s,
		salt:     cfg.Salt,
		path:     cfg.Path,
		domain:   cfg.Domain,
		secure:   cfg.Secure,
		httpOnly: cfg.HTTPOnly,
	}, nil
}

func (cs *CookieSession) Salt() string                      { return cs.salt }
func (cs *CookieSession) SigningSerializer() *signer.Signer { return cs.signer }
func (cs *CookieSession) CookiePath() string                { return cs.path }
func (cs *CookieSession) CookieDomain() string              { return cs.domain }
func (cs *CookieSession) CookieSecure() bool                { return cs.secure }
func (cs *CookieSession) CookieHTTPOnly() bool              { return cs.httpOnly }
