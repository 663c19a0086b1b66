package signedcookies

import (
	"hash"
	"log/slog"
)

// Option configures a Manager during construction.
type Option func(*Manager)

// WithNameHash sets the hash constructor used to obfuscate cookie names.
// The default is md5.New.
func WithNameHash(fn func() hash.Hash) Option {
	return func(m *Manager) {
		m.nameHash = fn
	}
}

// WithoutNameHash disables name obfuscation; logical cookie names appear on
// the wire verbatim.
func WithoutNameHash() Option {
	return func(m *Manager) {
		m.nameHash = nil
	}
}

// WithLogger sets the logger used to debug-log rejected signed values. The
// default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// CookieOptions are the per-cookie attributes buffered by Set and Delete.
// Attributes left unset resolve from the session interface defaults when the
// jar is flushed.
type CookieOptions struct {
	MaxAge   int
	Path     string
	Domain   string
	Secure   bool
	HttpOnly bool
}

// CookieOption overrides a single cookie attribute.
type CookieOption func(*CookieOptions)

// WithMaxAge sets the cookie TTL in seconds. Zero makes a session cookie.
func WithMaxAge(seconds int) CookieOption {
	return func(o *CookieOptions) {
		o.MaxAge = seconds
	}
}

// WithPath limits the cookie to a path.
func WithPath(path string) CookieOption {
	return func(o *CookieOptions) {
		o.Path = path
	}
}

// WithDomain sets a cross-domain cookie.
func WithDomain(domain string) CookieOption {
	return func(o *CookieOptions) {
		o.Domain = domain
	}
}

// WithSecure restricts the cookie to HTTPS.
func WithSecure(secure bool) CookieOption {
	return func(o *CookieOptions) {
		o.Secure = secure
	}
}

// WithHTTPOnly hides the cookie from JavaScript.
func WithHTTPOnly(httpOnly bool) CookieOption {
	return func(o *CookieOptions) {
		o.HttpOnly = httpOnly
	}
}

// applyCookieOptions creates a new CookieOptions by copying the base options
// and applying the provided overrides. The base options are not modified.
func applyCookieOptions(base CookieOptions, opts []CookieOption) CookieOptions {
	result := CookieOptions{
		MaxAge:   base.MaxAge,
		Path:     base.Path,
		Domain:   base.Domain,
		Secure:   base.Secure,
		HttpOnly: base.HttpOnly,
	}

	for _, opt := range opts {
		opt(&result)
	}

	return result
}
