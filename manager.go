package signedcookies

import (
	"crypto/md5"
	"encoding/hex"
	"hash"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Manager hands out per-request cookie jars and derives the externally
// visible cookie names. It is immutable after construction and safe for
// concurrent use across requests; all mutable state lives in the Jar.
type Manager struct {
	session  SessionInterface
	nameHash func() hash.Hash
	log      *slog.Logger
}

// New creates a Manager bound to the given session interface. Missing
// capabilities are reported here, never at request time.
func New(session SessionInterface, opts ...Option) (*Manager, error) {
	if session == nil {
		return nil, ErrNoSessionInterface
	}
	if session.SigningSerializer() == nil {
		return nil, ErrNoSigningSerializer
	}

	m := &Manager{
		session:  session,
		nameHash: md5.New,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// NameHashBLAKE2b is a 128-bit BLAKE2b digest, a drop-in alternative to the
// default md5 name hash.
func NameHashBLAKE2b() hash.Hash {
	h, err := blake2b.New(16, nil)
	if err != nil {
		// blake2b.New only fails on bad key/size arguments
		panic(err)
	}
	return h
}

// HashName derives the externally visible cookie name from a logical one by
// hashing the session salt concatenated with the name. With hashing disabled
// the logical name is returned verbatim.
func (m *Manager) HashName(name string) string {
	if m.nameHash == nil {
		return name
	}

	h := m.nameHash()
	h.Write([]byte(m.session.Salt() + name))
	return hex.EncodeToString(h.Sum(nil))
}

// NewJar creates the cookie state for a single request. Middleware does this
// automatically; call it directly only when managing the flush yourself.
func (m *Manager) NewJar(r *http.Request) *Jar {
	return &Jar{
		manager: m,
		request: r,
		reads:   make(map[string]readResult),
		sets:    make(map[string]pendingSet),
		deletes: make(map[string]pendingDelete),
	}
}

// defaultOptions snapshots the session interface's cookie attribute policy.
// Called at flush/use time so the mediator tracks whatever policy the host
// currently enforces.
func (m *Manager) defaultOptions() CookieOptions {
	return CookieOptions{
		Path:     m.session.CookiePath(),
		Domain:   m.session.CookieDomain(),
		Secure:   m.session.CookieSecure(),
		HttpOnly: m.session.CookieHTTPOnly(),
	}
}

// Get returns the verified value of a signed cookie for the current request.
// A positive maxAge additionally rejects values signed longer ago than that.
// Missing, tampered and expired cookies all read as absent. Requires
// Middleware; see Jar.Get for the hook-free form.
func (m *Manager) Get(r *http.Request, name string, maxAge time.Duration) (string, bool) {
	return MustFromContext(r.Context()).Get(name, maxAge)
}

// Set buffers a signed cookie write for the current request. Requires
// Middleware; see Jar.Set for the hook-free form.
func (m *Manager) Set(r *http.Request, name, value string, opts ...CookieOption) {
	MustFromContext(r.Context()).Set(name, value, opts...)
}

// Delete buffers a cookie removal for the current request. Requires
// Middleware; see Jar.Delete for the hook-free form.
func (m *Manager) Delete(r *http.Request, name string, opts ...CookieOption) {
	MustFromContext(r.Context()).Delete(name, opts...)
}
