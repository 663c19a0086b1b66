package signedcookies

import (
	"net/http"
	"time"
)

// Status reports how a cookie read resolved. The public Get contract exposes
// only valid-or-absent; Lookup keeps the invalid case observable for
// diagnostics and auditing.
type Status int

const (
	// StatusAbsent means no cookie was present under the hashed name.
	StatusAbsent Status = iota
	// StatusValid means the cookie verified and its value was recovered.
	StatusValid
	// StatusInvalid means a cookie was present but its signature failed or
	// it was older than the allowed age.
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	default:
		return "absent"
	}
}

type readResult struct {
	value  string
	status Status
}

type pendingSet struct {
	value string
	opts  []CookieOption
}

type pendingDelete struct {
	opts []CookieOption
}

// Jar buffers the signed-cookie reads and writes of a single request. It is
// owned by the request goroutine and must not be shared across requests;
// Manager.NewJar creates a fresh one each time.
type Jar struct {
	manager *Manager
	request *http.Request

	reads   map[string]readResult
	sets    map[string]pendingSet
	deletes map[string]pendingDelete
}

// Get returns the verified value of a signed cookie. A positive maxAge
// additionally rejects values signed longer ago than that. Missing, tampered
// and expired cookies all read as absent; use Lookup to tell them apart.
// Results are cached for the rest of the request, so repeated calls never
// re-verify, and a value buffered by Set is observed without a header
// round trip.
func (j *Jar) Get(name string, maxAge time.Duration) (string, bool) {
	value, status := j.Lookup(name, maxAge)
	return value, status == StatusValid
}

// Lookup is Get with the absent and invalid outcomes kept distinct. The
// cached result of the first read wins: maxAge only applies when the cookie
// has not been read or written yet this request.
func (j *Jar) Lookup(name string, maxAge time.Duration) (string, Status) {
	if cached, ok := j.reads[name]; ok {
		return cached.value, cached.status
	}

	result := readResult{status: StatusAbsent}

	if cookie, err := j.request.Cookie(j.manager.HashName(name)); err == nil {
		value, err := j.manager.session.SigningSerializer().Unsign(cookie.Value, maxAge)
		if err != nil {
			// Tampered or expired values read as absent, never as an error.
			result.status = StatusInvalid
			j.manager.log.DebugContext(j.request.Context(), "signed cookie rejected",
				"cookie", name, "error", err)
		} else {
			result = readResult{value: value, status: StatusValid}
		}
	}

	j.reads[name] = result
	return result.value, result.status
}

// Set buffers an intent to write a signed cookie. Any pending delete for the
// same name is cancelled, and the read cache is updated so a later Get in
// the same request observes the new value immediately. Attributes left unset
// resolve from the session interface defaults when the jar is flushed.
func (j *Jar) Set(name, value string, opts ...CookieOption) {
	j.reads[name] = readResult{value: value, status: StatusValid}
	delete(j.deletes, name)
	j.sets[name] = pendingSet{value: value, opts: opts}
}

// Delete buffers an intent to remove a signed cookie. Any pending set for
// the same name is cancelled and the read cache resolves to absent. Only
// WithPath and WithDomain are meaningful here; they must match the values
// the cookie was set with.
func (j *Jar) Delete(name string, opts ...CookieOption) {
	j.reads[name] = readResult{status: StatusAbsent}
	delete(j.sets, name)
	j.deletes[name] = pendingDelete{opts: opts}
}

// Flush signs every buffered set and writes it as a Set-Cookie header under
// the hashed name, writes an expiring header for every buffered delete, then
// resets the buffers. Calling it again is a no-op until new intents are
// buffered. Middleware calls Flush right before the response headers are
// written.
func (j *Jar) Flush(w http.ResponseWriter) {
	defaults := j.manager.defaultOptions()
	serializer := j.manager.session.SigningSerializer()

	for name, pending := range j.sets {
		options := applyCookieOptions(defaults, pending.opts)
		http.SetCookie(w, &http.Cookie{
			Name:     j.manager.HashName(name),
			Value:    serializer.Sign(pending.value),
			MaxAge:   options.MaxAge,
			Path:     options.Path,
			Domain:   options.Domain,
			Secure:   options.Secure,
			HttpOnly: options.HttpOnly,
		})
	}

	for name, pending := range j.deletes {
		options := applyCookieOptions(defaults, pending.opts)
		http.SetCookie(w, &http.Cookie{
			Name:     j.manager.HashName(name),
			Value:    "",
			MaxAge:   -1,
			Expires:  time.Unix(0, 0),
			Path:     options.Path,
			Domain:   options.Domain,
			Secure:   options.Secure,
			HttpOnly: options.HttpOnly,
		})
	}

	j.Reset()
}

// Reset clears the read cache and both write buffers.
func (j *Jar) Reset() {
	clear(j.reads)
	clear(j.sets)
	clear(j.deletes)
}
