// Package signedcookies provides signed, name-obfuscated HTTP cookies on top
// of a session-style collaborator.
//
// Cookie values are signed with a timestamped serializer so tampering and
// staleness are detected on read, and cookie names are hashed with a keyed
// digest so logical names never appear on the wire. Reads and writes are
// buffered per request and flushed into real Set-Cookie headers right before
// the response goes out.
//
// # Overview
//
// The `Manager` type is the entry point. It borrows a signing serializer,
// a secret salt and a default cookie attribute policy from a
// `SessionInterface` collaborator — typically the application's existing
// session layer, or the bundled `CookieSession` built from `Config`. Missing
// capabilities fail at construction, never at request time.
//
// Per-request state lives in a `Jar`, created by the `Middleware` and carried
// in the request context:
//
//   • Get(), Lookup() – verified reads, cached for the request
//   • Set(), Delete() – buffered writes, flushed at response time
//   • Flush(), Reset() – manual lifecycle control without the middleware
//
// # Architecture
//
// A fresh Jar per request keeps the three buffers (read cache, pending sets,
// pending deletes) request-local without locking; the Manager itself is
// immutable and shared. The middleware wraps the ResponseWriter so the jar is
// flushed immediately before the first header write — after that point
// Set-Cookie headers could no longer be attached. Signing is delegated to the
// signer subpackage (HMAC-SHA256 over a base64url payload and timestamp);
// name hashing defaults to a 128-bit md5 digest of salt+name and can be
// swapped or disabled.
//
// # Usage
//
//	import "github.com/dmitrymomot/signedcookies"
//
//	cfg, _ := signedcookies.LoadConfig()
//	sc, err := signedcookies.NewFromConfig(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
//	    sc.Set(r, "uid", "42")
//	})
//	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
//	    uid, ok := sc.Get(r, "uid", 0)
//	    _, _ = uid, ok
//	})
//
//	http.ListenAndServe(":8080", sc.Middleware(mux))
//
// # Configuration
//
// `Config` is parsed from environment variables via github.com/caarlos0/env;
// `LoadConfig` additionally loads a .env file when present. Secrets are
// comma-separated to support key rotation.
//
// # Error Handling
//
// Setup problems surface as sentinel errors (`ErrNoSessionInterface`,
// `ErrNoSigningSerializer`) from New. Verification failures never propagate:
// a tampered or expired cookie reads as absent, with the invalid case still
// observable through `Jar.Lookup` for auditing.
//
// # See Also
//
//   • github.com/dmitrymomot/signedcookies/signer – the wire format.
//   • net/http – underlying cookie implementation.
package signedcookies
