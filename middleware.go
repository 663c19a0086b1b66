package signedcookies

import "net/http"

// Middleware provides signed-cookie handling for HTTP requests. Each request
// gets a fresh Jar in its context, and buffered cookie intents are flushed
// into response headers right before the handler writes its first byte (or
// after it returns, if it never writes).
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jar := m.NewJar(r)
		ctx := WithJar(r.Context(), jar)

		fw := &flushWriter{ResponseWriter: w, jar: jar}
		next.ServeHTTP(fw, r.WithContext(ctx))

		// Handlers that never write still get their cookies out.
		if !fw.wroteHeader {
			jar.Flush(w)
		}
	})
}

// flushWriter drains the jar into Set-Cookie headers before the status line
// goes out; headers are immutable afterwards.
type flushWriter struct {
	http.ResponseWriter
	jar         *Jar
	wroteHeader bool
}

func (fw *flushWriter) WriteHeader(statusCode int) {
	if !fw.wroteHeader {
		fw.wroteHeader = true
		fw.jar.Flush(fw.ResponseWriter)
	}
	fw.ResponseWriter.WriteHeader(statusCode)
}

func (fw *flushWriter) Write(b []byte) (int, error) {
	if !fw.wroteHeader {
		fw.WriteHeader(http.StatusOK)
	}
	return fw.ResponseWriter.Write(b)
}

// Unwrap supports http.ResponseController.
func (fw *flushWriter) Unwrap() http.ResponseWriter {
	return fw.ResponseWriter
}
