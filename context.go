package signedcookies

import "context"

type jarContextKey struct{}

// WithJar adds a jar to the context
func WithJar(ctx context.Context, jar *Jar) context.Context {
	return context.WithValue(ctx, jarContextKey{}, jar)
}

// FromContext retrieves a jar from the context
func FromContext(ctx context.Context) (*Jar, bool) {
	jar, ok := ctx.Value(jarContextKey{}).(*Jar)
	return jar, ok
}

// MustFromContext retrieves a jar from the context or panics. A missing jar
// means the request did not pass through Manager.Middleware.
func MustFromContext(ctx context.Context) *Jar {
	jar, ok := FromContext(ctx)
	if !ok {
		panic("signedcookies: no jar in context, is the middleware installed?")
	}
	return jar
}
