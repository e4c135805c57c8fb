package middleware

import "net/http"

// Middleware is a single step of the request chain.
type Middleware func(w http.ResponseWriter, r *http.Request, next http.Handler)

// Wrap binds m to next, yielding a plain handler.
func Wrap(m Middleware, next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m(w, r, next)
	}
}

// FromHandlerWrapper adapts a func(http.Handler) http.Handler middleware
// (the shape most libraries export) to a Middleware.
func FromHandlerWrapper(wrap func(http.Handler) http.Handler) Middleware {
	return func(w http.ResponseWriter, r *http.Request, next http.Handler) {
		wrap(next).ServeHTTP(w, r)
	}
}
