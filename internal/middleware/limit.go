package middleware

import "net/http"

// LimitBytes caps the request body; oversized uploads fail inside the handler
// with a *http.MaxBytesError instead of eating memory.
func LimitBytes(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}
