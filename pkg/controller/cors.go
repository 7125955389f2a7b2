package controller

import "net/http"

const (
	corsAllowHeaders = "Content-Type, Content-Length, Accept-Encoding, Accept-Language, accept, origin, " +
		"Cache-Control, Last-Event-ID, X-Request-Id"
	corsAllowMethods = "POST, OPTIONS, GET, PUT, PATCH, DELETE"
)

// WithCORS returns a middleware that allows cross-origin requests from any
// origin and short-circuits OPTIONS preflight requests with 204 No Content.
// Credentialed requests get their own origin echoed back, browsers reject a
// wildcard origin together with credentials.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		if origin := r.Header.Get("Origin"); origin != "" {
			header.Set("Access-Control-Allow-Origin", origin)
			header.Set("Access-Control-Allow-Credentials", "true")
			header.Add("Vary", "Origin")
		} else {
			header.Set("Access-Control-Allow-Origin", "*")
		}
		header.Set("Access-Control-Allow-Headers", corsAllowHeaders)
		header.Set("Access-Control-Allow-Methods", corsAllowMethods)
		header.Set("Access-Control-Expose-Headers", "X-Request-Id")

		// handle preflight requests quickly
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
