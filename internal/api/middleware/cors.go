package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns a middleware permitting cross-origin requests from any origin.
// The API is read-only and unauthenticated, so an open CORS policy is safe.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	})
}
