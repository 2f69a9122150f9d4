package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows requests from any origin. The lead form is embedded on
// marketing pages served from arbitrary domains, so the API stays open;
// Link is exposed for cursor pagination.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders: []string{"Link"},
		MaxAge:         300,
	})
}
