package middleware

import "net/http"

// Vary marks responses as negotiated on the Accept header, since every
// endpoint can answer in JSON or CBOR. The CORS middleware contributes
// Vary: Origin on its own, so only Accept is added here.
func Vary() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Accept")
			next.ServeHTTP(w, r)
		})
	}
}
