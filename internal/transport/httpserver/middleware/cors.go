package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// NewCORS admits the configured browser origins. Content-Disposition is
// exposed so the export download filename reaches the client.
func NewCORS(allowedOrigins []string, allowCredentials bool) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           86400,
	})
}
