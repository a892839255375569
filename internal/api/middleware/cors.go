package middleware

import (
	"github.com/go-chi/cors"
)

// NewCORS creates a new CORS middleware with the given allowed origins.
// The API is read-only, so only GET and preflight requests are allowed.
func NewCORS(allowedOrigins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Request-Id",
		},
		ExposedHeaders:   []string{"Content-Type", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
