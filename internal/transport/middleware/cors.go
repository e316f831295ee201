package middleware

import (
	"github.com/go-chi/cors"

	"github.com/wigac/wigac-backend/internal/config"
)

// CORS returns middleware that answers preflight requests and sets the
// Access-Control headers for the configured origins.
func CORS(cfg config.CORSConfig) Middleware {
	return cors.Handler(cors.Options{
		AllowedOrigins:   config.SplitList(cfg.AllowedOrigins),
		AllowedMethods:   config.SplitList(cfg.AllowedMethods),
		AllowedHeaders:   config.SplitList(cfg.AllowedHeaders),
		ExposedHeaders:   []string{"Content-Disposition", requestIDHeader},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
