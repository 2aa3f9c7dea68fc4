package middleware

import (
	"restaurant-ai-service/pkg/log"
)

// Middleware bundles the cross-cutting HTTP middlewares. The chat widget is
// embedded on restaurant websites, so CORS is permissive by default and
// tightened per environment.
type Middleware struct {
	l              log.Logger
	environment    string
	allowedOrigins []string
}

func New(l log.Logger, environment string, allowedOrigins []string) Middleware {
	return Middleware{
		l:              l,
		environment:    environment,
		allowedOrigins: allowedOrigins,
	}
}
