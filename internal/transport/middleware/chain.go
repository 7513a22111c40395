package middleware

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/fairway-backend/internal/config"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes middleware so that Chain(a, b)(h) is a(b(h)): the first
// argument runs outermost.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// StackConfig carries what the request-wide middleware needs.
type StackConfig struct {
	Logger   *slog.Logger
	CORS     config.CORSConfig
	Sessions sessionResolver
}

// Stack is the middleware every request passes through. The request id is
// set before anything logs, preflights are answered before any session
// lookup, and TagUser sits inside both Logger and Auth.
func Stack(cfg StackConfig) Middleware {
	return Chain(
		RequestID(),
		Recovery(cfg.Logger),
		Logger(cfg.Logger),
		CORS(cfg.CORS),
		Auth(cfg.Sessions),
		TagUser,
	)
}
