package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain folds the given middleware into one. Order matters:
// Chain(mw1, mw2)(handler) is mw1(mw2(handler)), so the first
// middleware is the outermost and runs first on every request.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}
