package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Chain folds multiple middleware into one. Order is outermost first:
// Chain(mw1, mw2)(handler) yields mw1(mw2(handler)), so mw1 sees the
// request before mw2 does.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}
