package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so that Chain(a, b)(h) is a(b(h)); a runs outermost.
// Nil entries are skipped, which lets callers pass optional middleware
// without branching. Chain() with nothing to apply returns h unchanged.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] == nil {
				continue
			}
			final = mws[i](final)
		}
		return final
	}
}
