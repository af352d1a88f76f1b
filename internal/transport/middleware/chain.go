package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines middleware into one; the first argument is outermost.
// Nil entries are skipped so optional layers such as Auth can be passed
// unconditionally.
func Chain(mws ...Middleware) Middleware {
	active := make([]Middleware, 0, len(mws))
	for _, mw := range mws {
		if mw != nil {
			active = append(active, mw)
		}
	}

	return func(final http.Handler) http.Handler {
		for i := len(active) - 1; i >= 0; i-- {
			final = active[i](final)
		}
		return final
	}
}
