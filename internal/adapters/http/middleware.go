package httpadapter

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Timeout cancels the request context after d. If the handler has written
// nothing by the deadline, the client gets a JSON 504.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))
			if errors.Is(ctx.Err(), context.DeadlineExceeded) && ww.Status() == 0 {
				writeJSON(w, http.StatusGatewayTimeout, errorBody{Message: "Request timed out"})
			}
		})
	}
}

// Recoverer turns a handler panic into a logged stack and a JSON 500.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}
			log.Printf("panic serving %s %s (request %s): %v", r.Method, r.URL.Path, middleware.GetReqID(r.Context()), rvr)
			middleware.PrintPrettyStack(rvr)
			writeJSON(w, http.StatusInternalServerError, errorBody{Message: "Internal server error"})
		}()
		next.ServeHTTP(w, r)
	})
}
