package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/ianto3/projectboard/internal/adapters/http/dto"
)

// errInternalServer is the generic error returned to clients when a panic is
// recovered. The actual panic value and stack trace are logged but never
// exposed in the HTTP response.
var errInternalServer = errors.New("internal server error")

// Recovery returns middleware that recovers from panics in downstream handlers,
// including a panicking store subscriber that unwound through the mutating
// request. The panic is logged with the full stack trace. Browsers asking for
// HTML get a plain error page; everything else gets an RFC 9457 500 response.
// If the response headers have already been written, only the log entry is
// emitted.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				// Recovery runs outside RequestID, so the ID is only visible
				// on the shared response headers.
				reqID := RequestIDFromContext(r.Context())
				if reqID == "" {
					reqID = rw.Header().Get(headerRequestID)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", reqID),
				)

				if rw.headerWritten {
					return
				}
				if wantsHTML(r) {
					http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}
				dto.WriteErrorResponse(rw, r, errInternalServer)
			}()

			next.ServeHTTP(rw, r)
		})
	}
}

// wantsHTML reports whether the client prefers an HTML page over JSON.
func wantsHTML(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") && !strings.Contains(accept, "application/json")
}
