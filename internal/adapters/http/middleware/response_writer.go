// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// Pipeline returns the global order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging
//
// The router adds Timeout to every group except the event stream, which
// writes and flushes incrementally for as long as the page is open.
package middleware

import (
	"errors"
	"net/http"
)

// responseWriter records what a handler sent: the status, the body size and,
// for the event stream, how many times the body was flushed. Recovery, otel
// and logging each wrap the writer once, so flushes pass through several
// layers before they reach the connection.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
	flushes       int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader records the first status and forwards it. Later calls are
// dropped.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = code
	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.headerWritten = true
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// FlushError pushes buffered event frames to the client. A flush commits
// the headers, so the recorded status is final afterwards. When nothing
// underneath can flush it returns http.ErrNotSupported and counts nothing.
func (rw *responseWriter) FlushError() error {
	err := http.NewResponseController(rw.ResponseWriter).Flush()
	if errors.Is(err, http.ErrNotSupported) {
		return err
	}
	rw.headerWritten = true
	rw.flushes++
	return err
}

// Flush satisfies http.Flusher for callers that type-assert instead of
// using http.ResponseController.
func (rw *responseWriter) Flush() {
	_ = rw.FlushError()
}

// Unwrap exposes the wrapped writer so http.ResponseController can reach
// SetWriteDeadline on the connection.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// streamed reports whether the handler flushed at least once.
func (rw *responseWriter) streamed() bool {
	return rw.flushes > 0
}
