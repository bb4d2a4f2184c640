package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/ianto3/projectboard/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders turns request headers into slog attributes for the debug
// request log. Headers in logging.SensitiveHeaders become "[REDACTED]".
// Cookie and Set-Cookie keep their cookie names with every value replaced,
// so a log still shows whether the flash session cookie arrived without
// exposing its signed payload. Other headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		switch lower := strings.ToLower(key); {
		case lower == "cookie":
			attrs = append(attrs, slog.String(key, redactCookies(vals)))
		case lower == "set-cookie":
			attrs = append(attrs, slog.String(key, redactSetCookies(vals)))
		case logging.SensitiveHeaders[lower]:
			attrs = append(attrs, slog.String(key, redacted))
		default:
			attrs = append(attrs, slog.String(key, strings.Join(vals, ",")))
		}
	}
	return attrs
}

func redactCookies(lines []string) string {
	var names []string
	for _, line := range lines {
		cookies, err := http.ParseCookie(line)
		if err != nil {
			return redacted
		}
		for _, c := range cookies {
			names = append(names, c.Name+"="+redacted)
		}
	}
	return strings.Join(names, "; ")
}

func redactSetCookies(lines []string) string {
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		c, err := http.ParseSetCookie(line)
		if err != nil {
			return redacted
		}
		names = append(names, c.Name+"="+redacted)
	}
	return strings.Join(names, ",")
}
