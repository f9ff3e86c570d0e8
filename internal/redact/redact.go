// Package redact scrubs sensitive fragments from strings before they reach
// the log sink. Database driver errors in particular can carry connection
// strings, SQL text, or bearer tokens; the error normalizer guarantees the
// client only ever sees an opaque signal, and this package extends the same
// guarantee to server-side logs.
package redact

import "regexp"

const (
	credentialPlaceholder = "[REDACTED_CREDENTIAL]"
	tokenPlaceholder      = "[REDACTED_TOKEN]"
	sqlPlaceholder        = "[REDACTED_SQL]"
	hostPlaceholder       = "[REDACTED_HOST]"
)

var (
	// Connection strings with inline credentials.
	connStringRegex = regexp.MustCompile(`(?i)(postgres(ql)?|mysql|sqlserver)://[^@\s]+@`)

	// key=value style credentials (password=..., secret=..., api_key=...).
	credentialRegex = regexp.MustCompile(`(?i)(password|passwd|secret|api[_-]?key|token)\s*[=:]\s*[^\s'"&]{3,}`)

	// Three-part base64url JWTs.
	jwtRegex = regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`)

	// SQL statement fragments echoed back by the driver.
	sqlRegex = regexp.MustCompile(`(?i)(SELECT|INSERT|UPDATE|DELETE|CALL|EXEC)\s[\w\s,.*()='"$:]+`)

	// host:port pairs from dial errors.
	hostPortRegex = regexp.MustCompile(`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}:\d{1,5}\b`)
)

var replacements = []struct {
	pattern     *regexp.Regexp
	placeholder string
}{
	{connStringRegex, credentialPlaceholder},
	{credentialRegex, credentialPlaceholder},
	{jwtRegex, tokenPlaceholder},
	{sqlRegex, sqlPlaceholder},
	{hostPortRegex, hostPlaceholder},
}

// String returns s with every sensitive fragment replaced by a placeholder.
func String(s string) string {
	for _, r := range replacements {
		s = r.pattern.ReplaceAllString(s, r.placeholder)
	}
	return s
}

// Error redacts err's message. Returns the empty string for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
