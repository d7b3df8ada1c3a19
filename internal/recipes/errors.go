package recipes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrTimeout is returned when a request exceeds its timeout. Its message is
// shown to the user verbatim.
var ErrTimeout = errors.New("request timed out")

// ErrMissingCredentials is returned by Login and Register when the username or
// password is blank.
var ErrMissingCredentials = errors.New("username and password are required")

// ErrResponseTooLarge is returned when a response body exceeds the read limit.
var ErrResponseTooLarge = errors.New("response too large")

// APIError describes a non-2xx response.
type APIError struct {
	Status  int
	Message string
	Path    string
}

func (e *APIError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if msg == "" {
		return fmt.Sprintf("HTTP %d", e.Status)
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, msg)
}

// IsUnauthorized reports whether err is a 401 from the API.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// Message renders err as a short human-readable string for display.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	switch {
	case errors.Is(err, ErrTimeout):
		return ErrTimeout.Error()
	case errors.Is(err, context.Canceled):
		return "request cancelled"
	case errors.As(err, &apiErr):
		return apiErr.Error()
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "recipe service unreachable (connection refused)"
	case strings.Contains(msg, "no such host"):
		return "recipe service host not found"
	}
	return msg
}

// serverMessage pulls the most useful error text out of a response body.
func serverMessage(payload any, text string) string {
	if obj, ok := payload.(map[string]any); ok {
		for _, key := range []string{"detail", "message", "error", "msg", "error_description"} {
			if msg := messageValue(obj[key]); msg != "" {
				return msg
			}
		}
	}
	if s, ok := payload.(string); ok && strings.TrimSpace(s) != "" {
		return strings.TrimSpace(s)
	}
	if payload == nil {
		return strings.TrimSpace(text)
	}
	return ""
}

func messageValue(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case map[string]any:
		return serverMessage(val, "")
	case []any:
		// Validation errors arrive as a list of {loc, msg} objects.
		for _, entry := range val {
			if msg := messageValue(entry); msg != "" {
				return msg
			}
		}
	}
	return ""
}
