package gymclient

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is a non-2xx response translated into a Go error. FieldErrors is
// populated when the body carried per-field validation failures.
type APIError struct {
	StatusCode  int
	Message     string
	FieldErrors map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// newAPIError builds an APIError from a response body of unknown shape.
// Backends disagree on envelope fields, so extraction probes the common
// spellings and falls back to a status-derived message.
func newAPIError(statusCode int, body []byte, fallback string) *APIError {
	var payload map[string]any
	_ = json.Unmarshal(body, &payload)

	return &APIError{
		StatusCode:  statusCode,
		Message:     extractMessage(payload, fallback),
		FieldErrors: extractFieldErrors(payload),
	}
}

// extractMessage returns the first non-empty message field, trying
// errorMessage then message, else the fallback.
func extractMessage(payload map[string]any, fallback string) string {
	for _, key := range []string{"errorMessage", "message"} {
		if s, ok := payload[key].(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

// fieldErrorKeys are the envelope fields that may carry per-field failures,
// probed in order.
var fieldErrorKeys = []string{"errors", "validationErrors", "fieldErrors", "violations", "details"}

// extractFieldErrors collects field-keyed messages from any of the known
// envelope shapes: arrays of {field, message} objects and maps of field to
// message (or message list). Entries with no usable field name fall back to
// heuristic attribution. Returns nil when nothing field-shaped is found.
func extractFieldErrors(payload map[string]any) map[string]string {
	out := map[string]string{}

	for _, key := range fieldErrorKeys {
		switch v := payload[key].(type) {
		case []any:
			collectFromArray(out, v)
		case map[string]any:
			collectFromMap(out, v)
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func collectFromArray(out map[string]string, items []any) {
	for _, item := range items {
		switch entry := item.(type) {
		case map[string]any:
			field := firstString(entry, "field", "name", "param", "property")
			msg := firstString(entry, "message", "msg", "error", "defaultMessage")
			if msg == "" {
				continue
			}
			if field == "" {
				field = guessField(msg)
			}
			if field != "" {
				setFirst(out, field, msg)
			}
		case string:
			if field := guessField(entry); field != "" {
				setFirst(out, field, entry)
			}
		}
	}
}

func collectFromMap(out map[string]string, entries map[string]any) {
	for field, v := range entries {
		switch msg := v.(type) {
		case string:
			setFirst(out, field, msg)
		case []any:
			if len(msg) > 0 {
				if s, ok := msg[0].(string); ok {
					setFirst(out, field, s)
				}
			}
		}
	}
}

// guessField attributes a bare message to a form field by keyword. Covers
// the fields the check-in and enrolment forms actually render.
func guessField(msg string) string {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "email"):
		return "email"
	case strings.Contains(lower, "password"):
		return "password"
	case strings.Contains(lower, "phone"):
		return "phone"
	case strings.Contains(lower, "plan"):
		return "membershipPlanId"
	case strings.Contains(lower, "start"):
		return "startDate"
	}
	return ""
}

// firstString returns the first non-empty string value among keys.
func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// setFirst keeps the first message seen per field.
func setFirst(out map[string]string, field, msg string) {
	if _, exists := out[field]; !exists {
		out[field] = msg
	}
}
