// Package validation rejects malformed requests before they reach the
// services and normalizes accepted values. Per field the rule order is:
// type check, trim and escape, required-but-non-empty, enum/format check.
// The first failing rule wins and the request surfaces a single error.
package validation

import (
	"html"
	"strings"

	"coder_management/internal/domain"

	"github.com/google/uuid"
)

// Sanitize trims surrounding whitespace and neutralizes embedded markup.
func Sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

// EntityID checks that value is a canonical identifier. label names the
// field in the error ("Task Id", "User Id", "Assignee Id").
func EntityID(value, label, summary string) (string, error) {
	value = Sanitize(value)
	if _, err := uuid.Parse(value); err != nil {
		return "", domain.NewValidationError(label+" must be a valid UUID.", summary)
	}
	return value, nil
}

// requiredString pulls a required non-empty string field out of a decoded
// JSON body, sanitizing it on the way.
func requiredString(body map[string]any, key, label, summary string) (string, error) {
	v, ok := body[key]
	if !ok || v == nil {
		return "", domain.NewValidationError(label+" value is required.", summary)
	}
	s, ok := v.(string)
	if !ok {
		return "", domain.NewValidationError(label+" value must be a string.", summary)
	}
	s = Sanitize(s)
	if s == "" {
		return "", domain.NewValidationError(label+" value is required.", summary)
	}
	return s, nil
}
