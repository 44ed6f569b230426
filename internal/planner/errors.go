package planner

import (
	"fmt"
	"strings"
)

// ParseErrorKind classifies why a model response could not become a plan.
type ParseErrorKind string

const (
	// MalformedJSON means the response was not valid JSON after de-fencing.
	MalformedJSON ParseErrorKind = "malformed_json"
	// IncompleteSchedule means a day sequence did not hold exactly 7 days.
	IncompleteSchedule ParseErrorKind = "incomplete_schedule"
	// MissingField means a required field was absent.
	MissingField ParseErrorKind = "missing_field"
	// InvalidField means a field was present but had an unusable type or value.
	InvalidField ParseErrorKind = "invalid_field"
)

// ParseError reports a classified failure from the plan parser. Excerpt holds
// the start of the raw provider text for server-side logs; it must never be
// returned to clients.
type ParseError struct {
	Kind    ParseErrorKind
	Path    string
	Excerpt string
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("plan parse failed (%s) at %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("plan parse failed (%s)", e.Kind)
}

const excerptLimit = 200

func newParseError(kind ParseErrorKind, path, raw string) *ParseError {
	excerpt := raw
	if len(excerpt) > excerptLimit {
		excerpt = excerpt[:excerptLimit]
	}
	return &ParseError{Kind: kind, Path: path, Excerpt: excerpt}
}

// FieldError is one offending field from profile validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every offending profile field, not just the first.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "invalid profile: " + strings.Join(parts, "; ")
}
