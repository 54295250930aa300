package evaluation

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat      = errors.New("unsupported document format")
	ErrModelUnavailable       = errors.New("model unavailable")
	ErrMalformedModelResponse = errors.New("malformed model response")
	ErrNoJSONFound            = errors.New("no json object found in model response")
	ErrInvalidJSON            = errors.New("invalid json in model response")
	ErrUnknownCriterion       = errors.New("unknown criterion")
	ErrPersistence            = errors.New("report persistence failed")
	ErrValidation             = errors.New("validation failed")
)

// ParseError keeps the raw model text so callers can log it. It is never
// meant to be shown to end users.
type ParseError struct {
	Kind   error
	Detail string
	Raw    string
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Detail)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

func parseErr(kind error, raw string, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Raw: raw, Detail: fmt.Sprintf(format, args...)}
}

// IsParseFailure reports whether err comes from decoding a model response.
func IsParseFailure(err error) bool {
	return errors.Is(err, ErrNoJSONFound) ||
		errors.Is(err, ErrInvalidJSON) ||
		errors.Is(err, ErrMalformedModelResponse)
}
