package fetch

import (
	"errors"
	"fmt"
)

var (
	// ErrParse matches every *ParseError via errors.Is.
	ErrParse = errors.New("failed to parse RDF data")

	// ErrBodyTooLarge is returned when a response exceeds the configured limit.
	ErrBodyTooLarge = errors.New("response body exceeds size limit")
)

// ParseError reports a 200 response in an accepted format whose body could
// not be turned into a graph. It is never returned for the "no graph" cases
// (non-200 status, unaccepted content type).
type ParseError struct {
	URL      string
	MimeType string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", ErrParse.Error(), e.Err)
}

// Unwrap returns the parser error.
func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
