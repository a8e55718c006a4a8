package loaders

import (
	"fmt"

	"github.com/adamluzsi/agnosticload"
)

// ErrUnsupportedInput is returned when the input value matches none of the recognized shapes.
const ErrUnsupportedInput agnosticload.Error = `ErrUnsupportedInput`

// ParseError is returned when a JSON document fails to parse,
// either a whole string input or a single line of a line-oriented file.
type ParseError struct {
	// Path is the source file path, or empty for in-memory inputs.
	Path string
	// Line is the offending line / document content.
	Line string
	// Err is the cause returned by the JSON decoder.
	Err error
}

func (err *ParseError) Error() string {
	if err.Path != `` {
		return fmt.Sprintf("%s: parsing line %q: %v", err.Path, truncate(err.Line), err.Err)
	}
	return fmt.Sprintf("parsing %q: %v", truncate(err.Line), err.Err)
}

func (err *ParseError) Unwrap() error { return err.Err }

func truncate(line string) string {
	const max = 64
	if len(line) <= max {
		return line
	}
	return line[:max] + `...`
}
