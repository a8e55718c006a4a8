// Package loaders provides a Loader that turns heterogeneous data sources into one uniform lazy record sequence.
//
// A record is one logical unit of data: a mapping input is a single record,
// each element of a sequence is a record, a JSON string is a single parsed record,
// each line of a line-oriented file (plain or gzip compressed) is a record,
// and a directory concatenates the records of its descendants.
package loaders

import (
	"encoding/json"
	"fmt"

	"github.com/adamluzsi/agnosticload"
	"github.com/adamluzsi/agnosticload/iterators"
	"github.com/adamluzsi/agnosticload/lazyload"
)

// New returns a Loader bound to the given input value.
// Construction performs no I/O; classification and resource usage happen
// when the sequence returned by Load is consumed.
func New(input interface{}) *Loader {
	return &Loader{Input: input}
}

// Loader inspects its input value's shape and produces a lazy sequence of records from it.
// For container inputs such as directories it constructs nested Loaders
// and flattens their outputs into one continuous sequence.
type Loader struct {
	// Input is the raw input value that needs to be loaded.
	Input interface{}
	// FileFilter optionally limits which directory entries are loaded, by entry base name.
	// The zero value loads every entry. The filter propagates into nested directories.
	FileFilter func(name string) bool

	shape lazyload.Var[classification]
}

type classification struct {
	Shape Shape
	Err   error
}

// Classify reports the shape of the Loader's input.
// The input is classified at most once per Loader instance.
func (l *Loader) Classify() (Shape, error) {
	c := l.shape.Get(func() classification {
		shape, err := Classify(l.Input)
		return classification{Shape: shape, Err: err}
	})
	return c.Shape, c.Err
}

// Load produces the lazy record sequence of the Loader's input.
// Classification failures and resource errors are carried by the returned iterator's Err,
// the first error encountered aborts the whole load.
// Closing the iterator before exhaustion releases every resource held by the load.
func (l *Loader) Load() agnosticload.Iterator[any] {
	shape, err := l.Classify()
	if err != nil {
		return iterators.NewError[any](err)
	}
	switch shape {
	case Mapping:
		return iterators.SingleValue[any](l.Input)
	case Sequence:
		return l.sequence()
	case JSONString:
		return l.jsonString()
	case JSONFile:
		return openLineFile(l.Input.(string), modeJSON)
	case DelimitedFile:
		return openLineFile(l.Input.(string), modeDelimited)
	case GzipFile:
		return openGzipFile(l.Input.(string))
	case Directory:
		return l.directory()
	default:
		return iterators.NewError[any](fmt.Errorf(`%w: %v`, ErrUnsupportedInput, shape))
	}
}

func (l *Loader) jsonString() agnosticload.Iterator[any] {
	raw := l.Input.(string)
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return iterators.NewError[any](&ParseError{Line: raw, Err: err})
	}
	return iterators.SingleValue[any](v)
}
