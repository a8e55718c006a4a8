// Package agnosticload provides uniform lazy iteration over heterogeneous data sources.
//
// The package root holds the contracts shared between the subpackages:
// the Iterator interface that represents a lazy sequence of values,
// and the Error type for declaring constant error values.
// The loaders subpackage implements input classification and loading,
// while the iterators subpackage supplies generic Iterator constructors and combinators.
package agnosticload

import (
	"io"
)

// Iterator define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
// https://en.wikipedia.org/wiki/Iterator_pattern
type Iterator[V any] interface {
	// Closer is required to make it able to cancel iterators where resources are being used behind the scene
	// for all other cases where the underling io is handled on a higher level, it should simply return nil
	io.Closer
	// Err return the error cause.
	Err() error
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
}
