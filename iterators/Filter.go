package iterators

import (
	"github.com/adamluzsi/agnosticload"
)

// Filter will keep only those values from the source iterator where the selector returns true.
func Filter[T any](i agnosticload.Iterator[T], selector func(T) bool) *FilterIter[T] {
	return &FilterIter[T]{src: i, match: selector}
}

type FilterIter[T any] struct {
	src   agnosticload.Iterator[T]
	match func(T) bool

	value T
}

func (fi *FilterIter[T]) Close() error {
	return fi.src.Close()
}

func (fi *FilterIter[T]) Err() error {
	return fi.src.Err()
}

func (fi *FilterIter[T]) Next() bool {
	for fi.src.Next() {
		v := fi.src.Value()
		if fi.match(v) {
			fi.value = v
			return true
		}
	}
	return false
}

func (fi *FilterIter[T]) Value() T {
	return fi.value
}
