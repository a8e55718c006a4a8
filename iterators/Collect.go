package iterators

import (
	"github.com/adamluzsi/agnosticload"
)

// Collect drains the iterator into a slice and closes it.
func Collect[T any](i agnosticload.Iterator[T]) (vs []T, rErr error) {
	defer func() {
		cErr := i.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()

	for i.Next() {
		vs = append(vs, i.Value())
	}

	return vs, i.Err()
}
