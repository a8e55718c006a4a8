package iterators

import (
	"github.com/adamluzsi/agnosticload"
)

// First takes the first value of the iterator and closes the iterator.
func First[T any](i agnosticload.Iterator[T]) (value T, found bool, rErr error) {
	defer func() {
		cErr := i.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()

	if !i.Next() {
		return value, false, i.Err()
	}

	return i.Value(), true, i.Err()
}
