package iterators

import (
	"github.com/adamluzsi/agnosticload"
)

// Count will iterate over and count the total iterations number
//
// Good when all you want is count all the elements in an iterator but don't want to do anything else.
func Count[T any](i agnosticload.Iterator[T]) (total int, rErr error) {
	defer func() {
		cErr := i.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()

	for i.Next() {
		total++
	}

	return total, i.Err()
}
