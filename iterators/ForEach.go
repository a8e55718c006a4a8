package iterators

import (
	"github.com/adamluzsi/agnosticload"
)

// Break can be returned from the ForEach block to stop the iteration early without an error.
const Break agnosticload.Error = `iterators:break`

func ForEach[T any](i agnosticload.Iterator[T], fn func(T) error) (rErr error) {
	defer func() {
		cErr := i.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()

	for i.Next() {
		if err := fn(i.Value()); err != nil {
			if err == Break {
				break
			}
			return err
		}
	}

	return i.Err()
}
