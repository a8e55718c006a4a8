package iterators_test

import (
	"errors"
	"testing"

	"github.com/adamluzsi/agnosticload/iterators"
	"github.com/adamluzsi/testcase/assert"
)

func TestForEach_BlockGiven_EachValueVisitedInOrder(t *testing.T) {
	t.Parallel()

	var visited []int
	err := iterators.ForEach[int](iterators.Slice([]int{1, 2, 3}), func(n int) error {
		visited = append(visited, n)
		return nil
	})
	assert.Must(t).Nil(err)
	assert.Must(t).Equal([]int{1, 2, 3}, visited)
}

func TestForEach_BreakReturned_IterationStopsWithoutError(t *testing.T) {
	t.Parallel()

	var visited []int
	err := iterators.ForEach[int](iterators.Slice([]int{1, 2, 3}), func(n int) error {
		visited = append(visited, n)
		if n == 2 {
			return iterators.Break
		}
		return nil
	})
	assert.Must(t).Nil(err)
	assert.Must(t).Equal([]int{1, 2}, visited)
}

func TestForEach_BlockFails_ErrorReturned(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New(`boom`)
	err := iterators.ForEach[int](iterators.Slice([]int{1, 2, 3}), func(n int) error {
		return expectedErr
	})
	assert.Must(t).Equal(expectedErr, err)
}
