package iterators_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/adamluzsi/agnosticload/iterators"
	"github.com/adamluzsi/testcase/assert"
)

func TestFirst_NonEmptyIteratorGiven_FirstValueReturned(t *testing.T) {
	t.Parallel()

	v, found, err := iterators.First[int](iterators.Slice([]int{42, 4, 2}))
	assert.Must(t).Nil(err)
	assert.Must(t).True(found)
	assert.Must(t).Equal(42, v)
}

func TestFirst_EmptyIteratorGiven_NotFoundReturned(t *testing.T) {
	t.Parallel()

	_, found, err := iterators.First[int](iterators.Empty[int]())
	assert.Must(t).Nil(err)
	assert.Must(t).False(found)
}

func TestFirst_ErrorIteratorGiven_ErrorReturned(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New(`boom`)
	_, found, err := iterators.First[int](iterators.NewError[int](expectedErr))
	assert.Must(t).False(found)
	assert.Must(t).Equal(expectedErr, err)
}

func TestFirst_IteratorGiven_IteratorClosedEvenOnEarlyReturn(t *testing.T) {
	t.Parallel()

	rc := NewReadCloser(strings.NewReader("a\nb\nc"))
	v, found, err := iterators.First[string](iterators.NewScanner[string](rc))
	assert.Must(t).Nil(err)
	assert.Must(t).True(found)
	assert.Must(t).Equal(`a`, v)
	assert.Must(t).True(rc.IsClosed)
}
