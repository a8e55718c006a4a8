package iterators_test

import (
	"errors"
	"testing"

	"github.com/adamluzsi/agnosticload"
	"github.com/adamluzsi/agnosticload/iterators"
	"github.com/adamluzsi/testcase/assert"
)

var _ agnosticload.Iterator[any] = iterators.NewError[any](errors.New("boom"))

func TestNewError_ErrorGiven_NotIterableIteratorReturnedWithError(t *testing.T) {
	t.Parallel()

	expectedError := errors.New("Boom!")
	i := iterators.NewError[any](expectedError)
	assert.Must(t).False(i.Next())
	assert.Must(t).Nil(i.Value())
	assert.Must(t).Equal(expectedError, i.Err())
	assert.Must(t).Nil(i.Close())
}
