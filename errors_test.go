package agnosticload_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/adamluzsi/agnosticload"
	"github.com/stretchr/testify/require"
)

const ErrExample agnosticload.Error = `example error`

func TestError_ErrorValueDeclarableAsConst(t *testing.T) {
	t.Parallel()

	var err error = ErrExample
	require.Equal(t, `example error`, err.Error())
}

func TestError_WrappedErrorMatchableWithErrorsIs(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf(`context: %w`, ErrExample)
	require.True(t, errors.Is(err, ErrExample))
}
