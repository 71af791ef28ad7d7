package xerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	var (
		errA = errors.New("a")
		errB = errors.New("b")
		errC = errors.New("c")
	)
	err := fmt.Errorf("wrapped: %w", errB)
	require.True(t, Is(err, errA, errB))
	require.False(t, Is(err, errA, errC))
	require.Panics(t, func() {
		_ = Is(err)
	})
}

func TestAs(t *testing.T) {
	var target *indexErr
	require.False(t, As(nil, &target))
	require.True(t, As(WithStackTrace(&indexErr{loc: 1}), &target))
	require.Equal(t, 1, target.loc)
}

func TestErrIf(t *testing.T) {
	err := errors.New("test")
	require.ErrorIs(t, ErrIf(true, err), err)
	require.NoError(t, ErrIf(false, err))
}
