package xerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackTraceError(t *testing.T) {
	for _, test := range []struct {
		error error
		text  string
	}{
		{
			error: WithStackTrace(fmt.Errorf("fmt.Errorf")),
			//nolint:lll
			text: "fmt.Errorf at `github.com/gonzen2310/singlylinkedlist/internal/xerrors.TestStackTraceError(stacktrace_test.go:17)`",
		},
		{
			error: WithStackTrace(WithStackTrace(errors.New("errors.New"))),
			//nolint:lll
			text: "errors.New at `github.com/gonzen2310/singlylinkedlist/internal/xerrors.TestStackTraceError(stacktrace_test.go:22)` at `github.com/gonzen2310/singlylinkedlist/internal/xerrors.TestStackTraceError(stacktrace_test.go:22)`",
		},
		{
			error: wrapInHelper(errors.New("helper")),
			//nolint:lll
			text: "helper at `github.com/gonzen2310/singlylinkedlist/internal/xerrors.TestStackTraceError(stacktrace_test.go:27)`",
		},
	} {
		t.Run(test.text, func(t *testing.T) {
			require.Equal(t, test.text, test.error.Error())
		})
	}
}

func wrapInHelper(err error) error {
	return WithStackTrace(err, WithSkipDepth(1))
}

func TestStackTraceUnwrap(t *testing.T) {
	base := errors.New("base")
	err := WithStackTrace(WithStackTrace(base))
	require.ErrorIs(t, err, base)
	require.NoError(t, WithStackTrace(nil))
}
