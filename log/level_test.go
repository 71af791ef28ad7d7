package log

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	for _, tt := range []struct {
		s   string
		lvl Level
	}{
		{s: "trace", lvl: TRACE},
		{s: "DEBUG", lvl: DEBUG},
		{s: "Info", lvl: INFO},
		{s: "warn", lvl: WARN},
		{s: "error", lvl: ERROR},
		{s: "fatal", lvl: FATAL},
		{s: "quiet", lvl: QUIET},
		{s: "verbose", lvl: QUIET},
	} {
		t.Run(tt.s, func(t *testing.T) {
			require.Equal(t, tt.lvl, FromString(tt.s))
		})
	}
	t.Run("String", func(t *testing.T) {
		require.Equal(t, "WARN", WARN.String())
		require.Equal(t, "QUIET", Level(42).String())
		require.Equal(t, colorReset, Level(-1).Color())
		require.Equal(t, "\033[101m", ERROR.BoldColor())
	})
}
