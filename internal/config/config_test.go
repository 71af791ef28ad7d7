package config

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gonzen2310/singlylinkedlist/log"
	"github.com/gonzen2310/singlylinkedlist/trace"
)

func TestNew(t *testing.T) {
	for _, tt := range []struct {
		name string
		args []string
		exp  Config
	}{
		{
			name: "Defaults",
			args: nil,
			exp: Config{
				Mode:     DemoMode,
				LogLevel: log.QUIET,
				Details:  trace.ListEvents,
			},
		},
		{
			name: "Interactive",
			args: []string{"interactive", "-log-level", "debug", "-color"},
			exp: Config{
				Mode:     InteractiveMode,
				LogLevel: log.DEBUG,
				Coloring: true,
				Details:  trace.ListEvents,
			},
		},
		{
			name: "FlagsOnly",
			args: []string{"-zap", "-trace", `^list\.mutation\.delete$`},
			exp: Config{
				Mode:     DemoMode,
				LogLevel: log.QUIET,
				Zap:      true,
				Details:  trace.ListDeleteEvents,
			},
		},
		{
			name: "BadTracePattern",
			args: []string{"demo", "-trace", "("},
			exp: Config{
				Mode:     DemoMode,
				LogLevel: log.QUIET,
				Details:  trace.ListEvents,
			},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := New(tt.args, &bytes.Buffer{})
			require.NoError(t, err)
			require.Equal(t, tt.exp, *cfg)
		})
	}
}

func TestNewWrongArgs(t *testing.T) {
	t.Run("UnknownCommand", func(t *testing.T) {
		var out bytes.Buffer
		_, err := New([]string{"run"}, &out)
		require.ErrorIs(t, err, ErrWrongArgs)
		require.Equal(t, mainHelp, out.String())
	})
	t.Run("ExtraArgs", func(t *testing.T) {
		var out bytes.Buffer
		_, err := New([]string{"demo", "-color", "extra"}, &out)
		require.ErrorIs(t, err, ErrWrongArgs)
		require.Equal(t, optionsHelp, out.String())
	})
	t.Run("Help", func(t *testing.T) {
		var out bytes.Buffer
		_, err := New([]string{"-h"}, &out)
		require.ErrorIs(t, err, flag.ErrHelp)
		require.Contains(t, out.String(), "-log-level")
	})
}

func TestAppMode(t *testing.T) {
	require.Equal(t, "demo", DemoMode.String())
	require.Equal(t, "interactive", InteractiveMode.String())
}
