package xtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTestManyTimes(t *testing.T) {
	var (
		runs     int
		cleanups int
	)
	TestManyTimes(t, func(t testing.TB) {
		runs++
		t.Cleanup(func() {
			cleanups++
		})
	}, StopAfter(10*time.Millisecond))
	require.Positive(t, runs)
	require.Equal(t, runs, cleanups)
}

func TestRand(t *testing.T) {
	r := Rand(t)
	v := r.Intn(10)
	require.GreaterOrEqual(t, v, 0)
	require.Less(t, v, 10)
}
