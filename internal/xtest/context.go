package xtest

import (
	"context"
	"runtime/pprof"
	"testing"
)

// Context returns a context labeled with the test name and cancelled on test cleanup.
func Context(t testing.TB) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = pprof.WithLabels(ctx, pprof.Labels("test", t.Name()))
	pprof.SetGoroutineLabels(ctx)

	t.Cleanup(cancel)

	return ctx
}
