package xtest

import (
	"math/rand"
	"sync"
	"testing"
	"time"
)

type manyTimesOptions struct {
	timeout time.Duration
}

type ManyTimesOption func(o *manyTimesOptions)

// StopAfter overrides how long TestManyTimes keeps repeating the test.
func StopAfter(timeout time.Duration) ManyTimesOption {
	return func(o *manyTimesOptions) {
		o.timeout = timeout
	}
}

type TestFunc func(t testing.TB)

// TestManyTimes runs test repeatedly until timeout exceeded. The test runs at least once.
func TestManyTimes(t testing.TB, test TestFunc, opts ...ManyTimesOption) {
	t.Helper()

	options := manyTimesOptions{
		timeout: time.Second,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	start := time.Now()
	for {
		// run test, then check timeout for guarantee run test least once
		runTest(t, test)

		if time.Since(start) > options.timeout {
			return
		}
	}
}

func TestManyTimesWithName(t *testing.T, name string, test TestFunc, opts ...ManyTimesOption) {
	t.Helper()

	t.Run(name, func(t *testing.T) {
		t.Helper()
		TestManyTimes(t, test, opts...)
	})
}

// Rand returns a generator with a fresh seed. The seed is logged only when t fails.
func Rand(t testing.TB) *rand.Rand {
	t.Helper()

	seed := time.Now().UnixNano()
	t.Cleanup(func() {
		if t.Failed() {
			t.Logf("random seed: %d", seed)
		}
	})

	return rand.New(rand.NewSource(seed)) //nolint:gosec
}

func runTest(t testing.TB, test TestFunc) {
	t.Helper()

	tw := &testWrapper{
		TB: t,
	}

	defer tw.doCleanup()

	test(tw)
}

type testWrapper struct {
	testing.TB

	m       sync.Mutex
	cleanup []func()
}

func (tw *testWrapper) Cleanup(f func()) {
	tw.Helper()

	tw.m.Lock()
	defer tw.m.Unlock()

	tw.cleanup = append(tw.cleanup, f)
}

func (tw *testWrapper) doCleanup() {
	tw.Helper()

	for len(tw.cleanup) > 0 {
		last := tw.cleanup[len(tw.cleanup)-1]
		tw.cleanup = tw.cleanup[:len(tw.cleanup)-1]

		last()
	}
}
