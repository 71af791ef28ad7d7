package list

import (
	"fmt"
	"testing"

	"github.com/rekby/fixenv"
	"github.com/stretchr/testify/require"
)

// SeededList returns a fresh list built by appending values in order.
func SeededList(e fixenv.Env, values ...int) *LinkedList[int] {
	f := func() (*fixenv.GenericResult[*LinkedList[int]], error) {
		l := New[int]()
		for _, v := range values {
			l.Append(v)
		}

		return fixenv.NewGenericResult(l), nil
	}

	return fixenv.CacheResult(e, f, fixenv.CacheOptions{CacheKey: fmt.Sprint(values)})
}

// DemoList is [150, 7, 19] built the same way as the demo script: append 7, prepend 150, append 19.
func DemoList(e fixenv.Env) *LinkedList[int] {
	f := func() (*fixenv.GenericResult[*LinkedList[int]], error) {
		l := New[int]()
		l.Append(7)
		l.Prepend(150)
		l.Append(19)

		return fixenv.NewGenericResult(l), nil
	}

	return fixenv.CacheResult(e, f)
}

// requireChain checks head, tail and length against the chain reachable from head.
func requireChain[T comparable](t testing.TB, l *LinkedList[T], want ...T) {
	t.Helper()

	require.Equal(t, len(want), l.Len())
	require.Equal(t, len(want) == 0, l.IsEmpty())
	if len(want) == 0 {
		require.Nil(t, l.head)
		require.Nil(t, l.tail)

		return
	}
	require.NotNil(t, l.head)
	require.NotNil(t, l.tail)
	require.Nil(t, l.tail.next)

	var (
		n     = l.head
		count = 1
	)
	for n.next != nil {
		n = n.next
		count++
	}
	require.Same(t, l.tail, n, "tail must be the last reachable node")
	require.Equal(t, l.length, count)
	require.Equal(t, want, l.Values())
}
