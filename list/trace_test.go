package list

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gonzen2310/singlylinkedlist/trace"
)

type traceRecorder struct {
	inserts []trace.ListInsertDoneInfo
	deletes []trace.ListDeleteDoneInfo
	gets    []trace.ListGetDoneInfo
	finds   []trace.ListFindDoneInfo
	callers []string
}

func (r *traceRecorder) trace() trace.List {
	return trace.List{
		OnInsert: func(info trace.ListInsertStartInfo) func(trace.ListInsertDoneInfo) {
			r.callers = append(r.callers, info.Call.FunctionID())

			return func(info trace.ListInsertDoneInfo) {
				r.inserts = append(r.inserts, info)
			}
		},
		OnDelete: func(info trace.ListDeleteStartInfo) func(trace.ListDeleteDoneInfo) {
			r.callers = append(r.callers, info.Call.FunctionID())

			return func(info trace.ListDeleteDoneInfo) {
				r.deletes = append(r.deletes, info)
			}
		},
		OnGet: func(info trace.ListGetStartInfo) func(trace.ListGetDoneInfo) {
			r.callers = append(r.callers, info.Call.FunctionID())

			return func(info trace.ListGetDoneInfo) {
				r.gets = append(r.gets, info)
			}
		},
		OnFind: func(info trace.ListFindStartInfo) func(trace.ListFindDoneInfo) {
			r.callers = append(r.callers, info.Call.FunctionID())

			return func(info trace.ListFindDoneInfo) {
				r.finds = append(r.finds, info)
			}
		},
	}
}

func TestTrace(t *testing.T) {
	r := &traceRecorder{}
	l := New[int](WithTrace(r.trace()))

	l.Append(7)
	l.Prepend(150)
	require.NoError(t, l.Insert(19, l.Len()))
	require.NoError(t, l.Insert(1, -1))
	require.Error(t, l.Insert(1, 10))
	require.Len(t, r.inserts, 5)
	require.Equal(t, []trace.ListInsertDoneInfo{
		{Length: 1},
		{Length: 2},
		{Length: 3},
		{Length: 4},
		{Length: 4, Error: r.inserts[4].Error},
	}, r.inserts)
	require.ErrorIs(t, r.inserts[4].Error, ErrIndexOutOfRange)
	requireChain(t, l, 1, 150, 7, 19)

	_, err := l.Get(2)
	require.NoError(t, err)
	loc, err := l.Find(19)
	require.NoError(t, err)
	require.Equal(t, 3, loc)
	require.Equal(t, []trace.ListFindDoneInfo{{Loc: 3}}, r.finds)
	require.Len(t, r.gets, 1)

	require.NoError(t, l.DeleteValue(42))
	require.NoError(t, l.DeleteValue(150))
	_, err = l.DeleteLast()
	require.NoError(t, err)
	require.Equal(t, []trace.ListDeleteDoneInfo{
		{Length: 4, Removed: false},
		{Length: 3, Removed: true},
		{Length: 2, Removed: true},
	}, r.deletes)

	require.Equal(t, []string{
		"github.com/gonzen2310/singlylinkedlist/list.(*LinkedList).Append",
		"github.com/gonzen2310/singlylinkedlist/list.(*LinkedList).Prepend",
		"github.com/gonzen2310/singlylinkedlist/list.(*LinkedList).Insert",
		"github.com/gonzen2310/singlylinkedlist/list.(*LinkedList).Insert",
		"github.com/gonzen2310/singlylinkedlist/list.(*LinkedList).Insert",
		"github.com/gonzen2310/singlylinkedlist/list.(*LinkedList).Get",
		"github.com/gonzen2310/singlylinkedlist/list.(*LinkedList).Find",
		"github.com/gonzen2310/singlylinkedlist/list.(*LinkedList).DeleteValue",
		"github.com/gonzen2310/singlylinkedlist/list.(*LinkedList).DeleteValue",
		"github.com/gonzen2310/singlylinkedlist/list.(*LinkedList).DeleteLast",
	}, r.callers)
}

func TestTraceComposed(t *testing.T) {
	var a, b int
	l := New[int](
		WithTrace(trace.List{
			OnInsert: func(trace.ListInsertStartInfo) func(trace.ListInsertDoneInfo) {
				a++

				return nil
			},
		}),
		WithTrace(trace.List{
			OnInsert: func(trace.ListInsertStartInfo) func(trace.ListInsertDoneInfo) {
				b++

				return nil
			},
		}),
	)
	l.Append(1)
	require.Equal(t, 1, a)
	require.Equal(t, 1, b)
}
