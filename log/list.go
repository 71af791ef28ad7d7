package log

import (
	"context"
	"time"

	"github.com/gonzen2310/singlylinkedlist/internal/kv"
	"github.com/gonzen2310/singlylinkedlist/trace"
)

// List returns trace.List with logging events from details
func List(l Logger, d trace.Detailer) (t trace.List) {
	t.OnInsert = func(info trace.ListInsertStartInfo) func(trace.ListInsertDoneInfo) {
		if d.Details()&trace.ListInsertEvents == 0 {
			return nil
		}
		ctx := with(context.Background(), TRACE, "list", "insert")
		l.Log(ctx, "start",
			String("call", info.Call.FunctionID()),
			Int("loc", info.Loc),
			Int("length", info.Length),
		)
		start := time.Now()

		return func(info trace.ListInsertDoneInfo) {
			if info.Error == nil {
				l.Log(WithLevel(ctx, DEBUG), "done",
					kv.Latency(start),
					Int("length", info.Length),
				)
			} else {
				l.Log(WithLevel(ctx, WARN), "failed",
					Error(info.Error),
					kv.Latency(start),
					Int("length", info.Length),
				)
			}
		}
	}
	t.OnDelete = func(info trace.ListDeleteStartInfo) func(trace.ListDeleteDoneInfo) {
		if d.Details()&trace.ListDeleteEvents == 0 {
			return nil
		}
		ctx := with(context.Background(), TRACE, "list", "delete")
		l.Log(ctx, "start",
			String("call", info.Call.FunctionID()),
			Int("loc", info.Loc),
			Int("length", info.Length),
		)
		start := time.Now()

		return func(info trace.ListDeleteDoneInfo) {
			if info.Error == nil {
				l.Log(WithLevel(ctx, DEBUG), "done",
					kv.Latency(start),
					Bool("removed", info.Removed),
					Int("length", info.Length),
				)
			} else {
				l.Log(WithLevel(ctx, WARN), "failed",
					Error(info.Error),
					kv.Latency(start),
					Int("length", info.Length),
				)
			}
		}
	}
	t.OnGet = func(info trace.ListGetStartInfo) func(trace.ListGetDoneInfo) {
		if d.Details()&trace.ListLookupEvents == 0 {
			return nil
		}
		ctx := with(context.Background(), TRACE, "list", "get")
		loc := info.Loc

		return func(info trace.ListGetDoneInfo) {
			if info.Error != nil {
				l.Log(WithLevel(ctx, WARN), "failed",
					Error(info.Error),
					Int("loc", loc),
				)
			}
		}
	}
	t.OnFind = func(info trace.ListFindStartInfo) func(trace.ListFindDoneInfo) {
		if d.Details()&trace.ListLookupEvents == 0 {
			return nil
		}
		ctx := with(context.Background(), TRACE, "list", "find")
		start := time.Now()

		return func(info trace.ListFindDoneInfo) {
			if info.Error != nil {
				l.Log(WithLevel(ctx, WARN), "failed",
					Error(info.Error),
				)

				return
			}
			l.Log(ctx, "done",
				kv.Latency(start),
				Int("loc", info.Loc),
				Bool("found", info.Loc >= 0),
			)
		}
	}

	return t
}
