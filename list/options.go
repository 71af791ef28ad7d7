package list

import (
	"github.com/gonzen2310/singlylinkedlist/trace"
)

type Option func(o *options)

type options struct {
	trace *trace.List
}

// WithTrace appends hooks fired by list operations.
// Hooks run synchronously inside the operation and must not touch the list.
func WithTrace(t trace.List, opts ...trace.ListComposeOption) Option {
	return func(o *options) {
		o.trace = o.trace.Compose(&t, opts...)
	}
}
