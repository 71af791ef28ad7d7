package xstring

import (
	"bytes"
	"sync"
)

type buffer struct {
	bytes.Buffer
}

var buffersPool = sync.Pool{New: func() interface{} {
	return &buffer{}
}}

// Buffer returns an empty pooled buffer. Call Free when done with it.
func Buffer() *buffer {
	b := buffersPool.Get().(*buffer) //nolint:forcetypeassert
	b.Reset()

	return b
}

func (b *buffer) Free() {
	buffersPool.Put(b)
}
