package handler

import (
	"bytes"
	"sync"
)

// A batch report for a few dozen pets fits without regrowing
const initialBufferSize = 4 << 10

// Buffers grown past this size are not returned to the pool
const maxPooledBufferSize = 1 << 20

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
