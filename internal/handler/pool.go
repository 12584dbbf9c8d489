package handler

import (
	"bytes"
	"sync"
)

// maxPooledBufferBytes keeps large listing-page responses from pinning
// memory in the pool.
const maxPooledBufferBytes = 64 << 10

// bufferPool reuses bytes.Buffer values across JSON response encodes.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferBytes {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
