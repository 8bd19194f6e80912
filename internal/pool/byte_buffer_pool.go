package pool

import "sync"

// EncodeBufferDefaultSize is the starting capacity for a pooled scratch
// buffer. It comfortably covers a single catalog message's encoded form
// (handshake, explosion records, a slot stack) without a reallocation;
// ChunkData's large Data payload bypasses the pool entirely and streams
// straight to the writer (see ChunkData.AsyncEncode in protocol/play/client).
const (
	EncodeBufferDefaultSize  = 1024      // 1KiB
	EncodeBufferMaxThreshold = 1024 * 64 // 64KiB
)

// ByteBuffer is a growable byte scratch buffer reused via ByteBufferPool
// to keep EncodeViaBuffer's per-call staging off the allocator.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given starting capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the buffer's current contents.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer while retaining its backing array.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Cap returns the buffer's current capacity.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary. It never
// fails, matching the teacher's encode-time scratch buffer contract that
// bufferWriter (wire/async.go) relies on.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// ByteBufferPool is a sync.Pool of ByteBuffers, discarding any buffer that
// grew past maxThreshold instead of returning it to the pool, so one
// oversized encode doesn't inflate every later caller's allocation.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a ByteBufferPool whose buffers start at
// defaultSize and are discarded, rather than pooled, once their capacity
// exceeds maxThreshold (0 disables the threshold).
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse, discarding it instead if
// it grew past the pool's maxThreshold.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && bb.Cap() > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var scratchPool = NewByteBufferPool(EncodeBufferDefaultSize, EncodeBufferMaxThreshold)

// GetScratchBuffer retrieves a ByteBuffer from the package-wide scratch
// pool used to stage one field's encoded form before an async write.
func GetScratchBuffer() *ByteBuffer {
	return scratchPool.Get()
}

// PutScratchBuffer returns a ByteBuffer to the scratch pool.
func PutScratchBuffer(bb *ByteBuffer) {
	scratchPool.Put(bb)
}
