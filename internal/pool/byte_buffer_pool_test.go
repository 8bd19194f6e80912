package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(64)
	require.NotNil(t, bb)
	assert.Equal(t, 0, len(bb.Bytes()))
	assert.Equal(t, 64, bb.Cap())
}

func TestByteBufferMustWriteGrowsPastStartingCapacity(t *testing.T) {
	bb := NewByteBuffer(4)

	bb.MustWrite([]byte{0x01, 0x02})
	bb.MustWrite([]byte{0x03, 0x04, 0x05, 0x06})

	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}, bb.Bytes())
}

func TestByteBufferMustWriteEmptyIsNoop(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite(nil)
	assert.Empty(t, bb.Bytes())
}

func TestByteBufferReset(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte{0x01, 0x02, 0x03})

	priorCap := bb.Cap()
	bb.Reset()

	assert.Empty(t, bb.Bytes())
	assert.Equal(t, priorCap, bb.Cap(), "Reset should retain the backing array")
}

func TestByteBufferPoolPutResetsBuffer(t *testing.T) {
	p := NewByteBufferPool(EncodeBufferDefaultSize, EncodeBufferMaxThreshold)

	bb := p.Get()
	bb.MustWrite([]byte("minecraft:stone"))
	p.Put(bb)

	got := p.Get()
	assert.Empty(t, got.Bytes(), "Put should reset the buffer before returning it to the pool")
}

func TestByteBufferPoolPutNilIsNoop(t *testing.T) {
	p := NewByteBufferPool(EncodeBufferDefaultSize, EncodeBufferMaxThreshold)
	assert.NotPanics(t, func() { p.Put(nil) })
}

func TestByteBufferPoolDiscardsOversizedBuffers(t *testing.T) {
	p := NewByteBufferPool(4, 8)

	bb := p.Get()
	bb.MustWrite(make([]byte, 32))
	require.Greater(t, bb.Cap(), 8)

	p.Put(bb)

	got := p.Get()
	assert.LessOrEqual(t, got.Cap(), 8, "an oversized buffer should be discarded, not pooled")
}

func TestByteBufferPoolZeroThresholdAlwaysAccepts(t *testing.T) {
	p := NewByteBufferPool(4, 0)

	bb := p.Get()
	bb.MustWrite(make([]byte, 1024))
	p.Put(bb)

	got := p.Get()
	assert.GreaterOrEqual(t, got.Cap(), 1024)
}

func TestByteBufferPoolConcurrentAccess(t *testing.T) {
	p := NewByteBufferPool(EncodeBufferDefaultSize, EncodeBufferMaxThreshold)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			bb := p.Get()
			bb.MustWrite([]byte{byte(n)})
			p.Put(bb)
		}(i)
	}
	wg.Wait()
}

func TestScratchBufferRoundTrip(t *testing.T) {
	bb := GetScratchBuffer()
	bb.MustWrite([]byte{0xAB, 0xCD})
	assert.Equal(t, []byte{0xAB, 0xCD}, bb.Bytes())
	PutScratchBuffer(bb)

	got := GetScratchBuffer()
	assert.Empty(t, got.Bytes())
	PutScratchBuffer(got)
}
