package pool

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(128)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 128, bb.Cap())
}

func TestByteBuffer_Writes(t *testing.T) {
	bb := NewByteBuffer(0)

	bb.MustWrite([]byte("ab"))
	require.NoError(t, bb.WriteByte('c'))
	n, err := bb.WriteString("de")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = bb.Write([]byte{0x00})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Equal(t, []byte("abcde\x00"), bb.Bytes())
	assert.Equal(t, 6, bb.Len())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(64)
	bb.MustWrite([]byte("some data"))
	capBefore := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_PatchAt(t *testing.T) {
	t.Run("InRange", func(t *testing.T) {
		bb := NewByteBuffer(16)
		bb.MustWrite([]byte{0, 0, 0, 0, 0x02, 0x00})

		require.True(t, bb.PatchAt(0, []byte{6, 0, 0, 0}))
		assert.Equal(t, []byte{6, 0, 0, 0, 0x02, 0x00}, bb.Bytes())
	})

	t.Run("TailExactly", func(t *testing.T) {
		bb := NewByteBuffer(16)
		bb.MustWrite([]byte{1, 2, 3, 4})

		require.True(t, bb.PatchAt(2, []byte{9, 9}))
		assert.Equal(t, []byte{1, 2, 9, 9}, bb.Bytes())
	})

	t.Run("OutOfRange", func(t *testing.T) {
		bb := NewByteBuffer(16)
		bb.MustWrite([]byte{1, 2, 3})

		assert.False(t, bb.PatchAt(1, []byte{9, 9, 9}))
		assert.False(t, bb.PatchAt(-1, []byte{9}))
		assert.Equal(t, []byte{1, 2, 3}, bb.Bytes())
	})
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("SufficientCapacity", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(32)
		assert.Equal(t, 64, bb.Cap())
	})

	t.Run("SmallBufferGrowsByDefault", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.MustWrite([]byte("12345678"))
		bb.Grow(1)

		assert.Equal(t, 8+DocumentBufferDefaultSize, bb.Cap())
		assert.Equal(t, []byte("12345678"), bb.Bytes())
	})

	t.Run("LargeBufferGrowsByQuarter", func(t *testing.T) {
		size := 8 * DocumentBufferDefaultSize
		bb := NewByteBuffer(size)
		bb.MustWrite(make([]byte, size))
		bb.Grow(1)

		assert.Equal(t, size+size/4, bb.Cap())
	})

	t.Run("RequiredExceedsGrowth", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(3 * DocumentBufferDefaultSize)

		assert.GreaterOrEqual(t, bb.Cap(), 3*DocumentBufferDefaultSize)
	})
}

type failingWriter struct{}

var errWriteFailed = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWriteFailed }

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("payload"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, "payload", out.String())

	_, err = bb.WriteTo(failingWriter{})
	require.ErrorIs(t, err, errWriteFailed)
}

func TestByteBufferPool(t *testing.T) {
	t.Run("ReturnsResetBuffers", func(t *testing.T) {
		p := NewByteBufferPool(32, 0)
		bb := p.Get()
		bb.MustWrite([]byte("dirty"))
		p.Put(bb)

		again := p.Get()
		assert.Equal(t, 0, again.Len())
	})

	t.Run("NilPutIsIgnored", func(t *testing.T) {
		p := NewByteBufferPool(32, 0)
		require.NotPanics(t, func() { p.Put(nil) })
	})

	t.Run("OversizedBuffersDropped", func(t *testing.T) {
		p := NewByteBufferPool(32, 64)
		bb := p.Get()
		bb.Grow(1024)
		// Dropped buffers are not reset; the caller no longer owns them anyway.
		bb.MustWrite([]byte("x"))
		p.Put(bb)
		assert.Equal(t, 1, bb.Len())
	})

	t.Run("DocumentPool", func(t *testing.T) {
		bb := GetDocumentBuffer()
		require.NotNil(t, bb)
		assert.Equal(t, 0, bb.Len())
		PutDocumentBuffer(bb)
	})

	t.Run("ConcurrentAccess", func(t *testing.T) {
		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 100 {
					bb := GetDocumentBuffer()
					bb.MustWrite([]byte("abc"))
					PutDocumentBuffer(bb)
				}
			}()
		}
		wg.Wait()
	})
}
