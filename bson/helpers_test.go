package bson

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bsonstream/format"
)

// encodeDocument writes one top-level document with fn and returns a copy of
// its bytes.
func encodeDocument(t testing.TB, fn func(w *Writer) error) []byte {
	t.Helper()

	w, err := NewBufferWriter()
	require.NoError(t, err)
	require.NoError(t, w.StartDocument())
	require.NoError(t, fn(w))
	require.NoError(t, w.EndDocument())
	require.Zero(t, w.Depth())

	return bytes.Clone(w.Bytes())
}

// openDocument returns a Reader positioned inside the top-level document of data.
func openDocument(t testing.TB, data []byte, opts ...ReaderOption) *Reader {
	t.Helper()

	r, err := NewBytesReader(data, opts...)
	require.NoError(t, err)
	require.NoError(t, r.StartDocument())

	return r
}

// next reads the next element and requires it to be named name.
func next(t testing.TB, r *Reader, name string) {
	t.Helper()

	ok, err := r.Read()
	require.NoError(t, err)
	require.True(t, ok, "expected element %q", name)
	require.Equal(t, name, r.Name())
}

// requireEnd requires the innermost frame to have no more elements.
func requireEnd(t testing.TB, r *Reader) {
	t.Helper()

	ok, err := r.Read()
	require.NoError(t, err)
	require.False(t, ok, "unexpected element %q", r.Name())
}

func le32(v int32) []byte {
	return binary.LittleEndian.AppendUint32(nil, uint32(v)) //nolint:gosec
}

func rawString(s string) []byte {
	out := le32(int32(len(s) + 1)) //nolint:gosec
	out = append(out, s...)

	return append(out, 0)
}

func rawElement(t format.ElementType, name string, payload ...[]byte) []byte {
	out := append([]byte{byte(t)}, name...)
	out = append(out, 0)
	for _, p := range payload {
		out = append(out, p...)
	}

	return out
}

func rawDocument(elements ...[]byte) []byte {
	body := bytes.Join(elements, nil)
	out := le32(int32(len(body) + minDocumentSize)) //nolint:gosec
	out = append(out, body...)

	return append(out, 0)
}

// closeTracker records whether Close was called.
type closeTracker struct {
	bytes.Buffer
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

var errSink = errors.New("sink failure")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errSink
}
