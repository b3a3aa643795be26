package bson

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/bsonstream/endian"
	"github.com/arloliu/bsonstream/errs"
	"github.com/arloliu/bsonstream/internal/pool"
)

// sink is the Writer's byte target.
//
// Every write appends to buf. In buffer mode buf is the whole output. In
// stream mode buf holds the pending bytes starting at absolute offset base,
// and flush moves them to out.
//
// patchInt32At is the only operation that touches bytes behind the cursor.
// A patch that lands in buf is a slice write; one behind base needs a
// seekable out.
type sink struct {
	buf            *pool.ByteBuffer
	base           int64
	out            io.Writer
	seeker         io.Seeker
	closer         io.Closer
	pooled         bool
	flushThreshold int
	engine         endian.EndianEngine
}

func newBufferSink(initialSize int) sink {
	return sink{
		buf:    pool.NewByteBuffer(initialSize),
		engine: endian.GetLittleEndianEngine(),
	}
}

func newStreamSink(w io.Writer, flushThreshold int) sink {
	s := sink{
		buf:            pool.GetDocumentBuffer(),
		out:            w,
		pooled:         true,
		flushThreshold: flushThreshold,
		engine:         endian.GetLittleEndianEngine(),
	}

	if c, ok := w.(io.Closer); ok {
		s.closer = c
	}

	// Writers that report a position (files) may start mid-stream and can be
	// patched after a flush. Anything else (pipes, sockets) only flushes
	// between top-level documents.
	if seeker, ok := w.(io.Seeker); ok {
		if pos, err := seeker.Seek(0, io.SeekCurrent); err == nil {
			s.seeker = seeker
			s.base = pos
		}
	}

	return s
}

// position returns the absolute offset of the next byte to be written.
func (s *sink) position() int64 {
	return s.base + int64(s.buf.Len())
}

// canFlush reports whether pending bytes may leave memory at the given depth.
func (s *sink) canFlush(depth int) bool {
	if s.out == nil {
		return false
	}

	return depth == 0 || s.seeker != nil
}

// maybeFlush flushes once the pending bytes reach the threshold.
func (s *sink) maybeFlush(depth int) error {
	if s.buf.Len() < s.flushThreshold || !s.canFlush(depth) {
		return nil
	}

	return s.flush()
}

func (s *sink) flush() error {
	if s.out == nil || s.buf.Len() == 0 {
		return nil
	}

	n, err := s.buf.WriteTo(s.out)
	if err != nil {
		return fmt.Errorf("flush %d pending bytes: %w", s.buf.Len(), err)
	}

	s.base += n
	s.buf.Reset()

	return nil
}

// patchInt32At overwrites the four bytes at absolute offset pos with v.
func (s *sink) patchInt32At(pos int64, v int32) error {
	var b [4]byte
	endian.PutInt32(s.engine, b[:], v)

	if pos >= s.base {
		if !s.buf.PatchAt(int(pos-s.base), b[:]) {
			return fmt.Errorf("%w: patch offset %d outside pending bytes", errs.ErrInvalidOperation, pos)
		}

		return nil
	}

	if s.seeker == nil {
		return fmt.Errorf("%w: patch offset %d already flushed to a non-seekable writer", errs.ErrInvalidOperation, pos)
	}

	if err := s.flush(); err != nil {
		return err
	}

	if _, err := s.seeker.Seek(pos, io.SeekStart); err != nil {
		return fmt.Errorf("seek to length prefix at %d: %w", pos, err)
	}

	if _, err := s.out.Write(b[:]); err != nil {
		return fmt.Errorf("write length prefix at %d: %w", pos, err)
	}

	if _, err := s.seeker.Seek(s.base, io.SeekStart); err != nil {
		return fmt.Errorf("seek back to %d: %w", s.base, err)
	}

	return nil
}

// release flushes pending bytes, returns the staging buffer to the pool and
// closes out when owned.
func (s *sink) release(owned bool) error {
	err := s.flush()

	if s.pooled {
		pool.PutDocumentBuffer(s.buf)
		s.buf = pool.NewByteBuffer(0)
		s.pooled = false
	}

	if owned && s.closer != nil {
		err = errors.Join(err, s.closer.Close())
	}
	s.out = nil
	s.seeker = nil
	s.closer = nil

	return err
}
