package bson

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/arloliu/bsonstream/endian"
	"github.com/arloliu/bsonstream/errs"
	"github.com/arloliu/bsonstream/format"
	"github.com/arloliu/bsonstream/internal/intern"
	"github.com/arloliu/bsonstream/internal/options"
)

var (
	numericTypes = []format.ElementType{format.TypeInt32, format.TypeInt64, format.TypeDouble}
	stringTypes  = []format.ElementType{format.TypeString, format.TypeJavaScript, format.TypeSymbol}
)

// maxScratchSize is the largest payload read into a buffer sized from its
// length prefix. Longer payloads grow with the bytes actually read.
const maxScratchSize = 64 * 1024

// Reader decodes documents element by element without look-ahead.
//
// The caller drives it: StartDocument opens a document, Read advances to the
// next element and exposes its name and type, and a typed reader (or Skip)
// consumes the value. Embedded documents and arrays are entered with
// StartNestedDocument and StartArray and left with EndDocument and EndArray.
//
//	for {
//	    ok, err := r.Read()
//	    if err != nil || !ok {
//	        break
//	    }
//	    switch r.Name() {
//	    case "age":
//	        age, err = r.ReadInt32()
//	    default:
//	        err = r.Skip()
//	    }
//	}
//
// A value the caller neither reads nor skips is skipped by the next Read.
// EndDocument may be called before the last element; the rest of the
// document is discarded.
//
// Framing errors and source errors are sticky: once one is returned, every
// later call returns it. A type mismatch is not; the element stays current
// and may still be read with another accessor or skipped. A bad Boolean byte
// or GUID length consumes the value and leaves the Reader usable.
//
// Note: The Reader is NOT thread-safe.
type Reader struct {
	src     *bufio.Reader
	closer  io.Closer
	cfg     *ReaderConfig
	engine  endian.EndianEngine
	names   *intern.Table
	frames  stack[readerFrame]
	pos     int64
	limit   int64
	name    string
	typ     format.ElementType
	pending bool
	scratch []byte
	iterErr error
	err     error
	closed  bool
}

// NewReader creates a Reader that decodes from src.
//
// Unless WithReaderLeaveOpen is given, Close also closes src if it is an
// io.Closer.
//
// Parameters:
//   - src: Source of encoded documents, read through a bufio.Reader
//   - opts: Optional configuration (WithReaderLeaveOpen, WithReadBufferSize, WithMaxDepth, WithNameInterning)
//
// Returns:
//   - *Reader: New reader positioned before the first document
//   - error: Configuration error if an option is invalid
func NewReader(src io.Reader, opts ...ReaderOption) (*Reader, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", errs.ErrInvalidArgument)
	}

	cfg, err := options.Build(newReaderConfig, opts...)
	if err != nil {
		return nil, err
	}

	r := newReader(bufio.NewReaderSize(src, cfg.bufferSize), cfg)
	if c, ok := src.(io.Closer); ok {
		r.closer = c
	}

	return r, nil
}

// NewBytesReader creates a Reader over an in-memory encoding.
// The Reader does not retain data after it has been consumed.
func NewBytesReader(data []byte, opts ...ReaderOption) (*Reader, error) {
	cfg, err := options.Build(newReaderConfig, opts...)
	if err != nil {
		return nil, err
	}

	size := min(cfg.bufferSize, len(data))

	r := newReader(bufio.NewReaderSize(bytes.NewReader(data), size), cfg)
	r.limit = int64(len(data))

	return r, nil
}

func newReader(src *bufio.Reader, cfg *ReaderConfig) *Reader {
	r := &Reader{
		src:    src,
		cfg:    cfg,
		engine: endian.GetLittleEndianEngine(),
		limit:  -1,
	}

	if cfg.internNames {
		r.names = intern.NewTable(intern.DefaultMaxEntries)
	}

	return r
}

// Close releases the Reader. It closes the source unless the Reader was
// created WithReaderLeaveOpen. Close is idempotent.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	if r.err == nil {
		r.err = errs.ErrReaderClosed
	}
	r.names = nil
	r.scratch = nil

	var err error
	if !r.cfg.leaveOpen && r.closer != nil {
		err = r.closer.Close()
	}
	r.closer = nil

	return err
}

// Reset discards all decoding state and continues with src, keeping the
// Reader's buffers. The name table is cleared. The previous source is not
// closed; src is owned under the same rules as in NewReader.
//
// Returns:
//   - error: ErrInvalidArgument for a nil src, ErrReaderClosed after Close
func (r *Reader) Reset(src io.Reader) error {
	if src == nil {
		return fmt.Errorf("%w: nil source", errs.ErrInvalidArgument)
	}

	if r.closed {
		return errs.ErrReaderClosed
	}

	r.src.Reset(src)
	r.closer = nil
	if c, ok := src.(io.Closer); ok {
		r.closer = c
	}

	if r.names != nil {
		r.names.Reset()
	}

	r.frames.reset()
	r.pos = 0
	r.limit = -1
	r.name, r.typ = "", format.TypeTerminator
	r.pending = false
	r.iterErr = nil
	r.err = nil

	return nil
}

// NameStats describes the element name table of a Reader.
type NameStats struct {
	// Retained is the number of distinct names held by the table.
	Retained int
	// Hits counts names returned from the table instead of being allocated.
	Hits int
	// Collisions counts names whose hash matched a different retained name.
	Collisions int
}

// NameStats reports the element name table counters since the Reader was
// created or last Reset. It is zero when name interning is disabled.
func (r *Reader) NameStats() NameStats {
	if r.names == nil {
		return NameStats{}
	}

	return NameStats{
		Retained:   r.names.Len(),
		Hits:       r.names.Hits(),
		Collisions: r.names.Collisions(),
	}
}

// Depth returns the number of open documents and arrays.
func (r *Reader) Depth() int {
	return r.frames.len()
}

// Position returns the number of bytes consumed from the source.
func (r *Reader) Position() int64 {
	return r.pos
}

// IsInArray reports whether the innermost open frame is an array.
func (r *Reader) IsInArray() bool {
	f := r.frames.top()
	return f != nil && f.isArray
}

// Name returns the name of the element returned by the last successful Read.
func (r *Reader) Name() string {
	return r.name
}

// Type returns the type of the element returned by the last successful Read,
// or format.TypeTerminator when there is none.
func (r *Reader) Type() format.ElementType {
	return r.typ
}

// StartDocument opens the next top-level document.
//
// Returns:
//   - error: io.EOF (unwrapped) when the source ends cleanly before a document,
//     ErrFrameAlreadyOpen if a document is open, ErrInvalidLength for a bad prefix
func (r *Reader) StartDocument() error {
	if r.err != nil {
		return r.err
	}

	if r.frames.len() != 0 {
		return fmt.Errorf("%w: use StartNestedDocument for embedded documents", errs.ErrFrameAlreadyOpen)
	}

	var b [4]byte
	n, err := io.ReadFull(r.src, b[:])
	r.pos += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) && n == 0 {
			return io.EOF
		}

		return r.fail(r.ioError(err))
	}

	return r.openFrame(r.pos-4, endian.Int32(r.engine, b[:]), false)
}

// StartNestedDocument enters the current element, which must be a Document.
func (r *Reader) StartNestedDocument() error {
	return r.startNested(format.TypeDocument)
}

// StartArray enters the current element, which must be an Array.
func (r *Reader) StartArray() error {
	return r.startNested(format.TypeArray)
}

// Read advances to the next element of the innermost open frame.
//
// It returns false without consuming the terminator once the frame has no
// more elements; EndDocument or EndArray then closes the frame.
//
// Returns:
//   - bool: true if an element was read; Name and Type describe it
//   - error: ErrNoOpenFrame outside a document, ErrUnknownElementType for an
//     unknown type tag, or a malformed data or source error
func (r *Reader) Read() (bool, error) {
	if r.err != nil {
		return false, r.err
	}

	if r.frames.len() == 0 {
		return false, errs.ErrNoOpenFrame
	}

	if r.pending {
		if err := r.Skip(); err != nil {
			return false, err
		}
	}
	r.name, r.typ = "", format.TypeTerminator

	f := r.frames.top()
	if r.pos >= f.end {
		return false, nil
	}

	b, err := r.src.Peek(1)
	if err != nil {
		return false, r.fail(r.ioError(err))
	}

	t := format.ElementType(b[0])
	if t == format.TypeTerminator {
		return false, nil
	}

	_, _ = r.src.Discard(1)
	r.pos++

	if !t.IsKnown() {
		return false, r.fail(fmt.Errorf("%w: tag 0x%02x at offset %d", errs.ErrUnknownElementType, byte(t), r.pos-1))
	}

	name, err := r.readCString()
	if err != nil {
		return false, err
	}

	if r.names != nil {
		r.name = r.names.Intern(name)
	} else {
		r.name = string(name)
	}
	r.typ = t
	r.pending = true

	return true, nil
}

// Elements returns an iterator over the remaining elements of the innermost
// frame. Each step yields the element name and type; the body reads or skips
// the value. Iteration stops at the end of the frame or at the first error,
// which Err reports.
func (r *Reader) Elements() iter.Seq2[string, format.ElementType] {
	return func(yield func(string, format.ElementType) bool) {
		r.iterErr = nil

		for {
			ok, err := r.Read()
			if err != nil {
				r.iterErr = err
				return
			}

			if !ok || !yield(r.name, r.typ) {
				return
			}
		}
	}
}

// Err returns the error that stopped the last Elements iteration.
func (r *Reader) Err() error {
	return r.iterErr
}

// EndDocument closes the innermost document.
//
// Unread elements are discarded. The byte at the end of the frame must be the
// zero terminator.
//
// Returns:
//   - error: ErrNoOpenFrame, ErrFrameMismatch if the frame is an array, or
//     ErrInvalidTerminator
func (r *Reader) EndDocument() error {
	return r.endFrame(false)
}

// EndArray closes the innermost array.
func (r *Reader) EndArray() error {
	return r.endFrame(true)
}

// ReadInt32 reads a numeric element as int32. Int64 keeps its low 32 bits and
// Double truncates toward zero.
func (r *Reader) ReadInt32() (int32, error) {
	t, err := r.consume(numericTypes)
	if err != nil {
		return 0, err
	}

	switch t {
	case format.TypeInt32:
		return r.readInt32()
	case format.TypeInt64:
		v, err := r.readInt64()
		return format.Int64ToInt32(v), err
	default:
		v, err := r.readDouble()
		return format.DoubleToInt32(v), err
	}
}

// ReadInt64 reads a numeric element as int64. Double truncates toward zero.
func (r *Reader) ReadInt64() (int64, error) {
	t, err := r.consume(numericTypes)
	if err != nil {
		return 0, err
	}

	switch t {
	case format.TypeInt32:
		v, err := r.readInt32()
		return int64(v), err
	case format.TypeInt64:
		return r.readInt64()
	default:
		v, err := r.readDouble()
		return format.DoubleToInt64(v), err
	}
}

// ReadDouble reads a numeric element as float64.
func (r *Reader) ReadDouble() (float64, error) {
	t, err := r.consume(numericTypes)
	if err != nil {
		return 0, err
	}

	switch t {
	case format.TypeInt32:
		v, err := r.readInt32()
		return float64(v), err
	case format.TypeInt64:
		v, err := r.readInt64()
		return float64(v), err
	default:
		return r.readDouble()
	}
}

// ReadBoolean reads a Boolean element. Stored bytes other than 0 and 1 are
// malformed.
func (r *Reader) ReadBoolean() (bool, error) {
	if err := r.expect(format.TypeBoolean); err != nil {
		return false, err
	}

	b, err := r.payload(1)
	if err != nil {
		return false, err
	}

	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: boolean byte 0x%02x", errs.ErrMalformedData, b[0])
	}
}

// ReadString reads a String, JavaScript or Symbol element.
func (r *Reader) ReadString() (string, error) {
	if _, err := r.consume(stringTypes); err != nil {
		return "", err
	}

	return r.readString()
}

// ReadJavaScript reads a JavaScript code element.
func (r *Reader) ReadJavaScript() (string, error) {
	if err := r.expect(format.TypeJavaScript); err != nil {
		return "", err
	}

	return r.readString()
}

// ReadSymbol reads a Symbol element.
func (r *Reader) ReadSymbol() (string, error) {
	if err := r.expect(format.TypeSymbol); err != nil {
		return "", err
	}

	return r.readString()
}

// ReadDateTime reads a DateTime element as a UTC time.
func (r *Reader) ReadDateTime() (time.Time, error) {
	ms, err := r.ReadDateTimeMillis()
	if err != nil {
		return time.Time{}, err
	}

	return time.UnixMilli(ms).UTC(), nil
}

// ReadDateTimeMillis reads a DateTime element as milliseconds since the Unix
// epoch.
func (r *Reader) ReadDateTimeMillis() (int64, error) {
	if err := r.expect(format.TypeDateTime); err != nil {
		return 0, err
	}

	return r.readInt64()
}

// ReadObjectID reads an ObjectID element.
func (r *Reader) ReadObjectID() (ObjectID, error) {
	var id ObjectID
	err := r.ReadObjectIDInto(id[:])

	return id, err
}

// ReadObjectIDInto reads an ObjectID element into the first 12 bytes of dst.
//
// Returns:
//   - error: ErrBufferTooSmall if dst is shorter than 12 bytes; the element
//     stays current then
func (r *Reader) ReadObjectIDInto(dst []byte) error {
	if len(dst) < ObjectIDSize {
		return fmt.Errorf("%w: need %d bytes, got %d", errs.ErrBufferTooSmall, ObjectIDSize, len(dst))
	}

	if err := r.expect(format.TypeObjectID); err != nil {
		return err
	}

	b, err := r.payload(ObjectIDSize)
	if err != nil {
		return err
	}
	copy(dst, b)

	return nil
}

// ReadBinary reads a Binary element and returns a copy of its data.
//
// For subtype BinaryOld the data is sized by the inner length, which must be
// the outer length minus four.
func (r *Reader) ReadBinary() ([]byte, format.BinarySubtype, error) {
	if err := r.expect(format.TypeBinary); err != nil {
		return nil, 0, err
	}

	return r.readBinary()
}

// ReadGUID reads a Binary element holding exactly 16 bytes as a UUID.
// The subtype is not checked.
//
// Returns:
//   - error: ErrInvalidGUIDLength if the payload is not 16 bytes
func (r *Reader) ReadGUID() (uuid.UUID, error) {
	if err := r.expect(format.TypeBinary); err != nil {
		return uuid.Nil, err
	}

	data, _, err := r.readBinary()
	if err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.FromBytes(data)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: got %d bytes", errs.ErrInvalidGUIDLength, len(data))
	}

	return id, nil
}

// ReadRegex reads a Regex element.
func (r *Reader) ReadRegex() (pattern, options string, err error) {
	if err = r.expect(format.TypeRegex); err != nil {
		return "", "", err
	}

	b, err := r.readCString()
	if err != nil {
		return "", "", err
	}
	pattern = string(b)

	if b, err = r.readCString(); err != nil {
		return "", "", err
	}

	return pattern, string(b), nil
}

// ReadTimestamp reads a Timestamp element.
func (r *Reader) ReadTimestamp() (increment, seconds uint32, err error) {
	if err = r.expect(format.TypeTimestamp); err != nil {
		return 0, 0, err
	}

	b, err := r.payload(8)
	if err != nil {
		return 0, 0, err
	}

	return r.engine.Uint32(b[:4]), r.engine.Uint32(b[4:]), nil
}

// ReadDecimal128 reads the raw 16 bytes of a Decimal128 element.
func (r *Reader) ReadDecimal128() (Decimal128, error) {
	var d Decimal128
	if err := r.expect(format.TypeDecimal128); err != nil {
		return d, err
	}

	b, err := r.payload(Decimal128Size)
	if err != nil {
		return d, err
	}
	copy(d[:], b)

	return d, nil
}

// ReadNull consumes a Null element.
func (r *Reader) ReadNull() error {
	err := r.expect(format.TypeNull)
	return err
}

// ReadUndefined consumes an Undefined element.
func (r *Reader) ReadUndefined() error {
	err := r.expect(format.TypeUndefined)
	return err
}

func (r *Reader) startNested(t format.ElementType) error {
	if err := r.expect(t); err != nil {
		return err
	}

	start := r.pos
	length, err := r.readInt32()
	if err != nil {
		return err
	}

	return r.openFrame(start, length, t == format.TypeArray)
}

// openFrame pushes the frame of a document whose length prefix starts at
// start.
func (r *Reader) openFrame(start int64, length int32, isArray bool) error {
	if r.frames.len() >= r.cfg.maxDepth {
		return r.fail(fmt.Errorf("%w: limit %d", errs.ErrMaxDepthExceeded, r.cfg.maxDepth))
	}

	if length < minDocumentSize {
		return r.fail(fmt.Errorf("%w: document length %d at offset %d", errs.ErrInvalidLength, length, start))
	}

	end := start + int64(length) - 1
	if parent := r.frames.top(); parent != nil && end >= parent.end {
		return r.fail(fmt.Errorf("%w: document at offset %d ends past its parent", errs.ErrInvalidLength, start))
	}

	r.frames.push(readerFrame{end: end, isArray: isArray})
	r.name, r.typ = "", format.TypeTerminator

	return nil
}

func (r *Reader) endFrame(isArray bool) error {
	if r.err != nil {
		return r.err
	}

	f := r.frames.top()
	if f == nil {
		return errs.ErrNoOpenFrame
	}

	if f.isArray != isArray {
		if isArray {
			return fmt.Errorf("%w: innermost frame is a document, use EndDocument", errs.ErrFrameMismatch)
		}

		return fmt.Errorf("%w: innermost frame is an array, use EndArray", errs.ErrFrameMismatch)
	}

	r.pending = false
	r.name, r.typ = "", format.TypeTerminator

	if r.pos > f.end {
		return r.fail(fmt.Errorf("%w: read past document end at offset %d", errs.ErrInvalidLength, f.end))
	}

	if err := r.discard(f.end - r.pos); err != nil {
		return err
	}

	c, err := r.src.ReadByte()
	if err != nil {
		return r.fail(r.ioError(err))
	}
	r.pos++

	if c != 0 {
		return r.fail(fmt.Errorf("%w: got 0x%02x at offset %d", errs.ErrInvalidTerminator, c, f.end))
	}

	r.frames.pop()

	return nil
}

// consume marks the current element's value as being read. It fails without
// changing state if there is no current element or its type is not accepted.
func (r *Reader) consume(accepted []format.ElementType) (format.ElementType, error) {
	if r.err != nil {
		return 0, r.err
	}

	if !r.pending {
		return 0, errs.ErrNoCurrentElement
	}

	if !slices.Contains(accepted, r.typ) {
		return 0, fmt.Errorf("%w: element %q is %s, want %v", errs.ErrTypeMismatch, r.name, r.typ, accepted)
	}
	r.pending = false

	return r.typ, nil
}

// expect is consume for a single accepted type.
func (r *Reader) expect(t format.ElementType) error {
	if r.err != nil {
		return r.err
	}

	if !r.pending {
		return errs.ErrNoCurrentElement
	}

	if r.typ != t {
		return fmt.Errorf("%w: element %q is %s, want %s", errs.ErrTypeMismatch, r.name, r.typ, t)
	}
	r.pending = false

	return nil
}

// fail records err as the sticky error.
func (r *Reader) fail(err error) error {
	if err != nil && r.err == nil {
		r.err = err
	}

	return err
}

func (r *Reader) ioError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: at offset %d", errs.ErrUnexpectedEOF, r.pos)
	}

	return fmt.Errorf("read at offset %d: %w", r.pos, err)
}

// within checks that n more value bytes end before the innermost terminator
// and, for an in-memory source, before the end of the input.
func (r *Reader) within(n int64) error {
	f := r.frames.top()
	if f == nil || n < 0 || r.pos+n > f.end {
		return r.fail(fmt.Errorf("%w: %d bytes at offset %d overrun the document", errs.ErrInvalidLength, n, r.pos))
	}

	if r.limit >= 0 && r.pos+n > r.limit {
		return r.fail(fmt.Errorf("%w: %d bytes at offset %d overrun the %d byte input", errs.ErrUnexpectedEOF, n, r.pos, r.limit))
	}

	return nil
}

// payload reads the next n value bytes. Up to maxScratchSize the result
// aliases the scratch buffer and is valid until the next read.
func (r *Reader) payload(n int) ([]byte, error) {
	if err := r.within(int64(n)); err != nil {
		return nil, err
	}

	if n > maxScratchSize {
		return r.readLarge(n)
	}

	if cap(r.scratch) < n {
		r.scratch = make([]byte, n)
	}
	buf := r.scratch[:n]

	if err := r.readFull(buf); err != nil {
		return nil, err
	}

	return buf, nil
}

// owned reads the next n value bytes into a slice the caller keeps.
func (r *Reader) owned(n int) ([]byte, error) {
	if err := r.within(int64(n)); err != nil {
		return nil, err
	}

	if n > maxScratchSize {
		return r.readLarge(n)
	}

	data := make([]byte, n)
	if err := r.readFull(data); err != nil {
		return nil, err
	}

	return data, nil
}

// readLarge reads n bytes into a buffer that grows as they arrive, so a
// length prefix larger than the source never sizes an allocation.
func (r *Reader) readLarge(n int) ([]byte, error) {
	var buf bytes.Buffer
	c, err := io.CopyN(&buf, r.src, int64(n))
	r.pos += c
	if err != nil {
		return nil, r.fail(r.ioError(err))
	}

	return buf.Bytes(), nil
}

func (r *Reader) readFull(dst []byte) error {
	n, err := io.ReadFull(r.src, dst)
	r.pos += int64(n)
	if err != nil {
		return r.fail(r.ioError(err))
	}

	return nil
}

func (r *Reader) discard(n int64) error {
	for n > 0 {
		step := int(min(n, math.MaxInt32))
		d, err := r.src.Discard(step)
		r.pos += int64(d)
		if err != nil {
			return r.fail(r.ioError(err))
		}
		n -= int64(d)
	}

	return nil
}

func (r *Reader) readInt32() (int32, error) {
	b, err := r.payload(4)
	if err != nil {
		return 0, err
	}

	return endian.Int32(r.engine, b), nil
}

func (r *Reader) readInt64() (int64, error) {
	b, err := r.payload(8)
	if err != nil {
		return 0, err
	}

	return endian.Int64(r.engine, b), nil
}

func (r *Reader) readDouble() (float64, error) {
	b, err := r.payload(8)
	if err != nil {
		return 0, err
	}

	return endian.Float64(r.engine, b), nil
}

// readLength reads a length prefix that must lie in [lo, remaining frame].
func (r *Reader) readLength(lo int32) (int32, error) {
	n, err := r.readInt32()
	if err != nil {
		return 0, err
	}

	if n < lo {
		return 0, r.fail(fmt.Errorf("%w: length %d at offset %d", errs.ErrInvalidLength, n, r.pos-4))
	}

	return n, nil
}

func (r *Reader) readString() (string, error) {
	n, err := r.readLength(1)
	if err != nil {
		return "", err
	}

	b, err := r.payload(int(n))
	if err != nil {
		return "", err
	}

	if b[n-1] != 0 {
		return "", r.fail(fmt.Errorf("%w: string at offset %d is not zero terminated", errs.ErrMalformedData, r.pos-int64(n)))
	}

	return string(b[:n-1]), nil
}

func (r *Reader) readBinary() ([]byte, format.BinarySubtype, error) {
	n, err := r.readLength(0)
	if err != nil {
		return nil, 0, err
	}

	st, err := r.payload(1)
	if err != nil {
		return nil, 0, err
	}
	subtype := format.BinarySubtype(st[0])

	if subtype == format.SubtypeBinaryOld {
		if n < 4 {
			return nil, 0, r.fail(fmt.Errorf("%w: old binary length %d", errs.ErrInvalidLength, n))
		}

		inner, err := r.readInt32()
		if err != nil {
			return nil, 0, err
		}

		if inner != n-4 {
			return nil, 0, r.fail(fmt.Errorf("%w: old binary inner length %d, outer %d", errs.ErrInvalidLength, inner, n))
		}
		n = inner
	}

	data, err := r.owned(int(n))
	if err != nil {
		return nil, 0, err
	}

	return data, subtype, nil
}

// readCString reads up to and including the next zero byte and returns the
// bytes before it. The result aliases internal buffers and is valid until
// the next read.
func (r *Reader) readCString() ([]byte, error) {
	f := r.frames.top()
	r.scratch = r.scratch[:0]

	for {
		chunk, err := r.src.ReadSlice(0)
		r.pos += int64(len(chunk))

		if f != nil && r.pos > f.end {
			return nil, r.fail(fmt.Errorf("%w: C string runs past document end at offset %d", errs.ErrInvalidLength, f.end))
		}

		switch {
		case err == nil:
			if len(r.scratch) == 0 {
				return chunk[:len(chunk)-1], nil
			}
			r.scratch = append(r.scratch, chunk[:len(chunk)-1]...)

			return r.scratch, nil
		case errors.Is(err, bufio.ErrBufferFull):
			r.scratch = append(r.scratch, chunk...)
		default:
			return nil, r.fail(r.ioError(err))
		}
	}
}
