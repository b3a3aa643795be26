package bson

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/arloliu/bsonstream/endian"
	"github.com/arloliu/bsonstream/errs"
	"github.com/arloliu/bsonstream/format"
	"github.com/arloliu/bsonstream/internal/options"
)

// Writer encodes documents element by element.
//
// Documents and arrays are bracketed with Start*/End* calls that must
// balance exactly. StartDocument reserves a four-byte length placeholder and
// EndDocument writes the terminator and patches the placeholder with the
// final length; every other operation only appends.
//
// Named writers (WriteString, WriteInt32, ...) emit an element under the
// given name. Append* writers emit an element named after the array index
// cursor ("0", "1", ...) and advance it; they are meant for use directly
// inside an array.
//
// A failed write leaves the Writer unusable: the error is sticky and is
// returned by every later call. Bytes already written are not rolled back.
//
// Note: The Writer is NOT thread-safe.
type Writer struct {
	sink

	cfg     *WriterConfig
	frames  stack[writerFrame]
	indexes stack[int]
	index   int
	err     error
	closed  bool
}

// NewBufferWriter creates a Writer that encodes into an in-memory buffer.
//
// The encoded bytes are available through Bytes, also after Close.
//
// Returns:
//   - *Writer: New writer with no open document
//   - error: Configuration error if an option is invalid
func NewBufferWriter(opts ...WriterOption) (*Writer, error) {
	cfg, err := options.Build(newWriterConfig, opts...)
	if err != nil {
		return nil, err
	}

	return &Writer{
		sink: newBufferSink(cfg.initialBufferSize),
		cfg:  cfg,
	}, nil
}

// NewWriter creates a Writer that encodes into w.
//
// Pending bytes are staged in a pooled buffer and flushed once they exceed
// the flush threshold. When w is an io.Seeker that reports its position
// (a file), flushes may happen inside an open document and length prefixes
// are patched by seeking back. Otherwise pending bytes are only flushed
// between top-level documents.
//
// Unless WithLeaveOpen is given, Close also closes w if it is an io.Closer.
//
// Parameters:
//   - w: Destination of the encoded bytes
//   - opts: Optional configuration (WithLeaveOpen, WithFlushThreshold)
//
// Returns:
//   - *Writer: New writer with no open document
//   - error: Configuration error if an option is invalid
func NewWriter(w io.Writer, opts ...WriterOption) (*Writer, error) {
	if w == nil {
		return nil, fmt.Errorf("%w: nil destination", errs.ErrInvalidArgument)
	}

	cfg, err := options.Build(newWriterConfig, opts...)
	if err != nil {
		return nil, err
	}

	return &Writer{
		sink: newStreamSink(w, cfg.flushThreshold),
		cfg:  cfg,
	}, nil
}

// Depth returns the number of open documents and arrays.
func (w *Writer) Depth() int {
	return w.frames.len()
}

// Position returns the absolute offset of the next byte to be written.
func (w *Writer) Position() int64 {
	return w.position()
}

// Bytes returns the bytes that have not been flushed yet. For a Writer
// created with NewBufferWriter that is the complete output.
//
// The returned slice aliases the internal buffer and is only valid until the
// next write.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Reset discards the output of an in-memory Writer so it can encode again.
// It fails while a document is open or on a stream Writer.
func (w *Writer) Reset() error {
	if w.out != nil || w.pooled {
		return fmt.Errorf("%w: reset is only supported on buffer writers", errs.ErrInvalidOperation)
	}

	if w.frames.len() != 0 {
		return fmt.Errorf("%w: reset with %d open documents", errs.ErrInvalidOperation, w.frames.len())
	}

	w.buf.Reset()
	w.base = 0
	w.index = 0
	w.indexes.reset()
	w.err = nil
	w.closed = false

	return nil
}

// Flush writes pending bytes to the destination of a stream Writer.
//
// Without a seekable destination bytes of an open document cannot be
// flushed; Flush then does nothing until the top-level document is closed.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}

	if !w.canFlush(w.frames.len()) {
		return nil
	}

	return w.fail(w.flush())
}

// Close flushes pending bytes and releases the Writer's buffers. It closes
// the destination unless the Writer was created WithLeaveOpen.
//
// Closing with open documents is allowed; the output is then incomplete.
// Close is idempotent.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	err := w.release(!w.cfg.leaveOpen)
	if w.err == nil {
		w.err = errs.ErrWriterClosed
	}

	return err
}

// StartDocument opens a top-level document.
//
// It reserves four placeholder bytes for the length prefix at the current
// position. Nested documents are opened with StartEmbeddedDocument or
// StartDocumentItem instead.
//
// Returns:
//   - error: ErrFrameAlreadyOpen if a document is already open, or a sticky write error
func (w *Writer) StartDocument() error {
	if w.err != nil {
		return w.err
	}

	if w.frames.len() != 0 {
		return fmt.Errorf("%w: use StartEmbeddedDocument for nested documents", errs.ErrFrameAlreadyOpen)
	}

	w.openFrame(false)

	return nil
}

// StartEmbeddedDocument writes a Document element header under name and
// opens the embedded document.
func (w *Writer) StartEmbeddedDocument(name string) error {
	if err := w.header(format.TypeDocument, name); err != nil {
		return err
	}
	w.openFrame(false)

	return nil
}

// StartDocumentItem opens an embedded document named after the array index
// cursor.
func (w *Writer) StartDocumentItem() error {
	if err := w.header(format.TypeDocument, w.nextIndexName()); err != nil {
		return err
	}
	w.openFrame(false)

	return nil
}

// StartArray writes an Array element header under name and opens the array.
// The array index cursor is saved and restarts at 0.
func (w *Writer) StartArray(name string) error {
	if err := w.header(format.TypeArray, name); err != nil {
		return err
	}
	w.openArray()

	return nil
}

// StartArrayItem opens an array nested in the current array, named after the
// array index cursor.
func (w *Writer) StartArrayItem() error {
	if err := w.header(format.TypeArray, w.nextIndexName()); err != nil {
		return err
	}
	w.openArray()

	return nil
}

// EndDocument closes the innermost document.
//
// It writes the terminator byte, computes the length from the placeholder to
// the byte after the terminator and patches the placeholder with it.
//
// Returns:
//   - error: ErrNoOpenFrame without an open document, ErrFrameMismatch if the
//     innermost frame is an array, or a sink error
func (w *Writer) EndDocument() error {
	if w.err != nil {
		return w.err
	}

	f := w.frames.top()
	if f == nil {
		return errs.ErrNoOpenFrame
	}

	if f.isArray {
		return fmt.Errorf("%w: innermost frame is an array, use EndArray", errs.ErrFrameMismatch)
	}

	return w.closeFrame()
}

// EndArray closes the innermost array and restores the enclosing array index
// cursor.
func (w *Writer) EndArray() error {
	if w.err != nil {
		return w.err
	}

	f := w.frames.top()
	if f == nil {
		return errs.ErrNoOpenFrame
	}

	if !f.isArray {
		return fmt.Errorf("%w: innermost frame is a document, use EndDocument", errs.ErrFrameMismatch)
	}

	if err := w.closeFrame(); err != nil {
		return err
	}

	w.index, _ = w.indexes.pop()

	return nil
}

func (w *Writer) openFrame(isArray bool) {
	w.frames.push(writerFrame{start: w.position(), isArray: isArray})
	w.buf.MustWrite([]byte{0, 0, 0, 0})
}

func (w *Writer) openArray() {
	w.indexes.push(w.index)
	w.index = 0
	w.openFrame(true)
}

func (w *Writer) closeFrame() error {
	f, _ := w.frames.pop()
	_ = w.buf.WriteByte(0)

	length := w.position() - f.start
	if length > math.MaxInt32 {
		return w.fail(fmt.Errorf("%w: document length %d exceeds int32", errs.ErrInvalidArgument, length))
	}

	if err := w.patchInt32At(f.start, int32(length)); err != nil {
		return w.fail(err)
	}

	return w.fail(w.maybeFlush(w.frames.len()))
}

// fail records err as the sticky error.
func (w *Writer) fail(err error) error {
	if err != nil && w.err == nil {
		w.err = err
	}

	return err
}

// ready reports why an element cannot be written now, if it cannot.
func (w *Writer) ready() error {
	if w.err != nil {
		return w.err
	}

	if w.frames.len() == 0 {
		return errs.ErrNoOpenFrame
	}

	return nil
}

// header writes the type tag and the C-string name of an element.
func (w *Writer) header(t format.ElementType, name string) error {
	if err := w.ready(); err != nil {
		return err
	}

	w.buf.Grow(len(name) + 2)
	_ = w.buf.WriteByte(byte(t))
	_, _ = w.buf.WriteString(name)
	_ = w.buf.WriteByte(0)

	return nil
}

// nextIndexName returns the array index cursor as an element name. The
// cursor advances only when an element can be written, so a call rejected
// by header leaves it in place.
func (w *Writer) nextIndexName() string {
	name := strconv.Itoa(w.index)
	if w.ready() == nil {
		w.index++
	}

	return name
}

// done finishes a scalar element and gives the sink a chance to flush.
func (w *Writer) done() error {
	return w.fail(w.maybeFlush(w.frames.len()))
}

func (w *Writer) putInt32(v int32) {
	w.buf.B = endian.AppendInt32(w.engine, w.buf.B, v)
}

func (w *Writer) putInt64(v int64) {
	w.buf.B = endian.AppendInt64(w.engine, w.buf.B, v)
}

func (w *Writer) putString(s string) {
	w.buf.Grow(len(s) + 5)
	w.putInt32(int32(len(s) + 1)) //nolint:gosec
	_, _ = w.buf.WriteString(s)
	_ = w.buf.WriteByte(0)
}

func (w *Writer) putCString(s string) {
	_, _ = w.buf.WriteString(s)
	_ = w.buf.WriteByte(0)
}

func (w *Writer) putBinary(subtype format.BinarySubtype, data []byte) {
	w.buf.Grow(len(data) + 9)
	if subtype == format.SubtypeBinaryOld {
		w.putInt32(int32(len(data) + 4)) //nolint:gosec
		_ = w.buf.WriteByte(byte(subtype))
		w.putInt32(int32(len(data))) //nolint:gosec
	} else {
		w.putInt32(int32(len(data))) //nolint:gosec
		_ = w.buf.WriteByte(byte(subtype))
	}
	w.buf.MustWrite(data)
}

// WriteDouble writes a Double element.
func (w *Writer) WriteDouble(name string, v float64) error {
	if err := w.header(format.TypeDouble, name); err != nil {
		return err
	}
	w.buf.B = endian.AppendFloat64(w.engine, w.buf.B, v)

	return w.done()
}

// WriteString writes a String element.
func (w *Writer) WriteString(name string, v string) error {
	if err := w.header(format.TypeString, name); err != nil {
		return err
	}
	w.putString(v)

	return w.done()
}

// WriteSymbol writes a Symbol element. Symbols share the String layout.
func (w *Writer) WriteSymbol(name string, v string) error {
	if err := w.header(format.TypeSymbol, name); err != nil {
		return err
	}
	w.putString(v)

	return w.done()
}

// WriteJavaScript writes a JavaScript code element.
func (w *Writer) WriteJavaScript(name string, code string) error {
	if err := w.header(format.TypeJavaScript, name); err != nil {
		return err
	}
	w.putString(code)

	return w.done()
}

// WriteBinary writes a Binary element.
//
// Subtype BinaryOld is written with its redundant inner length, so the
// outer length is len(data)+4.
func (w *Writer) WriteBinary(name string, subtype format.BinarySubtype, data []byte) error {
	if err := w.header(format.TypeBinary, name); err != nil {
		return err
	}
	w.putBinary(subtype, data)

	return w.done()
}

// WriteGUID writes id as a Binary element of subtype UUID holding its 16
// bytes in RFC 4122 order.
func (w *Writer) WriteGUID(name string, id uuid.UUID) error {
	return w.WriteBinary(name, format.SubtypeUUID, id[:])
}

// WriteUndefined writes an Undefined element.
func (w *Writer) WriteUndefined(name string) error {
	if err := w.header(format.TypeUndefined, name); err != nil {
		return err
	}

	return w.done()
}

// WriteObjectID writes an ObjectID element.
//
// Returns:
//   - error: ErrInvalidObjectIDLength if id is not exactly 12 bytes; nothing is written then
func (w *Writer) WriteObjectID(name string, id []byte) error {
	if len(id) != ObjectIDSize {
		return fmt.Errorf("%w: got %d bytes", errs.ErrInvalidObjectIDLength, len(id))
	}

	if err := w.header(format.TypeObjectID, name); err != nil {
		return err
	}
	w.buf.MustWrite(id)

	return w.done()
}

// WriteBoolean writes a Boolean element.
func (w *Writer) WriteBoolean(name string, v bool) error {
	if err := w.header(format.TypeBoolean, name); err != nil {
		return err
	}

	b := byte(0)
	if v {
		b = 1
	}
	_ = w.buf.WriteByte(b)

	return w.done()
}

// WriteDateTime writes t as milliseconds since the Unix epoch in UTC.
// Sub-millisecond precision is dropped.
func (w *Writer) WriteDateTime(name string, t time.Time) error {
	return w.WriteDateTimeMillis(name, t.UTC().UnixMilli())
}

// WriteDateTimeMillis writes a DateTime element from raw milliseconds since
// the Unix epoch.
func (w *Writer) WriteDateTimeMillis(name string, ms int64) error {
	if err := w.header(format.TypeDateTime, name); err != nil {
		return err
	}
	w.putInt64(ms)

	return w.done()
}

// WriteNull writes a Null element.
func (w *Writer) WriteNull(name string) error {
	if err := w.header(format.TypeNull, name); err != nil {
		return err
	}

	return w.done()
}

// WriteRegex writes a Regex element as two C-strings.
func (w *Writer) WriteRegex(name string, pattern, options string) error {
	if err := w.header(format.TypeRegex, name); err != nil {
		return err
	}
	w.putCString(pattern)
	w.putCString(options)

	return w.done()
}

// WriteInt32 writes an Int32 element.
func (w *Writer) WriteInt32(name string, v int32) error {
	if err := w.header(format.TypeInt32, name); err != nil {
		return err
	}
	w.putInt32(v)

	return w.done()
}

// WriteTimestamp writes a Timestamp element: increment first, then seconds.
func (w *Writer) WriteTimestamp(name string, increment, seconds uint32) error {
	if err := w.header(format.TypeTimestamp, name); err != nil {
		return err
	}
	w.buf.B = w.engine.AppendUint32(w.buf.B, increment)
	w.buf.B = w.engine.AppendUint32(w.buf.B, seconds)

	return w.done()
}

// WriteInt64 writes an Int64 element.
func (w *Writer) WriteInt64(name string, v int64) error {
	if err := w.header(format.TypeInt64, name); err != nil {
		return err
	}
	w.putInt64(v)

	return w.done()
}

// WriteDecimal128 writes the 16 raw bytes of a Decimal128 element.
func (w *Writer) WriteDecimal128(name string, d Decimal128) error {
	if err := w.header(format.TypeDecimal128, name); err != nil {
		return err
	}
	w.buf.MustWrite(d[:])

	return w.done()
}

// WriteMinKey writes a MinKey element.
func (w *Writer) WriteMinKey(name string) error {
	if err := w.header(format.TypeMinKey, name); err != nil {
		return err
	}

	return w.done()
}

// WriteMaxKey writes a MaxKey element.
func (w *Writer) WriteMaxKey(name string) error {
	if err := w.header(format.TypeMaxKey, name); err != nil {
		return err
	}

	return w.done()
}
