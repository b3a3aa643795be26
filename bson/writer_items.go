package bson

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arloliu/bsonstream/errs"
	"github.com/arloliu/bsonstream/format"
)

// Unnamed writers. Each names its element after the array index cursor and
// advances the cursor. The Writer does not check that the innermost frame is
// an array: used inside a document they produce fields named "0", "1", ...

// AppendDouble appends a Double array element.
func (w *Writer) AppendDouble(v float64) error {
	return w.WriteDouble(w.nextIndexName(), v)
}

// AppendString appends a String array element.
func (w *Writer) AppendString(v string) error {
	return w.WriteString(w.nextIndexName(), v)
}

// AppendSymbol appends a Symbol array element.
func (w *Writer) AppendSymbol(v string) error {
	return w.WriteSymbol(w.nextIndexName(), v)
}

// AppendJavaScript appends a JavaScript array element.
func (w *Writer) AppendJavaScript(code string) error {
	return w.WriteJavaScript(w.nextIndexName(), code)
}

// AppendBinary appends a Binary array element.
func (w *Writer) AppendBinary(subtype format.BinarySubtype, data []byte) error {
	return w.WriteBinary(w.nextIndexName(), subtype, data)
}

// AppendGUID appends a UUID Binary array element.
func (w *Writer) AppendGUID(id uuid.UUID) error {
	return w.WriteGUID(w.nextIndexName(), id)
}

// AppendUndefined appends an Undefined array element.
func (w *Writer) AppendUndefined() error {
	return w.WriteUndefined(w.nextIndexName())
}

// AppendObjectID appends an ObjectID array element. The index cursor does not
// advance when id is rejected.
func (w *Writer) AppendObjectID(id []byte) error {
	if len(id) != ObjectIDSize {
		return fmt.Errorf("%w: got %d bytes", errs.ErrInvalidObjectIDLength, len(id))
	}

	return w.WriteObjectID(w.nextIndexName(), id)
}

// AppendBoolean appends a Boolean array element.
func (w *Writer) AppendBoolean(v bool) error {
	return w.WriteBoolean(w.nextIndexName(), v)
}

// AppendDateTime appends a DateTime array element.
func (w *Writer) AppendDateTime(t time.Time) error {
	return w.WriteDateTime(w.nextIndexName(), t)
}

// AppendDateTimeMillis appends a DateTime array element from raw milliseconds.
func (w *Writer) AppendDateTimeMillis(ms int64) error {
	return w.WriteDateTimeMillis(w.nextIndexName(), ms)
}

// AppendNull appends a Null array element.
func (w *Writer) AppendNull() error {
	return w.WriteNull(w.nextIndexName())
}

// AppendRegex appends a Regex array element.
func (w *Writer) AppendRegex(pattern, options string) error {
	return w.WriteRegex(w.nextIndexName(), pattern, options)
}

// AppendInt32 appends an Int32 array element.
func (w *Writer) AppendInt32(v int32) error {
	return w.WriteInt32(w.nextIndexName(), v)
}

// AppendTimestamp appends a Timestamp array element.
func (w *Writer) AppendTimestamp(increment, seconds uint32) error {
	return w.WriteTimestamp(w.nextIndexName(), increment, seconds)
}

// AppendInt64 appends an Int64 array element.
func (w *Writer) AppendInt64(v int64) error {
	return w.WriteInt64(w.nextIndexName(), v)
}

// AppendDecimal128 appends a Decimal128 array element.
func (w *Writer) AppendDecimal128(d Decimal128) error {
	return w.WriteDecimal128(w.nextIndexName(), d)
}

// AppendMinKey appends a MinKey array element.
func (w *Writer) AppendMinKey() error {
	return w.WriteMinKey(w.nextIndexName())
}

// AppendMaxKey appends a MaxKey array element.
func (w *Writer) AppendMaxKey() error {
	return w.WriteMaxKey(w.nextIndexName())
}
