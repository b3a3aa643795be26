package bson

import (
	"fmt"

	"github.com/arloliu/bsonstream/errs"
	"github.com/arloliu/bsonstream/format"
)

// fixedValueSize maps each fixed-width element type to its payload size.
var fixedValueSize = map[format.ElementType]int64{
	format.TypeDouble:     8,
	format.TypeDateTime:   8,
	format.TypeTimestamp:  8,
	format.TypeInt64:      8,
	format.TypeInt32:      4,
	format.TypeObjectID:   ObjectIDSize,
	format.TypeBoolean:    1,
	format.TypeDecimal128: Decimal128Size,
	format.TypeNull:       0,
	format.TypeUndefined:  0,
	format.TypeMinKey:     0,
	format.TypeMaxKey:     0,
}

// Skip moves past the current element's value without decoding it.
//
// Embedded documents and arrays are skipped whole using their own length
// prefix. Every skip stays inside the innermost frame.
//
// Returns:
//   - error: ErrNoCurrentElement if there is no unread value,
//     ErrUnknownElementType for a type with no known layout
func (r *Reader) Skip() error {
	if r.err != nil {
		return r.err
	}

	if !r.pending {
		return errs.ErrNoCurrentElement
	}
	r.pending = false

	n, err := r.valueSize(r.typ)
	if err != nil {
		return err
	}

	if err := r.within(n); err != nil {
		return err
	}

	return r.discard(n)
}

// valueSize returns how many bytes of the current value remain after any
// length prefix it had to read.
func (r *Reader) valueSize(t format.ElementType) (int64, error) {
	if n, ok := fixedValueSize[t]; ok {
		return n, nil
	}

	switch t {
	case format.TypeString, format.TypeJavaScript, format.TypeSymbol:
		n, err := r.readLength(1)
		return int64(n), err

	case format.TypeDocument, format.TypeArray, format.TypeJavaScriptWithScope:
		n, err := r.readLength(minDocumentSize)
		return int64(n) - 4, err

	case format.TypeBinary:
		n, err := r.readLength(0)
		return 1 + int64(n), err

	case format.TypeDBPointer:
		n, err := r.readLength(1)
		return int64(n) + ObjectIDSize, err

	case format.TypeRegex:
		for range 2 {
			if _, err := r.readCString(); err != nil {
				return 0, err
			}
		}

		return 0, nil

	default:
		return 0, r.fail(fmt.Errorf("%w: cannot skip tag 0x%02x", errs.ErrUnknownElementType, byte(t)))
	}
}
