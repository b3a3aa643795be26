package bson

import (
	"fmt"

	"github.com/arloliu/bsonstream/errs"
)

// WriteValue writes v as an element named name. Document and Array values are
// written recursively.
func (w *Writer) WriteValue(name string, v Value) error {
	switch v := v.(type) {
	case Double:
		return w.WriteDouble(name, float64(v))
	case String:
		return w.WriteString(name, string(v))
	case Symbol:
		return w.WriteSymbol(name, string(v))
	case JavaScript:
		return w.WriteJavaScript(name, string(v))
	case Int32:
		return w.WriteInt32(name, int32(v))
	case Int64:
		return w.WriteInt64(name, int64(v))
	case Boolean:
		return w.WriteBoolean(name, bool(v))
	case DateTime:
		return w.WriteDateTimeMillis(name, int64(v))
	case Null:
		return w.WriteNull(name)
	case Undefined:
		return w.WriteUndefined(name)
	case ObjectID:
		return w.WriteObjectID(name, v[:])
	case Binary:
		return w.WriteBinary(name, v.Subtype, v.Data)
	case Regex:
		return w.WriteRegex(name, v.Pattern, v.Options)
	case Timestamp:
		return w.WriteTimestamp(name, v.Increment, v.Seconds)
	case Document:
		if err := w.StartEmbeddedDocument(name); err != nil {
			return err
		}

		if err := w.writeElements(v); err != nil {
			return err
		}

		return w.EndDocument()
	case Array:
		if err := w.StartArray(name); err != nil {
			return err
		}

		for _, item := range v {
			if err := w.AppendValue(item); err != nil {
				return err
			}
		}

		return w.EndArray()
	case nil:
		return fmt.Errorf("%w: nil value for element %q", errs.ErrInvalidArgument, name)
	default:
		return fmt.Errorf("%w: %T", errs.ErrUnsupportedType, v)
	}
}

// AppendValue writes v as an element named after the array index cursor.
func (w *Writer) AppendValue(v Value) error {
	if v == nil {
		return fmt.Errorf("%w: nil array item", errs.ErrInvalidArgument)
	}

	return w.WriteValue(w.nextIndexName(), v)
}

// WriteDocument writes doc as a complete top-level document.
func (w *Writer) WriteDocument(doc Document) error {
	if err := w.StartDocument(); err != nil {
		return err
	}

	if err := w.writeElements(doc); err != nil {
		return err
	}

	return w.EndDocument()
}

func (w *Writer) writeElements(doc Document) error {
	for _, e := range doc {
		if err := w.WriteValue(e.Name, e.Value); err != nil {
			return err
		}
	}

	return nil
}
