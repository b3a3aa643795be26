package bson

import (
	"fmt"

	"github.com/arloliu/bsonstream/errs"
	"github.com/arloliu/bsonstream/format"
)

// ReadValue materializes the current element's value.
//
// Embedded documents and arrays are read recursively into Document and
// Array. Types without a Value form fail with ErrUnsupportedType and stay
// current, so the caller can still Skip them.
func (r *Reader) ReadValue() (Value, error) {
	if r.err != nil {
		return nil, r.err
	}

	if !r.pending {
		return nil, errs.ErrNoCurrentElement
	}

	switch r.typ {
	case format.TypeDouble:
		v, err := r.ReadDouble()
		return valueOf(Double(v), err)
	case format.TypeString:
		v, err := r.ReadString()
		return valueOf(String(v), err)
	case format.TypeSymbol:
		v, err := r.ReadSymbol()
		return valueOf(Symbol(v), err)
	case format.TypeJavaScript:
		v, err := r.ReadJavaScript()
		return valueOf(JavaScript(v), err)
	case format.TypeInt32:
		v, err := r.ReadInt32()
		return valueOf(Int32(v), err)
	case format.TypeInt64:
		v, err := r.ReadInt64()
		return valueOf(Int64(v), err)
	case format.TypeBoolean:
		v, err := r.ReadBoolean()
		return valueOf(Boolean(v), err)
	case format.TypeDateTime:
		v, err := r.ReadDateTimeMillis()
		return valueOf(DateTime(v), err)
	case format.TypeNull:
		return valueOf(Null{}, r.ReadNull())
	case format.TypeUndefined:
		return valueOf(Undefined{}, r.ReadUndefined())
	case format.TypeObjectID:
		v, err := r.ReadObjectID()
		return valueOf(v, err)
	case format.TypeBinary:
		data, subtype, err := r.ReadBinary()
		return valueOf(Binary{Subtype: subtype, Data: data}, err)
	case format.TypeRegex:
		pattern, options, err := r.ReadRegex()
		return valueOf(Regex{Pattern: pattern, Options: options}, err)
	case format.TypeTimestamp:
		inc, sec, err := r.ReadTimestamp()
		return valueOf(Timestamp{Increment: inc, Seconds: sec}, err)
	case format.TypeDocument:
		return r.readEmbeddedDocument()
	case format.TypeArray:
		return r.readArray()
	default:
		return nil, fmt.Errorf("%w: %s element %q has no generic value", errs.ErrUnsupportedType, r.typ, r.name)
	}
}

// ReadDocument reads the next top-level document whole.
//
// Returns:
//   - Document: The elements in wire order
//   - error: io.EOF (unwrapped) at a clean end of input, or any Reader error
func (r *Reader) ReadDocument() (Document, error) {
	if err := r.StartDocument(); err != nil {
		return nil, err
	}

	doc, err := r.readElements()
	if err != nil {
		return nil, err
	}

	if err := r.EndDocument(); err != nil {
		return nil, err
	}

	return doc, nil
}

func (r *Reader) readEmbeddedDocument() (Value, error) {
	if err := r.StartNestedDocument(); err != nil {
		return nil, err
	}

	doc, err := r.readElements()
	if err != nil {
		return nil, err
	}

	if err := r.EndDocument(); err != nil {
		return nil, err
	}

	return doc, nil
}

func (r *Reader) readArray() (Value, error) {
	if err := r.StartArray(); err != nil {
		return nil, err
	}

	arr := Array{}
	for {
		ok, err := r.Read()
		if err != nil {
			return nil, err
		}

		if !ok {
			break
		}

		v, err := r.ReadValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}

	if err := r.EndArray(); err != nil {
		return nil, err
	}

	return arr, nil
}

// readElements reads the remaining elements of the innermost frame.
func (r *Reader) readElements() (Document, error) {
	doc := Document{}
	for {
		ok, err := r.Read()
		if err != nil {
			return nil, err
		}

		if !ok {
			return doc, nil
		}

		name := r.name
		v, err := r.ReadValue()
		if err != nil {
			return nil, err
		}
		doc = append(doc, Element{Name: name, Value: v})
	}
}

func valueOf[V Value](v V, err error) (Value, error) {
	if err != nil {
		return nil, err
	}

	return v, nil
}
