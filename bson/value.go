package bson

import (
	"iter"
	"time"

	"github.com/google/uuid"

	"github.com/arloliu/bsonstream/format"
)

// Value is a materialized element value produced by Reader.ReadValue.
//
// The set of implementations is closed: Double, String, Symbol, JavaScript,
// Int32, Int64, Boolean, DateTime, Null, Undefined, ObjectID, Binary, Regex,
// Timestamp, Document and Array. DBPointer, JavaScriptWithScope, Decimal128,
// MinKey and MaxKey have no Value form.
type Value interface {
	Type() format.ElementType
	value() // seal
}

//go-sumtype:decl Value

type (
	// Double is a 64-bit IEEE 754 float.
	Double float64
	// String is a UTF-8 string.
	String string
	// Symbol is a deprecated string variant.
	Symbol string
	// JavaScript is JavaScript source code.
	JavaScript string
	// Int32 is a 32-bit signed integer.
	Int32 int32
	// Int64 is a 64-bit signed integer.
	Int64 int64
	// Boolean is a boolean.
	Boolean bool
	// DateTime is milliseconds since the Unix epoch.
	DateTime int64
	// Null is the null value.
	Null struct{}
	// Undefined is the deprecated undefined value.
	Undefined struct{}
)

// Binary is a Binary element value.
type Binary struct {
	Subtype format.BinarySubtype
	Data    []byte
}

// Regex is a regular expression and its option flags.
type Regex struct {
	Pattern string
	Options string
}

// Timestamp is an internal replication timestamp.
type Timestamp struct {
	Increment uint32
	Seconds   uint32
}

// Element is one named value of a Document.
type Element struct {
	Name  string
	Value Value
}

// Document is an ordered list of elements. Names are kept in wire order and
// are not required to be unique.
type Document []Element

// Array is an ordered list of values.
type Array []Value

// NewDateTime converts t to a DateTime, dropping sub-millisecond precision.
func NewDateTime(t time.Time) DateTime {
	return DateTime(t.UnixMilli())
}

// Time returns d as a UTC time.
func (d DateTime) Time() time.Time {
	return time.UnixMilli(int64(d)).UTC()
}

// NewGUID wraps id in a Binary of subtype UUID.
func NewGUID(id uuid.UUID) Binary {
	return Binary{Subtype: format.SubtypeUUID, Data: id[:]}
}

// GUID interprets the data as a UUID. It fails unless the data is 16 bytes.
func (b Binary) GUID() (uuid.UUID, error) {
	return uuid.FromBytes(b.Data)
}

// Lookup returns the value of the first element named name.
func (d Document) Lookup(name string) (Value, bool) {
	for _, e := range d {
		if e.Name == name {
			return e.Value, true
		}
	}

	return nil, false
}

// Len returns the number of elements.
func (d Document) Len() int {
	return len(d)
}

// All iterates over the elements in wire order.
func (d Document) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, e := range d {
			if !yield(e.Name, e.Value) {
				return
			}
		}
	}
}

func (Double) Type() format.ElementType     { return format.TypeDouble }
func (String) Type() format.ElementType     { return format.TypeString }
func (Symbol) Type() format.ElementType     { return format.TypeSymbol }
func (JavaScript) Type() format.ElementType { return format.TypeJavaScript }
func (Int32) Type() format.ElementType      { return format.TypeInt32 }
func (Int64) Type() format.ElementType      { return format.TypeInt64 }
func (Boolean) Type() format.ElementType    { return format.TypeBoolean }
func (DateTime) Type() format.ElementType   { return format.TypeDateTime }
func (Null) Type() format.ElementType       { return format.TypeNull }
func (Undefined) Type() format.ElementType  { return format.TypeUndefined }
func (Binary) Type() format.ElementType     { return format.TypeBinary }
func (Regex) Type() format.ElementType      { return format.TypeRegex }
func (Timestamp) Type() format.ElementType  { return format.TypeTimestamp }
func (Document) Type() format.ElementType   { return format.TypeDocument }
func (Array) Type() format.ElementType      { return format.TypeArray }

func (Double) value()     {}
func (String) value()     {}
func (Symbol) value()     {}
func (JavaScript) value() {}
func (Int32) value()      {}
func (Int64) value()      {}
func (Boolean) value()    {}
func (DateTime) value()   {}
func (Null) value()       {}
func (Undefined) value()  {}
func (Binary) value()     {}
func (Regex) value()      {}
func (Timestamp) value()  {}
func (Document) value()   {}
func (Array) value()      {}

// check interfaces
var (
	_ Value = Double(0)
	_ Value = String("")
	_ Value = Symbol("")
	_ Value = JavaScript("")
	_ Value = Int32(0)
	_ Value = Int64(0)
	_ Value = Boolean(false)
	_ Value = DateTime(0)
	_ Value = Null{}
	_ Value = Undefined{}
	_ Value = ObjectID{}
	_ Value = Binary{}
	_ Value = Regex{}
	_ Value = Timestamp{}
	_ Value = Document(nil)
	_ Value = Array(nil)
)
