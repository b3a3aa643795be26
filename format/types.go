package format

type (
	// ElementType is the one-byte tag that precedes every element in a document.
	ElementType uint8
	// BinarySubtype is the byte that follows the length of a Binary payload.
	BinarySubtype uint8
)

const (
	TypeDouble              ElementType = 0x01 // TypeDouble is an IEEE 754 binary64 value.
	TypeString              ElementType = 0x02 // TypeString is a length-prefixed UTF-8 string.
	TypeDocument            ElementType = 0x03 // TypeDocument is an embedded document.
	TypeArray               ElementType = 0x04 // TypeArray is a document keyed "0", "1", "2", ...
	TypeBinary              ElementType = 0x05 // TypeBinary is a length-prefixed byte payload with a subtype.
	TypeUndefined           ElementType = 0x06 // TypeUndefined is deprecated and carries no payload.
	TypeObjectID            ElementType = 0x07 // TypeObjectID is a 12-byte identifier.
	TypeBoolean             ElementType = 0x08 // TypeBoolean is a single 0x00/0x01 byte.
	TypeDateTime            ElementType = 0x09 // TypeDateTime is int64 milliseconds since the Unix epoch (UTC).
	TypeNull                ElementType = 0x0A // TypeNull carries no payload.
	TypeRegex               ElementType = 0x0B // TypeRegex is two C-strings: pattern and options.
	TypeDBPointer           ElementType = 0x0C // TypeDBPointer is deprecated: string + 12-byte id.
	TypeJavaScript          ElementType = 0x0D // TypeJavaScript is code in the String layout.
	TypeSymbol              ElementType = 0x0E // TypeSymbol is deprecated, String layout.
	TypeJavaScriptWithScope ElementType = 0x0F // TypeJavaScriptWithScope is int32 total, string, document.
	TypeInt32               ElementType = 0x10 // TypeInt32 is a signed 32-bit integer.
	TypeTimestamp           ElementType = 0x11 // TypeTimestamp is uint32 increment then uint32 seconds.
	TypeInt64               ElementType = 0x12 // TypeInt64 is a signed 64-bit integer.
	TypeDecimal128          ElementType = 0x13 // TypeDecimal128 is a 16-byte IEEE 754-2008 decimal.
	TypeMaxKey              ElementType = 0x7F // TypeMaxKey compares above every other value.
	TypeMinKey              ElementType = 0xFF // TypeMinKey compares below every other value.

	// TypeTerminator is not an element type; it is the zero byte that closes a document.
	TypeTerminator ElementType = 0x00
)

const (
	SubtypeGeneric              BinarySubtype = 0x00 // SubtypeGeneric is an opaque byte payload.
	SubtypeFunction             BinarySubtype = 0x01 // SubtypeFunction holds function bytes.
	SubtypeBinaryOld            BinarySubtype = 0x02 // SubtypeBinaryOld carries a redundant inner int32 length.
	SubtypeUUIDOld              BinarySubtype = 0x03 // SubtypeUUIDOld is a legacy, driver-specific UUID layout.
	SubtypeUUID                 BinarySubtype = 0x04 // SubtypeUUID is an RFC 4122 UUID.
	SubtypeMD5                  BinarySubtype = 0x05 // SubtypeMD5 is an MD5 digest.
	SubtypeEncrypted            BinarySubtype = 0x06 // SubtypeEncrypted is an encrypted payload.
	SubtypeCompressedTimeSeries BinarySubtype = 0x07 // SubtypeCompressedTimeSeries is a compressed time-series column.
	SubtypeUserDefined          BinarySubtype = 0x80 // SubtypeUserDefined is the first user-defined subtype.
)

func (t ElementType) String() string {
	switch t {
	case TypeDouble:
		return "Double"
	case TypeString:
		return "String"
	case TypeDocument:
		return "Document"
	case TypeArray:
		return "Array"
	case TypeBinary:
		return "Binary"
	case TypeUndefined:
		return "Undefined"
	case TypeObjectID:
		return "ObjectID"
	case TypeBoolean:
		return "Boolean"
	case TypeDateTime:
		return "DateTime"
	case TypeNull:
		return "Null"
	case TypeRegex:
		return "Regex"
	case TypeDBPointer:
		return "DBPointer"
	case TypeJavaScript:
		return "JavaScript"
	case TypeSymbol:
		return "Symbol"
	case TypeJavaScriptWithScope:
		return "JavaScriptWithScope"
	case TypeInt32:
		return "Int32"
	case TypeTimestamp:
		return "Timestamp"
	case TypeInt64:
		return "Int64"
	case TypeDecimal128:
		return "Decimal128"
	case TypeMaxKey:
		return "MaxKey"
	case TypeMinKey:
		return "MinKey"
	case TypeTerminator:
		return "Terminator"
	default:
		return "Unknown"
	}
}

// IsKnown reports whether t is one of the element types of the wire format.
// The terminator byte is not an element type.
func (t ElementType) IsKnown() bool {
	switch {
	case t >= TypeDouble && t <= TypeDecimal128:
		return true
	case t == TypeMaxKey, t == TypeMinKey:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether t is one of the numeric tags that can be read
// interchangeably as Int32, Int64 or Double.
func (t ElementType) IsNumeric() bool {
	return t == TypeInt32 || t == TypeInt64 || t == TypeDouble
}

// IsStringLike reports whether t shares the String wire layout.
func (t ElementType) IsStringLike() bool {
	return t == TypeString || t == TypeJavaScript || t == TypeSymbol
}

// IsContainer reports whether t opens a nested document.
func (t ElementType) IsContainer() bool {
	return t == TypeDocument || t == TypeArray
}

func (s BinarySubtype) String() string {
	switch s {
	case SubtypeGeneric:
		return "Generic"
	case SubtypeFunction:
		return "Function"
	case SubtypeBinaryOld:
		return "BinaryOld"
	case SubtypeUUIDOld:
		return "UUIDOld"
	case SubtypeUUID:
		return "UUID"
	case SubtypeMD5:
		return "MD5"
	case SubtypeEncrypted:
		return "Encrypted"
	case SubtypeCompressedTimeSeries:
		return "CompressedTimeSeries"
	default:
		if s.IsUserDefined() {
			return "UserDefined"
		}

		return "Unknown"
	}
}

// IsUserDefined reports whether s lies in the user-defined range (>= 0x80).
func (s BinarySubtype) IsUserDefined() bool {
	return s >= SubtypeUserDefined
}
