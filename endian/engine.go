// Package endian provides the byte order engine used by the bsonstream codec.
//
// Every fixed-width integer and float in the document layout is little-endian,
// regardless of the host. This package pairs encoding/binary's ByteOrder and
// AppendByteOrder into one EndianEngine and adds the signed and float helpers
// the codec needs, so encoder and decoder share a single conversion path:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = endian.AppendInt32(engine, buf, 30)
//	v := endian.Int32(engine, buf[len(buf)-4:])
//
// # Thread Safety
//
// All functions are safe for concurrent use. Engines are immutable.
package endian

import (
	"encoding/binary"
	"math"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine. It is the only
// byte order of the wire format.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
//
// Document framing never uses it. ObjectID stores its leading timestamp
// big-endian.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// AppendInt32 appends v as four bytes.
func AppendInt32(engine EndianEngine, dst []byte, v int32) []byte {
	return engine.AppendUint32(dst, uint32(v)) //nolint:gosec
}

// AppendInt64 appends v as eight bytes.
func AppendInt64(engine EndianEngine, dst []byte, v int64) []byte {
	return engine.AppendUint64(dst, uint64(v)) //nolint:gosec
}

// AppendFloat64 appends the IEEE 754 bits of f as eight bytes.
func AppendFloat64(engine EndianEngine, dst []byte, f float64) []byte {
	return engine.AppendUint64(dst, math.Float64bits(f))
}

// PutInt32 writes v into the first four bytes of b.
func PutInt32(engine EndianEngine, b []byte, v int32) {
	engine.PutUint32(b, uint32(v)) //nolint:gosec
}

// Int32 decodes the first four bytes of b.
func Int32(engine EndianEngine, b []byte) int32 {
	return int32(engine.Uint32(b)) //nolint:gosec
}

// Int64 decodes the first eight bytes of b.
func Int64(engine EndianEngine, b []byte) int64 {
	return int64(engine.Uint64(b)) //nolint:gosec
}

// Float64 decodes the first eight bytes of b as IEEE 754 bits.
func Float64(engine EndianEngine, b []byte) float64 {
	return math.Float64frombits(engine.Uint64(b))
}
