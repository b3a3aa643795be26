package bson

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/arloliu/bsonstream/endian"
	"github.com/arloliu/bsonstream/errs"
	"github.com/arloliu/bsonstream/format"
)

// ObjectIDSize is the encoded size of an ObjectID.
const ObjectIDSize = 12

// ObjectID is the 12-byte identifier of the ObjectID element type.
type ObjectID [ObjectIDSize]byte

// ObjectIDFromBytes copies b into an ObjectID. b must be exactly 12 bytes.
func ObjectIDFromBytes(b []byte) (ObjectID, error) {
	var id ObjectID
	if len(b) != ObjectIDSize {
		return id, fmt.Errorf("%w: got %d bytes", errs.ErrInvalidObjectIDLength, len(b))
	}
	copy(id[:], b)

	return id, nil
}

// ObjectIDFromHex parses the 24-character hex form of an ObjectID.
func ObjectIDFromHex(s string) (ObjectID, error) {
	var id ObjectID
	if len(s) != 2*ObjectIDSize {
		return id, fmt.Errorf("%w: hex object id %q must be 24 characters", errs.ErrInvalidArgument, s)
	}

	if _, err := hex.Decode(id[:], []byte(s)); err != nil {
		return id, fmt.Errorf("%w: hex object id %q: %w", errs.ErrInvalidArgument, s, err)
	}

	return id, nil
}

// Hex returns the 24-character lowercase hex form.
func (id ObjectID) Hex() string {
	return hex.EncodeToString(id[:])
}

func (id ObjectID) String() string {
	return "ObjectID(" + id.Hex() + ")"
}

// Timestamp returns the creation time held in the first four bytes, which
// are big-endian seconds since the Unix epoch.
func (id ObjectID) Timestamp() time.Time {
	secs := endian.GetBigEndianEngine().Uint32(id[:4])

	return time.Unix(int64(secs), 0).UTC()
}

// IsZero reports whether every byte of id is zero.
func (id ObjectID) IsZero() bool {
	return id == ObjectID{}
}

// Type implements Value.
func (ObjectID) Type() format.ElementType { return format.TypeObjectID }

func (ObjectID) value() {}

// Decimal128Size is the encoded size of a Decimal128.
const Decimal128Size = 16

// Decimal128 holds the raw little-endian bytes of an IEEE 754-2008 decimal.
// The codec transports it unchanged and does no decimal arithmetic.
type Decimal128 [Decimal128Size]byte
