// Package errs defines the sentinel errors returned by the bsonstream codec.
//
// Errors are grouped into four classes. Every refinement wraps its class, so
// callers can test either the precise condition or the class with errors.Is:
//
//	if errors.Is(err, errs.ErrMalformedData) {
//	    // any structural problem in the input bytes
//	}
package errs

import (
	"errors"
	"fmt"
)

// Error classes.
var (
	// ErrInvalidOperation reports a call made in a state that does not allow it.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrMalformedData reports input bytes that violate the document layout.
	ErrMalformedData = errors.New("malformed data")
	// ErrInvalidArgument reports a caller supplied value that cannot be encoded or filled.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupportedType reports an element type with no mapping for the requested operation.
	ErrUnsupportedType = errors.New("unsupported type")
)

// Invalid operation refinements.
var (
	ErrNoOpenFrame      = fmt.Errorf("%w: no open document", ErrInvalidOperation)
	ErrTypeMismatch     = fmt.Errorf("%w: element type mismatch", ErrInvalidOperation)
	ErrFrameMismatch    = fmt.Errorf("%w: end does not match the open container kind", ErrInvalidOperation)
	ErrNoCurrentElement = fmt.Errorf("%w: no unread element value", ErrInvalidOperation)
	ErrFrameAlreadyOpen = fmt.Errorf("%w: a document is already open", ErrInvalidOperation)
	ErrWriterClosed     = fmt.Errorf("%w: writer is closed", ErrInvalidOperation)
	ErrReaderClosed     = fmt.Errorf("%w: reader is closed", ErrInvalidOperation)
)

// Malformed data refinements.
var (
	ErrInvalidTerminator = fmt.Errorf("%w: document terminator is not zero", ErrMalformedData)
	ErrInvalidLength     = fmt.Errorf("%w: invalid length prefix", ErrMalformedData)
	ErrInvalidGUIDLength = fmt.Errorf("%w: guid payload is not 16 bytes", ErrMalformedData)
	ErrMaxDepthExceeded  = fmt.Errorf("%w: maximum nesting depth exceeded", ErrMalformedData)
	ErrUnexpectedEOF     = fmt.Errorf("%w: unexpected end of input", ErrMalformedData)
)

// Invalid argument refinements.
var (
	ErrInvalidObjectIDLength = fmt.Errorf("%w: object id must be 12 bytes", ErrInvalidArgument)
	ErrBufferTooSmall        = fmt.Errorf("%w: destination buffer too small", ErrInvalidArgument)
)

// ErrUnknownElementType is returned when a type tag outside the known set is
// met. It matches both ErrMalformedData and ErrUnsupportedType.
var ErrUnknownElementType = fmt.Errorf("%w: %w: unknown element type", ErrMalformedData, ErrUnsupportedType)
