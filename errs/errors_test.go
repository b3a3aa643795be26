package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorClasses(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		class error
	}{
		{"NoOpenFrame", ErrNoOpenFrame, ErrInvalidOperation},
		{"TypeMismatch", ErrTypeMismatch, ErrInvalidOperation},
		{"FrameMismatch", ErrFrameMismatch, ErrInvalidOperation},
		{"NoCurrentElement", ErrNoCurrentElement, ErrInvalidOperation},
		{"FrameAlreadyOpen", ErrFrameAlreadyOpen, ErrInvalidOperation},
		{"WriterClosed", ErrWriterClosed, ErrInvalidOperation},
		{"ReaderClosed", ErrReaderClosed, ErrInvalidOperation},
		{"InvalidTerminator", ErrInvalidTerminator, ErrMalformedData},
		{"InvalidLength", ErrInvalidLength, ErrMalformedData},
		{"InvalidGUIDLength", ErrInvalidGUIDLength, ErrMalformedData},
		{"MaxDepthExceeded", ErrMaxDepthExceeded, ErrMalformedData},
		{"UnexpectedEOF", ErrUnexpectedEOF, ErrMalformedData},
		{"InvalidObjectIDLength", ErrInvalidObjectIDLength, ErrInvalidArgument},
		{"BufferTooSmall", ErrBufferTooSmall, ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.err, tt.class)

			wrapped := fmt.Errorf("%w: at offset 42", tt.err)
			require.ErrorIs(t, wrapped, tt.err)
			require.ErrorIs(t, wrapped, tt.class)
		})
	}
}

func TestUnknownElementTypeMatchesBothClasses(t *testing.T) {
	err := fmt.Errorf("%w: 0x20", ErrUnknownElementType)

	require.True(t, errors.Is(err, ErrMalformedData))
	require.True(t, errors.Is(err, ErrUnsupportedType))
	require.False(t, errors.Is(err, ErrInvalidOperation))
}
