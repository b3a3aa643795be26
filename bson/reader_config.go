package bson

import (
	"fmt"

	"github.com/arloliu/bsonstream/errs"
	"github.com/arloliu/bsonstream/internal/options"
)

const (
	// DefaultMaxDepth is the deepest nesting a Reader accepts by default.
	DefaultMaxDepth = 100
	// DefaultReadBufferSize is the size of the Reader's bufio buffer.
	DefaultReadBufferSize = 32 * 1024
)

// ReaderConfig holds the Reader construction settings.
type ReaderConfig struct {
	leaveOpen   bool
	bufferSize  int
	maxDepth    int
	internNames bool
}

func newReaderConfig() *ReaderConfig {
	return &ReaderConfig{
		bufferSize:  DefaultReadBufferSize,
		maxDepth:    DefaultMaxDepth,
		internNames: true,
	}
}

// ReaderOption configures a Reader.
type ReaderOption = options.Option[*ReaderConfig]

// WithReaderLeaveOpen keeps the source open when the Reader is closed.
func WithReaderLeaveOpen() ReaderOption {
	return options.NoError(func(c *ReaderConfig) {
		c.leaveOpen = true
	})
}

// WithReadBufferSize sets the size of the buffer between the source and the
// Reader.
func WithReadBufferSize(n int) ReaderOption {
	return options.New(func(c *ReaderConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: read buffer size %d", errs.ErrInvalidArgument, n)
		}
		c.bufferSize = n

		return nil
	})
}

// WithMaxDepth limits how many documents and arrays may be open at once.
// Opening one more fails with ErrMaxDepthExceeded.
func WithMaxDepth(n int) ReaderOption {
	return options.New(func(c *ReaderConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: max depth %d", errs.ErrInvalidArgument, n)
		}
		c.maxDepth = n

		return nil
	})
}

// WithNameInterning toggles reuse of element name strings across elements.
// It is enabled by default.
func WithNameInterning(enabled bool) ReaderOption {
	return options.NoError(func(c *ReaderConfig) {
		c.internNames = enabled
	})
}
