package bson

import (
	"fmt"

	"github.com/arloliu/bsonstream/errs"
	"github.com/arloliu/bsonstream/internal/options"
	"github.com/arloliu/bsonstream/internal/pool"
)

// DefaultFlushThreshold is the number of pending bytes after which a stream
// Writer hands data to its io.Writer.
const DefaultFlushThreshold = 32 * 1024

// WriterConfig holds the Writer construction settings.
type WriterConfig struct {
	leaveOpen         bool
	initialBufferSize int
	flushThreshold    int
}

func newWriterConfig() *WriterConfig {
	return &WriterConfig{
		initialBufferSize: pool.DocumentBufferDefaultSize,
		flushThreshold:    DefaultFlushThreshold,
	}
}

// WriterOption configures a Writer.
type WriterOption = options.Option[*WriterConfig]

// WithLeaveOpen keeps the destination open when the Writer is closed.
// Without it, Close also closes a destination that implements io.Closer.
func WithLeaveOpen() WriterOption {
	return options.NoError(func(c *WriterConfig) {
		c.leaveOpen = true
	})
}

// WithInitialBufferSize sets the starting capacity of an in-memory Writer.
func WithInitialBufferSize(n int) WriterOption {
	return options.New(func(c *WriterConfig) error {
		if n < 0 {
			return fmt.Errorf("%w: initial buffer size %d", errs.ErrInvalidArgument, n)
		}
		c.initialBufferSize = n

		return nil
	})
}

// WithFlushThreshold sets how many pending bytes a stream Writer accumulates
// before flushing. It has no effect on an in-memory Writer.
func WithFlushThreshold(n int) WriterOption {
	return options.New(func(c *WriterConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: flush threshold %d", errs.ErrInvalidArgument, n)
		}
		c.flushThreshold = n

		return nil
	})
}
