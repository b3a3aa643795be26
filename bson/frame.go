package bson

// stack is an index-addressed LIFO used for the open-frame bookkeeping of
// both Writer and Reader. Frames are always popped in reverse push order.
type stack[T any] struct {
	items []T
}

func (s *stack[T]) push(v T) {
	s.items = append(s.items, v)
}

// pop removes and returns the top item. ok is false when the stack is empty.
func (s *stack[T]) pop() (v T, ok bool) {
	n := len(s.items)
	if n == 0 {
		return v, false
	}

	v = s.items[n-1]
	s.items = s.items[:n-1]

	return v, true
}

// top returns a pointer to the top item, or nil when the stack is empty.
// The pointer is invalidated by the next push.
func (s *stack[T]) top() *T {
	n := len(s.items)
	if n == 0 {
		return nil
	}

	return &s.items[n-1]
}

func (s *stack[T]) len() int {
	return len(s.items)
}

func (s *stack[T]) reset() {
	s.items = s.items[:0]
}

// writerFrame records where an open document's length placeholder starts.
type writerFrame struct {
	start   int64
	isArray bool
}

// readerFrame records the absolute offset of an open document's terminator.
type readerFrame struct {
	end     int64
	isArray bool
}

// minDocumentSize is the encoded size of an empty document: the length
// prefix plus the terminator.
const minDocumentSize = 5
