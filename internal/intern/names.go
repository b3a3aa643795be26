// Package intern deduplicates element names read from a document stream.
//
// Documents in a stream usually repeat the same field names. The Table keys
// each name by the xxHash64 of its raw bytes so a repeated name is returned
// as the string allocated the first time it was seen.
package intern

import "github.com/cespare/xxhash/v2"

// DefaultMaxEntries bounds the number of distinct names a Table retains.
const DefaultMaxEntries = 4096

// Table is a bounded name table. It is not safe for concurrent use; each
// Reader owns its own Table.
type Table struct {
	names      map[uint64]string
	maxEntries int
	hits       int
	collisions int
}

// NewTable creates a Table that retains at most maxEntries names.
// A non-positive maxEntries selects DefaultMaxEntries.
func NewTable(maxEntries int) *Table {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	return &Table{
		names:      make(map[uint64]string),
		maxEntries: maxEntries,
	}
}

// Intern returns a string equal to name, reusing a stored copy when one exists.
//
// A hash hit is verified byte for byte. On a collision the stored name is
// kept and a fresh string is returned.
func (t *Table) Intern(name []byte) string {
	h := xxhash.Sum64(name)

	if s, ok := t.names[h]; ok {
		if s == string(name) {
			t.hits++
			return s
		}
		t.collisions++

		return string(name)
	}

	s := string(name)
	if len(t.names) < t.maxEntries {
		t.names[h] = s
	}

	return s
}

// Len returns the number of retained names.
func (t *Table) Len() int {
	return len(t.names)
}

// Hits returns how many lookups were served from the table.
func (t *Table) Hits() int {
	return t.hits
}

// Collisions returns how many lookups hit a different name with the same hash.
func (t *Table) Collisions() int {
	return t.collisions
}

// Reset drops every retained name.
func (t *Table) Reset() {
	clear(t.names)
	t.hits = 0
	t.collisions = 0
}
