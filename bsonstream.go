// Package bsonstream provides forward-only streaming encoding and decoding of
// BSON-style binary documents.
//
// Documents are written and read one element at a time, so arbitrarily large
// or unbounded streams of documents can be processed without building a
// tree in memory. Length prefixes are patched after the fact, which keeps the
// Writer append-only apart from a single patch per closed document.
//
// # Core Features
//
//   - Byte-exact little-endian layout with length-prefixed, zero-terminated documents
//   - Pull-model Reader with skip, auto-skip and early EndDocument
//   - Interchangeable numeric reads across Int32, Int64 and Double
//   - In-memory and io.Writer destinations, seekable or not
//   - Closed Value union for documents of unknown shape
//
// # Basic Usage
//
// Encoding a document element by element:
//
//	w, _ := bsonstream.NewBufferWriter()
//	w.StartDocument()
//	w.WriteString("name", "John Doe")
//	w.WriteInt32("age", 30)
//	w.EndDocument()
//	data := w.Bytes()
//
// Decoding it again:
//
//	r, _ := bsonstream.NewBytesReader(data)
//	r.StartDocument()
//	for name := range r.Elements() {
//	    if name == "age" {
//	        age, _ := r.ReadInt32()
//	    }
//	}
//	r.EndDocument()
//
// Materializing a whole document:
//
//	doc, err := bsonstream.Unmarshal(data)
//	age, ok := doc.Lookup("age")
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the bson
// package. For streaming and fine-grained control, use bson directly.
package bsonstream

import (
	"fmt"
	"io"

	"github.com/arloliu/bsonstream/bson"
	"github.com/arloliu/bsonstream/errs"
)

// NewWriter creates a Writer that encodes into w.
//
// See bson.NewWriter for the flushing and ownership rules.
func NewWriter(w io.Writer, opts ...bson.WriterOption) (*bson.Writer, error) {
	return bson.NewWriter(w, opts...)
}

// NewBufferWriter creates a Writer that encodes into memory.
func NewBufferWriter(opts ...bson.WriterOption) (*bson.Writer, error) {
	return bson.NewBufferWriter(opts...)
}

// NewReader creates a Reader that decodes from r.
func NewReader(r io.Reader, opts ...bson.ReaderOption) (*bson.Reader, error) {
	return bson.NewReader(r, opts...)
}

// NewBytesReader creates a Reader over an in-memory encoding.
func NewBytesReader(data []byte, opts ...bson.ReaderOption) (*bson.Reader, error) {
	return bson.NewBytesReader(data, opts...)
}

// Marshal encodes doc as a single top-level document.
//
// Parameters:
//   - doc: Elements to encode, in order
//
// Returns:
//   - []byte: The encoded document
//   - error: ErrInvalidArgument or ErrUnsupportedType for a value that cannot be encoded
func Marshal(doc bson.Document) ([]byte, error) {
	w, err := bson.NewBufferWriter()
	if err != nil {
		return nil, err
	}

	if err := w.WriteDocument(doc); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// Unmarshal decodes data, which must hold exactly one document.
//
// Returns:
//   - bson.Document: The decoded elements in wire order
//   - error: ErrMalformedData for corrupt input or trailing bytes, ErrUnsupportedType
//     for elements without a Value form
func Unmarshal(data []byte) (bson.Document, error) {
	r, err := bson.NewBytesReader(data)
	if err != nil {
		return nil, err
	}

	doc, err := r.ReadDocument()
	if err == io.EOF { //nolint:errorlint
		return nil, fmt.Errorf("%w: empty input", errs.ErrUnexpectedEOF)
	}

	if err != nil {
		return nil, err
	}

	if r.Position() != int64(len(data)) {
		return nil, fmt.Errorf("%w: %d trailing bytes after document", errs.ErrMalformedData, int64(len(data))-r.Position())
	}

	return doc, nil
}

// ObjectIDFromHex parses the 24-character hex form of an ObjectID.
func ObjectIDFromHex(s string) (bson.ObjectID, error) {
	return bson.ObjectIDFromHex(s)
}
