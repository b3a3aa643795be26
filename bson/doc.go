// Package bson provides forward-only streaming encoding and decoding of
// length-prefixed binary documents.
//
// A document is a length-prefixed, zero-terminated sequence of named, typed
// elements. Arrays are documents whose element names are the decimal indices
// "0", "1", ... Every integer is little-endian.
//
// # Core Types
//
// **Writer**: Encodes elements one call at a time
//   - NewBufferWriter: Encodes into an in-memory buffer
//   - NewWriter: Encodes into an io.Writer, patching length prefixes in the
//     pending buffer or, for seekable destinations, by seeking back
//
// **Reader**: Decodes elements under caller control
//   - NewReader: Decodes from any io.Reader through a bufio.Reader
//   - NewBytesReader: Decodes an in-memory encoding
//
// **Value**: Closed union of materialized values
//   - Document, Array: Containers in wire order
//   - Double, String, Int32, Int64, Boolean, DateTime, ObjectID, Binary, ...
//
// # Encoding Workflow
//
//	w, err := bson.NewBufferWriter()
//
//	w.StartDocument()
//	w.WriteString("name", "John Doe")
//	w.WriteInt32("age", 30)
//	w.StartArray("tags")
//	w.AppendString("developer") // named "0"
//	w.AppendString("gamer")     // named "1"
//	w.EndArray()
//	w.EndDocument()
//
//	data := w.Bytes()
//
// # Decoding Workflow
//
//	r, err := bson.NewBytesReader(data)
//
//	r.StartDocument()
//	for name, typ := range r.Elements() {
//	    switch name {
//	    case "age":
//	        age, err := r.ReadInt64() // Int32, Int64 and Double are interchangeable
//	    case "tags":
//	        r.StartArray()
//	        ...
//	        r.EndArray()
//	    }
//	    // anything not read is skipped by the next step
//	}
//	if err := r.Err(); err != nil { ... }
//	r.EndDocument()
//
// When the shape of a document is not known ahead of time, ReadDocument and
// ReadValue materialize it as a Document tree, and WriteDocument writes one
// back out.
//
// # Errors
//
// All errors wrap the sentinels of package errs. Misuse of the call sequence
// is errs.ErrInvalidOperation, corrupt input is errs.ErrMalformedData.
//
// # Thread Safety
//
// Writer and Reader are NOT thread-safe. Independent instances share no state
// and may be used from different goroutines.
package bson
