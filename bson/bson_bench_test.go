package bson

import "testing"

func BenchmarkWriter_Document(b *testing.B) {
	doc := sampleDocument()
	w, err := NewBufferWriter()
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = w.Reset()
		if err := w.WriteDocument(doc); err != nil {
			b.Fatal(err)
		}
	}
	b.SetBytes(int64(len(w.Bytes())))
}

func BenchmarkReader_ReadDocument(b *testing.B) {
	w, err := NewBufferWriter()
	if err != nil {
		b.Fatal(err)
	}
	if err := w.WriteDocument(sampleDocument()); err != nil {
		b.Fatal(err)
	}
	data := w.Bytes()

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for b.Loop() {
		r, _ := NewBytesReader(data)
		if _, err := r.ReadDocument(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReader_SkipAll(b *testing.B) {
	w, err := NewBufferWriter()
	if err != nil {
		b.Fatal(err)
	}
	if err := w.WriteDocument(sampleDocument()); err != nil {
		b.Fatal(err)
	}
	data := w.Bytes()

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for b.Loop() {
		r, _ := NewBytesReader(data)
		_ = r.StartDocument()
		for range r.Elements() {
		}
		if err := r.EndDocument(); err != nil {
			b.Fatal(err)
		}
	}
}
