// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwrite

import (
	"io"

	"github.com/pkg/errors"

	"github.com/go-json-experiment/jsonwrite/internal/jsonwire"
)

// RecordWriter writes a JSON object one member at a time.
// It is intended for hand-written WriteJSON methods of record types:
//
//	var (
//		nameName = jsonwrite.NewName("name")
//		nameAge  = jsonwrite.NewName("age")
//	)
//
//	func (p Person) WriteJSON(w io.Writer) error {
//		r := jsonwrite.NewRecord(w)
//		r.Field(nameName, jsonwrite.String(p.Name))
//		r.Field(nameAge, jsonwrite.Int(p.Age))
//		return r.Close()
//	}
//
// The first error is sticky: once writing fails,
// later members are discarded and Close reports the error.
type RecordWriter struct {
	w      io.Writer
	n      int
	err    error
	closed bool
}

// NewRecord returns a RecordWriter that writes an object to w.
// Nothing is written until the first member or Close.
func NewRecord(w io.Writer) *RecordWriter {
	return &RecordWriter{w: w}
}

// Field writes a member whose name was quoted ahead of time.
func (r *RecordWriter) Field(name Name, v Value) {
	if !r.begin() {
		return
	}
	if r.err = name.writeMember(r.w); r.err != nil {
		return
	}
	r.err = v.WriteJSON(r.w)
}

// Member writes a member with a name of any key type.
func (r *RecordWriter) Member(k Key, v Value) {
	if !r.begin() {
		return
	}
	r.err = writePair(r.w, k, v)
}

// begin writes the delimiter preceding the next member
// and reports whether the member should be written.
func (r *RecordWriter) begin() bool {
	if r.closed && r.err == nil {
		r.err = errors.WithStack(ErrClosed)
	}
	if r.err != nil {
		return false
	}
	delim := ","
	if r.n == 0 {
		delim = "{"
	}
	r.n++
	r.err = jsonwire.WriteString(r.w, delim)
	return r.err == nil
}

// Close writes the closing brace, or {} if no member was written,
// and reports the first error encountered.
func (r *RecordWriter) Close() error {
	if r.closed || r.err != nil {
		r.closed = true
		return r.err
	}
	r.closed = true
	if r.n == 0 {
		r.err = jsonwire.WriteString(r.w, "{}")
	} else {
		r.err = jsonwire.WriteString(r.w, "}")
	}
	return r.err
}

// TupleWriter writes a JSON array one element at a time.
// Like RecordWriter, its first error is sticky.
type TupleWriter struct {
	w      io.Writer
	n      int
	err    error
	closed bool
}

// NewTuple returns a TupleWriter that writes an array to w.
func NewTuple(w io.Writer) *TupleWriter {
	return &TupleWriter{w: w}
}

// Elem writes the next element.
func (t *TupleWriter) Elem(v Value) {
	if t.closed && t.err == nil {
		t.err = errors.WithStack(ErrClosed)
	}
	if t.err != nil {
		return
	}
	delim := ","
	if t.n == 0 {
		delim = "["
	}
	t.n++
	if t.err = jsonwire.WriteString(t.w, delim); t.err != nil {
		return
	}
	t.err = v.WriteJSON(t.w)
}

// Close writes the closing bracket, or [] if no element was written,
// and reports the first error encountered.
func (t *TupleWriter) Close() error {
	if t.closed || t.err != nil {
		t.closed = true
		return t.err
	}
	t.closed = true
	if t.n == 0 {
		t.err = jsonwire.WriteString(t.w, "[]")
	} else {
		t.err = jsonwire.WriteString(t.w, "]")
	}
	return t.err
}

// Variant returns the encoding of an enumeration variant
// that carries no data, which is an object with a single member
// named after the variant whose value is true.
// For example, Variant("C") encodes as {"C":true}.
func Variant(name string) Value {
	return Field(NewName(name), Bool(true), ObjectEnd{})
}

// TaggedVariant returns the encoding of an enumeration variant
// that carries data, which is an object with a single member
// named after the variant whose value is the payload.
func TaggedVariant[V Value](name string, payload V) ObjectField[V, ObjectEnd] {
	return Field(NewName(name), payload, ObjectEnd{})
}
