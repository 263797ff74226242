// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwrite

import (
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/go-json-experiment/jsonwrite/internal/bufpools"
)

// Value is implemented by types that can write themselves as JSON.
//
// WriteJSON writes exactly the JSON text for the value to w,
// without any leading or trailing whitespace.
// It only fails if w fails, in which case the error from w
// is returned unchanged and the output written so far is incomplete.
//
// A pointer to a Value and a Value held in an interface
// encode identically to the underlying value.
type Value interface {
	WriteJSON(w io.Writer) error
}

// Key is implemented by values that always encode as a JSON string
// and may therefore be used as the name of an object member.
//
// The JSONKey method is a marker and is never called.
type Key interface {
	Value
	JSONKey()
}

// Marshal returns the JSON encoding of v in a newly allocated buffer.
//
// It panics if v reports an error, which can only happen
// if v is a custom Value that fails on its own.
func Marshal(v Value) []byte {
	b := getBuffer()
	defer putBuffer(b)
	if err := v.WriteJSON(b); err != nil {
		panic(errors.Wrapf(err, "%sMarshal of %T", errorPrefix, v))
	}
	return append(make([]byte, 0, len(b.buf)), b.buf...)
}

// MarshalString returns the JSON encoding of v as a string.
//
// It panics if v reports an error or if the output is not valid UTF-8.
// Neither can happen for the values provided by this package.
func MarshalString(v Value) string {
	b := getBuffer()
	defer putBuffer(b)
	if err := v.WriteJSON(b); err != nil {
		panic(errors.Wrapf(err, "%sMarshalString of %T", errorPrefix, v))
	}
	if !utf8.Valid(b.buf) {
		panic(errors.Wrapf(ErrInvalidUTF8, "%sMarshalString of %T", errorPrefix, v))
	}
	return string(b.buf)
}

// AppendJSON appends the JSON encoding of v to dst
// and returns the extended buffer.
func AppendJSON(dst []byte, v Value) ([]byte, error) {
	b := &pooledBuffer{buf: dst}
	err := v.WriteJSON(b)
	return b.buf, err
}

// WriteTo encodes v in memory and then copies the result to w.
// Unlike v.WriteJSON(w), nothing reaches w if v itself fails,
// and w receives a few large writes instead of many small ones.
// Output of any size is held in pooled segments rather than
// one contiguous buffer.
func WriteTo(w io.Writer, v Value) (int64, error) {
	var b bufpools.Buffer
	defer b.Release()
	if err := v.WriteJSON(&b); err != nil {
		return 0, err
	}
	return b.WriteTo(w)
}
