// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwrite

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// TextWriter adapts a destination that only accepts text,
// such as a strings.Builder, into the byte sink expected by WriteJSON.
//
// Each Write must hold complete UTF-8 text.
// Values provided by this package always write whole characters
// in a single call, so this holds for them.
type TextWriter struct {
	W io.StringWriter
}

// Write forwards p to the underlying destination.
// If p is not valid UTF-8, nothing is forwarded and
// an error matching ErrInvalidUTF8 is returned.
func (t TextWriter) Write(p []byte) (int, error) {
	if !utf8.Valid(p) {
		return 0, errors.WithStack(ErrInvalidUTF8)
	}
	return t.W.WriteString(string(p))
}

// WriteString forwards s to the underlying destination
// after checking that it is valid UTF-8.
func (t TextWriter) WriteString(s string) (int, error) {
	if !utf8.ValidString(s) {
		return 0, errors.WithStack(ErrInvalidUTF8)
	}
	return t.W.WriteString(s)
}

// Flush does nothing. Text destinations are not buffered by TextWriter.
func (TextWriter) Flush() error { return nil }

// Text returns a formatter that prints v as JSON text
// with any of the fmt verbs, so that
//
//	fmt.Sprint(jsonwrite.Text(v))
//
// returns the same text as MarshalString(v).
// Width, precision and flags are ignored.
func Text(v Value) fmt.Formatter {
	return textFormatter{v}
}

type textFormatter struct {
	v Value
}

func (t textFormatter) Format(f fmt.State, verb rune) {
	if err := t.v.WriteJSON(TextWriter{W: stateWriter{f}}); err != nil {
		fmt.Fprintf(f, "%%!%c(%v)", verb, err)
	}
}

// stateWriter adds the WriteString method that fmt.State does not declare.
type stateWriter struct {
	fmt.State
}

func (s stateWriter) WriteString(str string) (int, error) {
	return s.State.Write([]byte(str))
}
