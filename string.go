// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwrite

import (
	"io"

	"github.com/go-json-experiment/jsonwrite/internal/jsonwire"
)

// String is a JSON string.
//
// Characters that JSON requires to be escaped are escaped,
// as is DEL (U+007F), while all other characters are written verbatim.
// Invalid UTF-8 is replaced with the Unicode replacement character.
type String string

func (s String) WriteJSON(w io.Writer) error { return jsonwire.WriteQuote(w, string(s)) }
func (String) JSONKey()                      {}

// Bytes is a JSON string holding UTF-8 text stored in a byte slice.
// It is not base64 encoded.
type Bytes []byte

func (b Bytes) WriteJSON(w io.Writer) error { return jsonwire.WriteQuote(w, []byte(b)) }
func (Bytes) JSONKey()                      {}

// Rune is a JSON string holding a single character.
type Rune rune

func (r Rune) WriteJSON(w io.Writer) error {
	var arr [16]byte
	_, err := w.Write(jsonwire.AppendRune(arr[:0], rune(r)))
	return err
}
func (Rune) JSONKey() {}

// Name is an object member name that is quoted once, when it is created,
// so that writing it costs a single call to the sink.
// The zero value is the empty name.
type Name struct {
	quoted string // quoted name followed by a colon
}

// NewName returns s as a pre-quoted member name.
// It is intended to be called once per name, for instance
// when initializing package-level variables.
func NewName(s string) Name {
	b := jsonwire.AppendQuote(make([]byte, 0, len(s)+3), s)
	return Name{quoted: string(append(b, ':'))}
}

// String returns the quoted form of the name, without the colon.
func (n Name) String() string {
	if n.quoted == "" {
		return `""`
	}
	return n.quoted[:len(n.quoted)-1]
}

func (n Name) WriteJSON(w io.Writer) error { return jsonwire.WriteString(w, n.String()) }
func (Name) JSONKey()                      {}

// writeMember writes the name and the following colon.
func (n Name) writeMember(w io.Writer) error {
	if n.quoted == "" {
		return jsonwire.WriteString(w, `"":`)
	}
	return jsonwire.WriteString(w, n.quoted)
}
