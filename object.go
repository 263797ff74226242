// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwrite

import (
	"io"

	"github.com/go-json-experiment/jsonwrite/internal/jsonwire"
)

// ObjectTail is the remainder of a fixed-shape JSON object:
// either an ObjectEntry, an ObjectField, or the terminating ObjectEnd.
type ObjectTail interface {
	Value

	// writeTail writes the remaining members, each preceded by a comma,
	// followed by the closing brace.
	writeTail(w io.Writer) error
}

// ObjectEnd terminates a fixed-shape JSON object.
// On its own it is the empty object.
type ObjectEnd struct{}

func (ObjectEnd) WriteJSON(w io.Writer) error { return jsonwire.WriteString(w, "{}") }
func (ObjectEnd) writeTail(w io.Writer) error { return jsonwire.WriteString(w, "}") }

// ObjectEntry is a fixed-shape JSON object whose first member
// has the name Key and the value Value.
// Like ListEntry, the shape of the object is part of its type.
type ObjectEntry[K Key, V Value, N ObjectTail] struct {
	Key   K
	Value V
	Next  N
}

// Member returns the object whose first member is k:v,
// followed by the members of next.
func Member[K Key, V Value, N ObjectTail](k K, v V, next N) ObjectEntry[K, V, N] {
	return ObjectEntry[K, V, N]{Key: k, Value: v, Next: next}
}

func (e ObjectEntry[K, V, N]) WriteJSON(w io.Writer) error {
	return e.write(w, "{")
}

func (e ObjectEntry[K, V, N]) writeTail(w io.Writer) error {
	return e.write(w, ",")
}

func (e ObjectEntry[K, V, N]) write(w io.Writer, delim string) error {
	if err := jsonwire.WriteString(w, delim); err != nil {
		return err
	}
	if err := writePair(w, e.Key, e.Value); err != nil {
		return err
	}
	return e.Next.writeTail(w)
}

// ObjectField is like ObjectEntry, but its member name is a Name
// that was quoted ahead of time.
// It is what generated WriteJSON methods for record types build upon.
type ObjectField[V Value, N ObjectTail] struct {
	Name  Name
	Value V
	Next  N
}

// Field returns the object whose first member is name:v,
// followed by the members of next.
func Field[V Value, N ObjectTail](name Name, v V, next N) ObjectField[V, N] {
	return ObjectField[V, N]{Name: name, Value: v, Next: next}
}

func (f ObjectField[V, N]) WriteJSON(w io.Writer) error {
	return f.write(w, "{")
}

func (f ObjectField[V, N]) writeTail(w io.Writer) error {
	return f.write(w, ",")
}

func (f ObjectField[V, N]) write(w io.Writer, delim string) error {
	if err := jsonwire.WriteString(w, delim); err != nil {
		return err
	}
	if err := f.Name.writeMember(w); err != nil {
		return err
	}
	if err := f.Value.WriteJSON(w); err != nil {
		return err
	}
	return f.Next.writeTail(w)
}

// writePair writes a single object member without any delimiter.
func writePair[K Key, V Value](w io.Writer, k K, v V) error {
	if n, ok := any(k).(Name); ok {
		if err := n.writeMember(w); err != nil {
			return err
		}
		return v.WriteJSON(w)
	}
	if err := k.WriteJSON(w); err != nil {
		return err
	}
	if err := jsonwire.WriteString(w, ":"); err != nil {
		return err
	}
	return v.WriteJSON(w)
}
