// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwrite

import (
	"io"

	"github.com/go-json-experiment/jsonwrite/internal/jsonwire"
)

// ListTail is the remainder of a fixed-shape JSON array:
// either a ListEntry or the terminating ListEnd.
type ListTail interface {
	Value

	// writeTail writes the remaining elements, each preceded by a comma,
	// followed by the closing bracket.
	writeTail(w io.Writer) error
}

// ListEnd terminates a fixed-shape JSON array.
// On its own it is the empty array.
type ListEnd struct{}

func (ListEnd) WriteJSON(w io.Writer) error { return jsonwire.WriteString(w, "[]") }
func (ListEnd) writeTail(w io.Writer) error { return jsonwire.WriteString(w, "]") }

// ListEntry is a fixed-shape JSON array whose first element is Elem.
// The length and element types of the array are part of its type,
// so that no slice or interface is needed to hold them.
//
// For example, the array [1,true,"hello"] has the type
//
//	ListEntry[Int, ListEntry[Bool, ListEntry[String, ListEnd]]]
//
// and is most easily constructed with Cons.
type ListEntry[V Value, N ListTail] struct {
	Elem V
	Next N
}

// Cons returns the array whose first element is v,
// followed by the elements of next.
func Cons[V Value, N ListTail](v V, next N) ListEntry[V, N] {
	return ListEntry[V, N]{Elem: v, Next: next}
}

func (e ListEntry[V, N]) WriteJSON(w io.Writer) error {
	if err := jsonwire.WriteString(w, "["); err != nil {
		return err
	}
	if err := e.Elem.WriteJSON(w); err != nil {
		return err
	}
	return e.Next.writeTail(w)
}

func (e ListEntry[V, N]) writeTail(w io.Writer) error {
	if err := jsonwire.WriteString(w, ","); err != nil {
		return err
	}
	if err := e.Elem.WriteJSON(w); err != nil {
		return err
	}
	return e.Next.writeTail(w)
}
