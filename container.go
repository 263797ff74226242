// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwrite

import (
	"io"
	"iter"
	"maps"
	"slices"

	"github.com/go-json-experiment/jsonwrite/internal/jsonwire"
)

// Slice is a JSON array whose length is only known at runtime.
// A nil or empty slice encodes as [].
type Slice[V Value] []V

func (s Slice[V]) WriteJSON(w io.Writer) error { return writeElems(w, slices.Values(s)) }

// Array returns a JSON array of values of any type.
// Each element is held in an interface,
// unlike a ListEntry chain which holds each element by its own type.
func Array(vals ...Value) Slice[Value] { return Slice[Value](vals) }

// Seq is a JSON array produced by ranging over a sequence.
// The sequence is ranged over once per encoding,
// so it must be able to produce its elements more than once
// if the value is encoded more than once. See Stream otherwise.
type Seq[V Value] iter.Seq[V]

func (s Seq[V]) WriteJSON(w io.Writer) error { return writeElems(w, iter.Seq[V](s)) }

// Map is a JSON object built from a Go map.
// Members are written in the map's iteration order,
// which is unspecified and may differ between encodings.
type Map[K interface {
	comparable
	Key
}, V Value] map[K]V

func (m Map[K, V]) WriteJSON(w io.Writer) error { return writeMembers(w, maps.All(m)) }

// SortedMap is a JSON object built from a Go map with string keys.
// Members are written in increasing order of their keys,
// so that the output is deterministic.
type SortedMap[K ~string, V Value] map[K]V

func (m SortedMap[K, V]) WriteJSON(w io.Writer) error {
	keys := slices.Sorted(maps.Keys(m))
	return writeMembers(w, func(yield func(String, V) bool) {
		for _, k := range keys {
			if !yield(String(k), m[k]) {
				return
			}
		}
	})
}

// Pair is a single object member whose name and value types
// are only known at runtime.
type Pair struct {
	Key   Key
	Value Value
}

// Members is a JSON object written in the order of its pairs.
// Duplicate names are written as given.
type Members []Pair

// Object returns a JSON object with the given members in order.
func Object(pairs ...Pair) Members { return Members(pairs) }

func (m Members) WriteJSON(w io.Writer) error {
	return writeMembers(w, func(yield func(Key, Value) bool) {
		for _, p := range m {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	})
}

// Seq2 is a JSON object produced by ranging over a sequence of pairs.
// As with Seq, the sequence is ranged over once per encoding.
type Seq2[K Key, V Value] iter.Seq2[K, V]

func (s Seq2[K, V]) WriteJSON(w io.Writer) error { return writeMembers(w, iter.Seq2[K, V](s)) }

// writeElems writes the elements of seq as a JSON array.
// Ranging stops at the first error.
func writeElems[V Value](w io.Writer, seq iter.Seq[V]) (err error) {
	if err := jsonwire.WriteString(w, "["); err != nil {
		return err
	}
	first := true
	for v := range seq {
		if !first {
			if err = jsonwire.WriteString(w, ","); err != nil {
				break
			}
		}
		first = false
		if err = v.WriteJSON(w); err != nil {
			break
		}
	}
	if err != nil {
		return err
	}
	return jsonwire.WriteString(w, "]")
}

// writeMembers writes the pairs of seq as a JSON object.
// Ranging stops at the first error.
func writeMembers[K Key, V Value](w io.Writer, seq iter.Seq2[K, V]) (err error) {
	if err := jsonwire.WriteString(w, "{"); err != nil {
		return err
	}
	first := true
	for k, v := range seq {
		if !first {
			if err = jsonwire.WriteString(w, ","); err != nil {
				break
			}
		}
		first = false
		if err = writePair(w, k, v); err != nil {
			break
		}
	}
	if err != nil {
		return err
	}
	return jsonwire.WriteString(w, "}")
}
