// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwrite

import (
	"io"

	"golang.org/x/exp/constraints"

	"github.com/go-json-experiment/jsonwrite/internal/jsonwire"
)

// Null is the JSON null literal.
type Null struct{}

func (Null) WriteJSON(w io.Writer) error { return jsonwire.WriteString(w, "null") }

// Bool is a JSON boolean.
type Bool bool

func (b Bool) WriteJSON(w io.Writer) error {
	if b {
		return jsonwire.WriteString(w, "true")
	}
	return jsonwire.WriteString(w, "false")
}

// Int is a JSON number holding a signed integer.
type Int int64

func (n Int) WriteJSON(w io.Writer) error { return jsonwire.WriteInt(w, int64(n)) }

// Uint is a JSON number holding an unsigned integer.
type Uint uint64

func (n Uint) WriteJSON(w io.Writer) error { return jsonwire.WriteUint(w, uint64(n)) }

// Integer returns n as a Value, for integers of any width or signedness.
func Integer[T constraints.Integer](n T) Value {
	if ^T(0) < 0 {
		return Int(n)
	}
	return Uint(n)
}

// Float is a JSON number holding a 64-bit floating-point value.
// It is formatted using the shortest decimal representation
// that parses back to the same value.
// NaN and infinities have no JSON representation and are encoded as null.
type Float float64

func (f Float) WriteJSON(w io.Writer) error { return jsonwire.WriteFloat(w, float64(f), 64) }

// Float32 is like Float, but formats the shortest decimal representation
// that parses back to the same 32-bit value.
type Float32 float32

func (f Float32) WriteJSON(w io.Writer) error { return jsonwire.WriteFloat(w, float64(f), 32) }

// Number returns f as a Value, preserving its precision.
func Number[T constraints.Float](f T) Value {
	// 2²⁴+1 is the smallest integer a float32 cannot hold.
	if T(1<<24+1) == T(1<<24) {
		return Float32(f)
	}
	return Float(f)
}

// Optional is either a present value or absent.
// A present value encodes as the value itself and
// an absent value encodes as null.
// The zero value is absent.
type Optional[V Value] struct {
	v     V
	valid bool
}

// Some returns a present Optional holding v.
func Some[V Value](v V) Optional[V] { return Optional[V]{v: v, valid: true} }

// None returns an absent Optional.
func None[V Value]() Optional[V] { return Optional[V]{} }

// Get returns the held value and whether it is present.
func (o Optional[V]) Get() (V, bool) { return o.v, o.valid }

func (o Optional[V]) WriteJSON(w io.Writer) error {
	if !o.valid {
		return Null{}.WriteJSON(w)
	}
	return o.v.WriteJSON(w)
}

// Nullable returns an Optional that is absent if p is nil
// and otherwise holds *p.
func Nullable[V Value](p *V) Optional[V] {
	if p == nil {
		return None[V]()
	}
	return Some(*p)
}
