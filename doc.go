// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonwrite implements a one-directional JSON encoder
// in which values write themselves directly to an [io.Writer].
//
// Every encodable value implements [Value].
// There is no reflection and no intermediate document tree:
// the shape of a value is described by Go types,
// and encoding it is a sequence of writes of the final JSON text.
// The output never contains insignificant whitespace.
//
// # Scalars and strings
//
// [Null], [Bool], [Int], [Uint], [Float] and [Float32] encode the
// JSON literals and numbers. Floating-point values use the shortest
// representation that parses back to the same value and
// non-finite values encode as null.
// [String], [Bytes] and [Rune] encode JSON strings, writing runs of
// characters that need no escaping in a single call.
//
// # Arrays and objects
//
// Arrays and objects whose shape is known in advance are built as chains
// of [ListEntry] terminated by [ListEnd], or of [ObjectEntry] and
// [ObjectField] terminated by [ObjectEnd]. The chain is an ordinary
// Go value whose type records every element type, so it needs
// no allocation:
//
//	v := jsonwrite.Member(jsonwrite.String("list"),
//		jsonwrite.Cons(jsonwrite.Int(1), jsonwrite.Cons(jsonwrite.Int(2), jsonwrite.ListEnd{})),
//		jsonwrite.ObjectEnd{})
//	fmt.Println(jsonwrite.MarshalString(v)) // {"list":[1,2]}
//
// Arrays and objects only known at runtime use [Slice], [Seq], [Map],
// [SortedMap], [Members] and [Seq2], or are written incrementally with
// [RecordWriter] and [TupleWriter]. A sequence that can be consumed only
// once is encoded with [Stream] or [MemberStream].
//
// # Errors
//
// Encoding only fails if the underlying writer fails,
// in which case its error is returned unchanged and the output
// written so far is incomplete. Errors produced by this package
// itself match [Error] according to [errors.Is].
package jsonwrite
