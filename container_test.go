// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwrite

import (
	"iter"
	"maps"
	"slices"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/kylelemons/godebug/pretty"
)

func TestContainers(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want string
	}{
		{"Slice/Nil", Slice[Int](nil), `[]`},
		{"Slice/Empty", Slice[Int]{}, `[]`},
		{"Slice/Ints", Slice[Int]{1, 2, 3}, `[1,2,3]`},
		{"Slice/Nested", Slice[Slice[Bool]]{{}, {true}, {false, true}}, `[[],[true],[false,true]]`},
		{"Array/Empty", Array(), `[]`},
		{"Array/Heterogeneous", Array(Int(1), Bool(true), String("hello")), `[1,true,"hello"]`},
		{"Seq/Empty", Seq[Int](slices.Values([]Int(nil))), `[]`},
		{"Seq/Ints", Seq[Int](slices.Values([]Int{4, 5})), `[4,5]`},
		{"Map/Empty", Map[String, Int]{}, `{}`},
		{"Map/One", Map[String, Null]{"k": {}}, `{"k":null}`},
		{"SortedMap/Nil", SortedMap[string, Int](nil), `{}`},
		{"SortedMap/Ordered", SortedMap[string, Int]{"b": 2, "c": 3, "a": 1}, `{"a":1,"b":2,"c":3}`},
		{"SortedMap/EscapedKeys", SortedMap[String, Bool]{"\n": true, "\"": false}, `{"\n":true,"\"":false}`},
		{"Object/Empty", Object(), `{}`},
		{"Object/Record", Object(
			Pair{String("void"), Null{}},
			Pair{String("list"), Slice[Int]{1, 2, 3}},
			Pair{NewName("hello"), String("world")},
		), `{"void":null,"list":[1,2,3],"hello":"world"}`},
		{"Object/Duplicate", Object(Pair{String("a"), Int(1)}, Pair{String("a"), Int(2)}), `{"a":1,"a":2}`},
		{"Seq2/Empty", Seq2[String, Int](maps.All(map[String]Int{})), `{}`},
		{"Seq2/One", Seq2[Rune, Bool](maps.All(map[Rune]Bool{'x': true})), `{"x":true}`},
	}
	for _, tt := range tests {
		if got := MarshalString(tt.in); got != tt.want {
			t.Errorf("%s: MarshalString = %s, want %s", tt.name, got, tt.want)
		}
	}
}

// Fixed-shape chains, dynamic containers and incremental writers
// holding the same elements produce identical bytes.
func TestContainersMatchChains(t *testing.T) {
	list := Cons(Int(1), Cons(Bool(true), Cons(String("hello"), ListEnd{})))
	tuple := func() string {
		var w callWriter
		tw := NewTuple(&w)
		tw.Elem(Int(1))
		tw.Elem(Bool(true))
		tw.Elem(String("hello"))
		if err := tw.Close(); err != nil {
			t.Fatalf("TupleWriter.Close error: %v", err)
		}
		return w.String()
	}
	for _, got := range []string{
		MarshalString(Array(Int(1), Bool(true), String("hello"))),
		MarshalString(Seq[Value](slices.Values([]Value{Int(1), Bool(true), String("hello")}))),
		MarshalString(NewStream(slices.Values([]Value{Int(1), Bool(true), String("hello")}))),
		tuple(),
	} {
		if want := MarshalString(list); got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	}

	rec := func() string {
		var w callWriter
		r := NewRecord(&w)
		r.Member(String("void"), Null{})
		r.Field(NewName("list"), Slice[Int]{1, 2, 3})
		r.Member(String("hello"), String("world"))
		if err := r.Close(); err != nil {
			t.Fatalf("RecordWriter.Close error: %v", err)
		}
		return w.String()
	}
	pairs := []Pair{
		{String("void"), Null{}},
		{String("list"), Cons(Int(1), Cons(Int(2), Cons(Int(3), ListEnd{})))},
		{String("hello"), String("world")},
	}
	seq2 := func(yield func(Key, Value) bool) {
		for _, p := range pairs {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
	for _, got := range []string{
		MarshalString(Object(pairs...)),
		MarshalString(Seq2[Key, Value](seq2)),
		MarshalString(NewMemberStream(iter.Seq2[Key, Value](seq2))),
		rec(),
	} {
		if want := MarshalString(record); got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	}
}

// Map iteration order is unspecified, so the output is checked
// by parsing it back.
func TestMapRoundTrip(t *testing.T) {
	in := Map[String, Slice[Int]]{
		"a":     {1},
		"b":     {},
		"\x00c": {2, 3},
		"日本":    {4},
	}
	b := Marshal(in)
	var got map[string][]int
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("json.Unmarshal(%s) error: %v", b, err)
	}
	want := map[string][]int{
		"a":     {1},
		"b":     {},
		"\x00c": {2, 3},
		"日本":    {4},
	}
	if diff := pretty.Compare(want, got); diff != "" {
		t.Errorf("Map round trip mismatch (-want +got):\n%s", diff)
	}
}

// A Seq is ranged over afresh for every encoding.
func TestSeqReusable(t *testing.T) {
	s := Seq[Int](func(yield func(Int) bool) {
		for i := range 3 {
			if !yield(Int(i)) {
				return
			}
		}
	})
	for range 2 {
		if got, want := MarshalString(s), `[0,1,2]`; got != want {
			t.Errorf("MarshalString = %s, want %s", got, want)
		}
	}
}

// Ranging stops at the first sink error.
func TestSeqStopsOnError(t *testing.T) {
	var yielded int
	s := Seq[Int](func(yield func(Int) bool) {
		for i := range 10 {
			yielded++
			if !yield(Int(i)) {
				return
			}
		}
	})
	w := &callWriter{failAt: 4} // "[", "0", ",", "1"
	if err := s.WriteJSON(w); err != errSink {
		t.Errorf("WriteJSON error = %v, want %v", err, errSink)
	}
	if yielded != 2 {
		t.Errorf("sequence yielded %d elements, want 2", yielded)
	}
}
