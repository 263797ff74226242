// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwrite

import (
	"slices"
	"sync"
	"testing"

	"github.com/go-json-experiment/json"
)

func TestStreamSingleUse(t *testing.T) {
	s := NewStream(slices.Values([]Int{1, 2, 3}))
	defer s.Close()
	if s.Done() {
		t.Errorf("Done before encoding = true, want false")
	}
	if got, want := MarshalString(s), `[1,2,3]`; got != want {
		t.Errorf("first MarshalString = %s, want %s", got, want)
	}
	if !s.Done() {
		t.Errorf("Done after encoding = false, want true")
	}
	if got, want := MarshalString(s), `[]`; got != want {
		t.Errorf("second MarshalString = %s, want %s", got, want)
	}
}

func TestStreamFunc(t *testing.T) {
	var n int
	s := StreamFunc(func() (Int, bool) {
		n++
		return Int(n * n), n <= 4
	})
	if got, want := MarshalString(s), `[1,4,9,16]`; got != want {
		t.Errorf("MarshalString = %s, want %s", got, want)
	}
	if got, want := MarshalString(s), `[]`; got != want {
		t.Errorf("second MarshalString = %s, want %s", got, want)
	}
	if n != 5 {
		t.Errorf("next called %d times, want 5", n)
	}
}

// An element that could not be written is the first one written next time.
func TestStreamRetainsPending(t *testing.T) {
	tests := []struct {
		name     string
		failAt   int
		want1    string
		want2    string
		wantDone bool
	}{
		{"OpenBracket", 1, ``, `[1,2,3]`, true},
		{"FirstElement", 2, `[`, `[1,2,3]`, true},
		{"Comma", 3, `[1`, `[2,3]`, true},
		{"SecondElement", 4, `[1,`, `[2,3]`, true},
		{"CloseBracket", 7, `[1,2,3`, `[]`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStream(slices.Values([]Int{1, 2, 3}))
			defer s.Close()
			w := &callWriter{failAt: tt.failAt}
			if err := s.WriteJSON(w); err != errSink {
				t.Fatalf("WriteJSON error = %v, want %v", err, errSink)
			}
			if got := w.String(); got != tt.want1 {
				t.Errorf("first output = %s, want %s", got, tt.want1)
			}
			if got := MarshalString(s); got != tt.want2 {
				t.Errorf("second output = %s, want %s", got, tt.want2)
			}
			if s.Done() != tt.wantDone {
				t.Errorf("Done = %v, want %v", s.Done(), tt.wantDone)
			}
		})
	}
}

func TestStreamClose(t *testing.T) {
	var stopped bool
	s := NewStream(func(yield func(Int) bool) {
		defer func() { stopped = true }()
		for i := 0; ; i++ {
			if !yield(Int(i)) {
				return
			}
		}
	})
	w := &callWriter{failAt: 4} // "[", "0", ",", "1"
	if err := s.WriteJSON(w); err != errSink {
		t.Fatalf("WriteJSON error = %v, want %v", err, errSink)
	}
	s.Close()
	if !stopped {
		t.Errorf("Close did not stop the sequence")
	}
	if !s.Done() {
		t.Errorf("Done after Close = false, want true")
	}
	if got, want := MarshalString(s), `[]`; got != want {
		t.Errorf("MarshalString after Close = %s, want %s", got, want)
	}
	s.Close()
}

// Concurrent encodings never interleave draws,
// so every element appears in exactly one output.
func TestStreamConcurrent(t *testing.T) {
	const n = 1000
	var elems []Int
	for i := range n {
		elems = append(elems, Int(i))
	}
	s := NewStream(slices.Values(elems))
	defer s.Close()

	outs := make([][]byte, 8)
	var wg sync.WaitGroup
	for i := range outs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outs[i] = Marshal(s)
		}()
	}
	wg.Wait()

	seen := make([]bool, n)
	for _, out := range outs {
		var got []int
		if err := json.Unmarshal(out, &got); err != nil {
			t.Fatalf("json.Unmarshal(%s) error: %v", out, err)
		}
		if !slices.IsSorted(got) {
			t.Errorf("output is out of order: %s", out)
		}
		for _, v := range got {
			if seen[v] {
				t.Errorf("element %d written twice", v)
			}
			seen[v] = true
		}
	}
	for v, ok := range seen {
		if !ok {
			t.Errorf("element %d never written", v)
		}
	}
}

func TestMemberStream(t *testing.T) {
	s := NewMemberStream(func(yield func(String, Int) bool) {
		_ = yield("a", 1) && yield("b", 2)
	})
	defer s.Close()
	w := &callWriter{failAt: 9} // "{", `"`, "a", `"`, ":", "1", ",", `"`, "b"
	if err := s.WriteJSON(w); err != errSink {
		t.Fatalf("WriteJSON error = %v, want %v", err, errSink)
	}
	if got, want := w.String(), `{"a":1,"`; got != want {
		t.Errorf("first output = %s, want %s", got, want)
	}
	if s.Done() {
		t.Errorf("Done with pending member = true, want false")
	}
	if got, want := MarshalString(s), `{"b":2}`; got != want {
		t.Errorf("second output = %s, want %s", got, want)
	}
	if got, want := MarshalString(s), `{}`; got != want {
		t.Errorf("third output = %s, want %s", got, want)
	}
	if !s.Done() {
		t.Errorf("Done after draining = false, want true")
	}
}
