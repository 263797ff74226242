// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwrite

import (
	"io"
	"iter"
	"sync"

	"github.com/go-json-experiment/jsonwrite/internal/jsonwire"
)

// Stream is a JSON array whose elements are drawn from a sequence
// that can only be consumed once.
//
// The first encoding of a Stream drains the sequence.
// Every later encoding writes whatever remains, which is [] once
// the sequence is exhausted. If writing an element fails, that element
// is kept and is the first one written by the next encoding,
// so that no element is lost.
//
// Encodings of the same Stream are serialized with a mutex,
// so a Stream may be shared between goroutines.
// A Stream must not be encoded from within the WriteJSON
// of one of its own elements.
type Stream[V Value] struct {
	p puller[V]
}

// NewStream returns a Stream over the elements of seq.
// The sequence is started on first use and
// must be released with Close if it is not drained.
func NewStream[V Value](seq iter.Seq[V]) *Stream[V] {
	next, stop := iter.Pull(seq)
	return &Stream[V]{p: puller[V]{next: next, stop: stop}}
}

// StreamFunc returns a Stream whose elements are produced by calling next
// until it reports false.
func StreamFunc[V Value](next func() (V, bool)) *Stream[V] {
	return &Stream[V]{p: puller[V]{next: next}}
}

func (s *Stream[V]) WriteJSON(w io.Writer) error {
	s.p.mu.Lock()
	defer s.p.mu.Unlock()
	if err := jsonwire.WriteString(w, "["); err != nil {
		return err
	}
	for first := true; ; first = false {
		v, ok := s.p.draw()
		if !ok {
			break
		}
		if !first {
			if err := jsonwire.WriteString(w, ","); err != nil {
				s.p.keep(v)
				return err
			}
		}
		if err := v.WriteJSON(w); err != nil {
			s.p.keep(v)
			return err
		}
	}
	return jsonwire.WriteString(w, "]")
}

// Done reports whether every element of the stream has been written.
func (s *Stream[V]) Done() bool { return s.p.isDone() }

// Close releases the underlying sequence.
// Later encodings write [].
func (s *Stream[V]) Close() { s.p.close() }

// MemberStream is a JSON object whose members are drawn from a sequence
// that can only be consumed once.
// It behaves like Stream in every other respect.
type MemberStream[K Key, V Value] struct {
	p puller[member[K, V]]
}

type member[K Key, V Value] struct {
	k K
	v V
}

// NewMemberStream returns a MemberStream over the pairs of seq.
func NewMemberStream[K Key, V Value](seq iter.Seq2[K, V]) *MemberStream[K, V] {
	next2, stop := iter.Pull2(seq)
	next := func() (member[K, V], bool) {
		k, v, ok := next2()
		return member[K, V]{k, v}, ok
	}
	return &MemberStream[K, V]{p: puller[member[K, V]]{next: next, stop: stop}}
}

func (s *MemberStream[K, V]) WriteJSON(w io.Writer) error {
	s.p.mu.Lock()
	defer s.p.mu.Unlock()
	if err := jsonwire.WriteString(w, "{"); err != nil {
		return err
	}
	for first := true; ; first = false {
		m, ok := s.p.draw()
		if !ok {
			break
		}
		if !first {
			if err := jsonwire.WriteString(w, ","); err != nil {
				s.p.keep(m)
				return err
			}
		}
		if err := writePair(w, m.k, m.v); err != nil {
			s.p.keep(m)
			return err
		}
	}
	return jsonwire.WriteString(w, "}")
}

// Done reports whether every member of the stream has been written.
func (s *MemberStream[K, V]) Done() bool { return s.p.isDone() }

// Close releases the underlying sequence.
// Later encodings write {}.
func (s *MemberStream[K, V]) Close() { s.p.close() }

// puller draws items from a single-use source.
// The caller of draw and keep must hold mu.
type puller[T any] struct {
	mu   sync.Mutex
	next func() (T, bool)
	stop func() // nil if the source needs no release

	pending    T
	hasPending bool
	done       bool
}

func (p *puller[T]) draw() (T, bool) {
	if p.hasPending {
		v := p.pending
		var zero T
		p.pending, p.hasPending = zero, false
		return v, true
	}
	if p.done {
		var zero T
		return zero, false
	}
	v, ok := p.next()
	if !ok {
		p.release()
	}
	return v, ok
}

// keep makes v the next item returned by draw.
func (p *puller[T]) keep(v T) {
	p.pending, p.hasPending = v, true
}

func (p *puller[T]) release() {
	p.done = true
	if p.stop != nil {
		p.stop()
		p.stop = nil
	}
	p.next = nil
}

func (p *puller[T]) isDone() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done && !p.hasPending
}

func (p *puller[T]) close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	var zero T
	p.pending, p.hasPending = zero, false
	p.release()
}
