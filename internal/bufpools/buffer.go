// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bufpools

import "io"

// segmentSize is the minimum size of each segment.
const segmentSize = 16 << 10

// Buffer holds encoded output in a series of pooled segments
// until it is copied to its destination with WriteTo.
//
// Each call to Write or WriteString is stored contiguously
// within a single segment, so the boundaries of the original writes
// are never split when the content is copied out.
// The zero value is an empty buffer ready to use.
type Buffer struct {
	length   int
	segments [][]byte
}

func (b *Buffer) last() *[]byte {
	return &b.segments[len(b.segments)-1]
}

// Len returns the number of bytes written to the buffer.
func (b *Buffer) Len() int {
	return b.length
}

// available returns how many bytes fit in the last segment.
func (b *Buffer) available() int {
	if len(b.segments) == 0 {
		return 0
	}
	return cap(*b.last()) - len(*b.last())
}

// grow guarantees that the last segment has room for another n bytes.
func (b *Buffer) grow(n int) {
	if b.available() >= n {
		return
	}
	if len(b.segments) > 0 && len(*b.last()) == 0 {
		Put(*b.last())
		b.segments = b.segments[:len(b.segments)-1]
	}
	b.segments = append(b.segments, Get(max(n, segmentSize)))
}

// Write appends the contents of p to the buffer. It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	if len(p) > 0 {
		b.grow(len(p))
		last := b.last()
		*last = append(*last, p...)
		b.length += len(p)
	}
	return len(p), nil
}

// WriteString appends the contents of s to the buffer. It never fails.
func (b *Buffer) WriteString(s string) (int, error) {
	if len(s) > 0 {
		b.grow(len(s))
		last := b.last()
		*last = append(*last, s...)
		b.length += len(s)
	}
	return len(s), nil
}

// WriteTo writes the buffered content to w, one call per segment,
// stopping at the first error. The buffer itself is left unchanged.
func (b *Buffer) WriteTo(w io.Writer) (n int64, err error) {
	for _, seg := range b.segments {
		if len(seg) == 0 {
			continue
		}
		m, err := w.Write(seg)
		n += int64(m)
		if err != nil {
			return n, err
		}
		if m != len(seg) {
			return n, io.ErrShortWrite
		}
	}
	return n, nil
}

// Release returns every segment to the pools and empties the buffer.
// The buffer may be reused afterwards.
func (b *Buffer) Release() {
	for i, p := range b.segments {
		Put(p)
		b.segments[i] = nil // allow GC to reclaim the buffer
	}
	b.length = 0
	b.segments = b.segments[:0]
}
