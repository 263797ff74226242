// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwire

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestEscapeSeqTable(t *testing.T) {
	want := makeEscapeSeq()
	for c := range escapeSeq {
		if escapeSeq[c] != want[c] {
			t.Errorf("escapeSeq[%#02x] = %q, want %q", c, escapeSeq[c], want[c])
		}
	}
}

func TestAttention(t *testing.T) {
	for c := 0; c < 256; c++ {
		want := c >= utf8.RuneSelf || NeedEscape(byte(c))
		// Place the character in every lane of an otherwise clean word.
		for lane := 0; lane < 8; lane++ {
			b := []byte("abcdefgh")
			b[lane] = byte(c)
			if got := attention(load64(b, 0)); got != want {
				t.Errorf("attention(%q) = %v, want %v", b, got, want)
			}
		}
	}
}

func TestNextSpecial(t *testing.T) {
	tests := []struct {
		in   string
		from int
		want int
	}{
		{"", 0, 0},
		{"hello", 0, 5},
		{"hello\n", 0, 5},
		{strings.Repeat("x", 64), 0, 64},
		{strings.Repeat("x", 40) + `"`, 0, 40},
		{strings.Repeat("x", 40) + `"` + strings.Repeat("y", 40), 41, 81},
		{strings.Repeat("x", 17) + "é", 0, 17},
		{strings.Repeat("x", 31) + "\x7f", 0, 31},
		{`\` + strings.Repeat("x", 31), 1, 32},
	}
	for _, tt := range tests {
		if got := nextSpecial(tt.in, tt.from); got != tt.want {
			t.Errorf("nextSpecial(%q, %d) = %d, want %d", tt.in, tt.from, got, tt.want)
		}
	}
}
