// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwire

import "unicode/utf8"

// escapeSeq maps every ASCII character to the sequence that replaces it
// within a JSON string, where the empty string means it is copied verbatim.
// Validity of this table is checked in TestEscapeSeqTable.
var escapeSeq = [utf8.RuneSelf]string{
	`\u0000`, `\u0001`, `\u0002`, `\u0003`, `\u0004`, `\u0005`, `\u0006`, `\u0007`,
	`\u0008`, `\t`, `\n`, `\u000b`, `\u000c`, `\r`, `\u000e`, `\u000f`,
	`\u0010`, `\u0011`, `\u0012`, `\u0013`, `\u0014`, `\u0015`, `\u0016`, `\u0017`,
	`\u0018`, `\u0019`, `\u001a`, `\u001b`, `\u001c`, `\u001d`, `\u001e`, `\u001f`,
	'"':  `\"`,
	'\\': `\\`,
	0x7f: `\u007f`,
}

// makeEscapeSeq builds escapeSeq from first principles.
func makeEscapeSeq() (t [utf8.RuneSelf]string) {
	const hex = "0123456789abcdef"
	for c := range t {
		switch {
		case c == '"' || c == '\\':
			t[c] = `\` + string(rune(c))
		case c == '\n':
			t[c] = `\n`
		case c == '\r':
			t[c] = `\r`
		case c == '\t':
			t[c] = `\t`
		case c < ' ' || c == 0x7f:
			t[c] = string([]byte{'\\', 'u', '0', '0', hex[c>>4], hex[c&0xf]})
		}
	}
	return t
}

// NeedEscape reports whether the ASCII character c must be escaped.
// It assumes c < utf8.RuneSelf.
func NeedEscape(c byte) bool {
	return escapeSeq[c] != ""
}

// blockSize is the number of bytes tested at once by the bulk scanner.
const blockSize = 16

const (
	lsb = 0x0101010101010101
	msb = 0x8080808080808080
)

// hasZero reports (in the high bit of each lane) whether any byte of x is 0.
func hasZero(x uint64) uint64 {
	return (x - lsb) &^ x & msb
}

// attention reports whether any byte of the 8-byte word x is either
// an ASCII character that must be escaped or the start of a non-ASCII run.
func attention(x uint64) bool {
	ctrl := (x - lsb*' ') &^ x & msb // some byte < 0x20
	quot := hasZero(x ^ lsb*'"')
	bsol := hasZero(x ^ lsb*'\\')
	del := hasZero(x ^ lsb*0x7f)
	return (ctrl|quot|bsol|del|x&msb) != 0
}

func load64[Bytes ~[]byte | ~string](s Bytes, i int) uint64 {
	_ = s[i+7]
	return uint64(s[i]) | uint64(s[i+1])<<8 | uint64(s[i+2])<<16 | uint64(s[i+3])<<24 |
		uint64(s[i+4])<<32 | uint64(s[i+5])<<40 | uint64(s[i+6])<<48 | uint64(s[i+7])<<56
}

// nextSpecial returns the offset of the first byte at or after n that
// must be escaped or that begins a multi-byte sequence.
// It returns len(s) if there is none.
//
// Whole blocks free of such bytes are skipped without looking at
// individual characters. Only a block that reports attention
// is scanned byte by byte.
func nextSpecial[Bytes ~[]byte | ~string](s Bytes, n int) int {
	for len(s)-n >= blockSize {
		if attention(load64(s, n)) || attention(load64(s, n+8)) {
			break
		}
		n += blockSize
	}
	for ; n < len(s); n++ {
		if c := s[n]; c >= utf8.RuneSelf || NeedEscape(c) {
			return n
		}
	}
	return len(s)
}
