// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwire

import (
	"io"
	"math"
	"slices"
	"strconv"
	"unicode/utf8"
)

const replacementChar = "\ufffd"

// AppendQuote appends src to dst as a JSON string per RFC 8259, section 7.
//
// Characters are escaped according to escapeSeq. Multi-byte UTF-8 is copied
// verbatim, while invalid bytes are replaced with the Unicode replacement
// character so that the output is always valid UTF-8.
func AppendQuote[Bytes ~[]byte | ~string](dst []byte, src Bytes) []byte {
	var i, n int // src[i:n] is the pending verbatim span
	dst = slices.Grow(dst, len(`"`)+len(src)+len(`"`))
	dst = append(dst, '"')
	for {
		if n = nextSpecial(src, n); n == len(src) {
			break
		}
		if c := src[n]; c < utf8.RuneSelf {
			dst = append(dst, src[i:n]...)
			dst = append(dst, escapeSeq[c]...)
			n++
			i = n
			continue
		}
		rn := runeLen(src[n:])
		if rn == 0 {
			dst = append(dst, src[i:n]...)
			dst = append(dst, replacementChar...)
			n++
			i = n
			continue
		}
		n += rn
	}
	dst = append(dst, src[i:]...)
	return append(dst, '"')
}

// WriteQuote writes src to w as a JSON string.
// The output is identical to AppendQuote, but spans of characters that
// need no escaping are handed to w in a single call.
func WriteQuote[Bytes ~[]byte | ~string](w io.Writer, src Bytes) error {
	var i, n int
	if err := WriteString(w, `"`); err != nil {
		return err
	}
	for {
		if n = nextSpecial(src, n); n == len(src) {
			break
		}
		var seq string
		if c := src[n]; c < utf8.RuneSelf {
			seq = escapeSeq[c]
		} else if rn := runeLen(src[n:]); rn > 0 {
			n += rn
			continue
		} else {
			seq = replacementChar
		}
		if err := writeSpan(w, src[i:n]); err != nil {
			return err
		}
		if err := WriteString(w, seq); err != nil {
			return err
		}
		n++
		i = n
	}
	if err := writeSpan(w, src[i:]); err != nil {
		return err
	}
	return WriteString(w, `"`)
}

// AppendRune appends r to dst as a single-character JSON string.
// It uses the same escaping rules as AppendQuote.
func AppendRune(dst []byte, r rune) []byte {
	dst = append(dst, '"')
	switch {
	case r >= 0 && r < utf8.RuneSelf && NeedEscape(byte(r)):
		dst = append(dst, escapeSeq[r]...)
	case utf8.ValidRune(r):
		dst = utf8.AppendRune(dst, r)
	default:
		dst = append(dst, replacementChar...)
	}
	return append(dst, '"')
}

// runeLen returns the length of the valid multi-byte character
// at the start of s, or 0 if s starts with invalid UTF-8.
func runeLen[Bytes ~[]byte | ~string](s Bytes) int {
	r, rn := utf8.DecodeRuneInString(string(truncateMaxUTF8(s)))
	if r == utf8.RuneError && rn == 1 {
		return 0
	}
	return rn
}

// truncateMaxUTF8 truncates b such it contains at least one rune.
//
// The utf8 package currently lacks generic variants, which complicates
// generic functions that operates on either []byte or string.
// As a hack, we always call the utf8 function operating on strings,
// but always truncate the input such that the result is identical.
//
// Example usage:
//
//	utf8.DecodeRuneInString(string(truncateMaxUTF8(b)))
//
// Converting a []byte to a string is stack allocated since
// truncateMaxUTF8 guarantees that the []byte is short.
func truncateMaxUTF8[Bytes ~[]byte | ~string](b Bytes) Bytes {
	// TODO(https://go.dev/issue/56948): Remove this function and
	// instead directly call generic utf8 functions wherever used.
	if len(b) > utf8.UTFMax {
		return b[:utf8.UTFMax]
	}
	return b
}

func writeSpan[Bytes ~[]byte | ~string](w io.Writer, b Bytes) error {
	if len(b) == 0 {
		return nil
	}
	switch b := any(b).(type) {
	case string:
		return WriteString(w, b)
	case []byte:
		_, err := w.Write(b)
		return err
	}
	_, err := w.Write([]byte(b))
	return err
}

// WriteString writes s to w, avoiding a copy when w implements io.StringWriter.
func WriteString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

// AppendFloat appends src to dst as a JSON number per RFC 8259, section 6.
// It formats numbers similar to the ES6 number-to-string conversion,
// which is the shortest representation that round-trips to the same value.
// See https://go.dev/issue/14135.
//
// The output is identical to ECMA-262, 6th edition, section 7.1.12.1 and with
// RFC 8785, section 3.2.2.3 for 64-bit floating-point numbers except for -0,
// which is formatted as -0 instead of just 0.
// NaN and ±Inf have no JSON representation and are formatted as null.
//
// For 32-bit floating-point numbers,
// the output is a 32-bit equivalent of the algorithm.
// Note that ECMA-262 specifies no algorithm for 32-bit numbers.
func AppendFloat(dst []byte, src float64, bits int) []byte {
	if bits == 32 {
		src = float64(float32(src))
	}
	if math.IsNaN(src) || math.IsInf(src, 0) {
		return append(dst, "null"...)
	}

	abs := math.Abs(src)
	fmt := byte('f')
	if abs != 0 {
		if bits == 64 && (float64(abs) < 1e-6 || float64(abs) >= 1e21) ||
			bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			fmt = 'e'
		}
	}
	dst = strconv.AppendFloat(dst, src, fmt, -1, bits)
	if fmt == 'e' {
		// Clean up e-09 to e-9.
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst
}

// maxNumberLen is large enough for any number produced by this package.
// The longest float is "-2.2250738585072014e-308" (24 bytes).
const maxNumberLen = 32

// WriteFloat writes src to w as formatted by AppendFloat.
func WriteFloat(w io.Writer, src float64, bits int) error {
	var arr [maxNumberLen]byte
	_, err := w.Write(AppendFloat(arr[:0], src, bits))
	return err
}

// maxIntLen is the length of the longest integer, "-9223372036854775808".
const maxIntLen = 20

// WriteInt writes src to w in canonical decimal form.
func WriteInt(w io.Writer, src int64) error {
	var arr [maxIntLen]byte
	_, err := w.Write(strconv.AppendInt(arr[:0], src, 10))
	return err
}

// WriteUint writes src to w in canonical decimal form.
func WriteUint(w io.Writer, src uint64) error {
	var arr [maxIntLen]byte
	_, err := w.Write(strconv.AppendUint(arr[:0], src, 10))
	return err
}
