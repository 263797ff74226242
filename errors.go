// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwrite

const errorPrefix = "jsonwrite: "

// Error matches errors returned by this package according to errors.Is.
//
// Errors reported by the underlying sink are never wrapped and
// therefore do not match Error.
const Error = jsonError("jsonwrite error")

type jsonError string

func (e jsonError) Error() string        { return string(e) }
func (e jsonError) Is(target error) bool { return e == target || target == Error }

// ErrInvalidUTF8 is reported by TextWriter when asked to forward bytes
// that are not valid UTF-8. Values provided by this package never
// produce such output; only a faulty custom Value can.
var ErrInvalidUTF8 error = &dataError{str: "invalid UTF-8 in encoded output"}

type dataError struct {
	str string
}

func (e *dataError) Error() string        { return errorPrefix + e.str }
func (e *dataError) Is(target error) bool { return e == target || target == Error }

// ErrClosed is reported by RecordWriter and TupleWriter
// when used after Close.
var ErrClosed error = &dataError{str: "use of closed writer"}
