// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonsink provides compressing writers that JSON values
// can be encoded into directly, without first being marshaled to memory.
//
//	err := jsonsink.Encode(f, jsonsink.Zstd, v, jsonsink.WithLevel(3))
package jsonsink

import (
	"fmt"
	"io"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"

	"github.com/go-json-experiment/jsonwrite"
)

const errorPrefix = "jsonsink: "

// Codec is a compression format.
type Codec uint8

const (
	_ Codec = iota

	// Gzip is the gzip format of RFC 1952.
	// Levels range from -2 (Huffman only) to 9 (best compression).
	Gzip
	// Zstd is the Zstandard format of RFC 8878.
	// Levels follow the zstd command line, from 1 to 22,
	// and are mapped onto the nearest supported encoder speed.
	Zstd
	// Snappy is the framed Snappy stream format.
	// It has no levels.
	Snappy
)

func (c Codec) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case Snappy:
		return "snappy"
	default:
		return fmt.Sprintf("Codec(%d)", uint8(c))
	}
}

// Option configures a Writer.
type Option func(*options)

type options struct {
	level       int
	levelSet    bool
	concurrency int
}

// WithLevel sets the compression level.
// Its meaning depends on the codec and it is ignored by Snappy.
func WithLevel(level int) Option {
	return func(o *options) {
		o.level, o.levelSet = level, true
	}
}

// WithConcurrency sets the number of goroutines the Zstd encoder
// may use. The default of 1 compresses synchronously within Write
// and starts no goroutines. Larger values compress in the background,
// which is the only background work done by this module; the goroutines
// exit when the Writer is closed or aborted.
// It is ignored by the other codecs.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// compressor is the common subset of the codec writers.
type compressor interface {
	io.WriteCloser
	Flush() error
}

// Writer compresses everything written to it into an underlying writer.
// Close must be called to write the end of the compressed stream.
// Closing a Writer does not close the underlying writer.
type Writer struct {
	codec Codec
	c     compressor
}

// NewWriter returns a Writer that compresses into w using codec.
func NewWriter(w io.Writer, codec Codec, opts ...Option) (*Writer, error) {
	o := options{concurrency: 1}
	for _, opt := range opts {
		opt(&o)
	}

	var c compressor
	switch codec {
	case Gzip:
		level := gzip.DefaultCompression
		if o.levelSet {
			level = o.level
		}
		zw, err := gzip.NewWriterLevel(w, level)
		if err != nil {
			return nil, errors.Wrapf(err, "%s%v level %d", errorPrefix, codec, level)
		}
		c = zw
	case Zstd:
		level := zstd.SpeedDefault
		if o.levelSet {
			level = zstd.EncoderLevelFromZstd(o.level)
		}
		zw, err := zstd.NewWriter(w,
			zstd.WithEncoderLevel(level),
			zstd.WithEncoderConcurrency(o.concurrency),
		)
		if err != nil {
			return nil, errors.Wrapf(err, "%s%v concurrency %d", errorPrefix, codec, o.concurrency)
		}
		c = zw
	case Snappy:
		c = snappy.NewBufferedWriter(w)
	default:
		return nil, errors.Errorf("%sunknown codec %v", errorPrefix, codec)
	}
	return &Writer{codec: codec, c: c}, nil
}

// Codec reports the compression format of w.
func (w *Writer) Codec() Codec { return w.codec }

// Write compresses p.
// Errors from the underlying writer are returned unchanged.
func (w *Writer) Write(p []byte) (int, error) { return w.c.Write(p) }

// Flush writes any pending compressed data to the underlying writer.
// The output so far can then be decompressed, although the stream
// is not complete until Close.
func (w *Writer) Flush() error { return w.c.Flush() }

// Close writes the end of the compressed stream.
func (w *Writer) Close() error { return w.c.Close() }

// Abort releases the Writer without finishing the compressed stream.
// Pending data is discarded and no trailer is written, so a gzip or zstd
// stream that already reached the underlying writer fails to decompress.
// The framed Snappy format has no trailer: chunks written before Abort
// still decode, but the buffered remainder is dropped.
func (w *Writer) Abort() {
	switch c := w.c.(type) {
	case *gzip.Writer:
		c.Reset(io.Discard)
	case *zstd.Encoder:
		c.Reset(io.Discard)
	case *snappy.Writer:
		c.Reset(io.Discard)
	}
	// Only io.Discard is written to, so there is nothing to report.
	_ = w.c.Close()
}

// Encode writes v into w compressed with codec, then closes the compressed
// stream. If writing v fails, the stream is aborted and the error
// is returned unchanged.
func Encode(w io.Writer, codec Codec, v jsonwrite.Value, opts ...Option) error {
	zw, err := NewWriter(w, codec, opts...)
	if err != nil {
		return err
	}
	if err := v.WriteJSON(zw); err != nil {
		zw.Abort()
		return err
	}
	return zw.Close()
}
