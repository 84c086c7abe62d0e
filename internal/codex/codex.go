// Package codex implements pluggable compression encode/decode for the
// content-codings this engine negotiates: gzip, deflate and brotli. Gzip
// and deflate are backed by klauspost/compress rather than the standard
// library's compress/gzip and compress/flate; brotli is backed by
// andybalholm/brotli. Scratch buffers are drawn from a bytebufferpool pool
// instead of being allocated per call.
package codex

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/valyala/bytebufferpool"

	"github.com/alexrudd/http4g/internal/message"
)

var scratchPool bytebufferpool.Pool

// Encode compresses src with algo and returns the compressed bytes. NONE is
// an illegal argument: callers must only invoke Encode when negotiation
// chose an actual coding.
func Encode(src []byte, algo message.CompressionAlgorithm) ([]byte, error) {
	if algo == message.NONE {
		panic("codex: cannot encode with no compression algorithm")
	}

	buf := scratchPool.Get()
	defer scratchPool.Put(buf)
	buf.Reset()

	switch algo {
	case message.GZIP:
		w := gzip.NewWriter(buf)
		if _, err := w.Write(src); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
	case message.DEFLATE:
		w, err := flate.NewWriter(buf, flate.DefaultCompression)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(src); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
	case message.BROTLI:
		w := brotli.NewWriter(buf)
		if _, err := w.Write(src); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("codex: unsupported compression algorithm %v", algo)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// Decode decompresses src, which was encoded with algo. NONE is an illegal
// argument.
func Decode(src []byte, algo message.CompressionAlgorithm) ([]byte, error) {
	if algo == message.NONE {
		panic("codex: cannot decode with no compression algorithm")
	}

	var r io.Reader
	switch algo {
	case message.GZIP:
		gr, err := gzip.NewReader(bytes.NewReader(src))
		if err != nil {
			return nil, err
		}
		defer gr.Close()
		r = gr
	case message.DEFLATE:
		fr := flate.NewReader(bytes.NewReader(src))
		defer fr.Close()
		r = fr
	case message.BROTLI:
		r = brotli.NewReader(bytes.NewReader(src))
	default:
		return nil, fmt.Errorf("codex: unsupported compression algorithm %v", algo)
	}

	buf := scratchPool.Get()
	defer scratchPool.Put(buf)
	buf.Reset()

	if _, err := io.Copy(buf, r); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}
