package message

import (
	"bytes"
	"io"
)

// Body is either a buffered byte slice of known length or a streamed
// reader of unknown length. Consuming a streamed body exhausts it; it is
// not rewindable.
type Body struct {
	buffered []byte
	stream   io.Reader
}

// BufferedBody wraps a byte slice as a Body whose length is known.
func BufferedBody(b []byte) Body {
	return Body{buffered: b}
}

// StreamedBody wraps a reader as a Body of unknown length.
func StreamedBody(r io.Reader) Body {
	return Body{stream: r}
}

// EmptyBody is a zero-length buffered body.
var EmptyBody = BufferedBody(nil)

// IsStreamed reports whether b is backed by a reader rather than an
// in-memory slice.
func (b Body) IsStreamed() bool {
	return b.stream != nil
}

// Bytes returns the buffered content and true, or nil and false if b is
// streamed.
func (b Body) Bytes() ([]byte, bool) {
	if b.stream != nil {
		return nil, false
	}
	return b.buffered, true
}

// Reader returns a reader over b's content regardless of how it is backed.
func (b Body) Reader() io.Reader {
	if b.stream != nil {
		return b.stream
	}
	return bytes.NewReader(b.buffered)
}

// Len returns the buffered length and true, or 0 and false if streamed.
func (b Body) Len() (int, bool) {
	if b.stream != nil {
		return 0, false
	}
	return len(b.buffered), true
}
