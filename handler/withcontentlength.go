package handler

import (
	"github.com/alexrudd/http4g/internal/httpwire"
	"github.com/alexrudd/http4g/internal/message"
)

// WithContentLength wraps a Handler and rewrites outgoing requests to
// carry a Content-Length (or Transfer-Encoding: chunked for a streamed
// 1.1 body) whenever neither framing header is already present, via the
// same idempotent rule the wire writer applies to responses (§4.3).
type WithContentLength struct {
	Next Handler
}

// Handle implements Handler.
func (w WithContentLength) Handle(req message.Request, cont Continuation) {
	req.Headers = httpwire.EnsureContentLengthOrTransferEncoding(req.Headers, req.Version, req.Body)
	w.Next.Handle(req, cont)
}
