// Package httpwire implements the HTTP/1.1 wire reader and writer: the
// start-line/headers/body state machine that turns bytes into a
// message.Request or message.Response and back (C5/C6 of the design), plus
// the named framing-error taxonomy (C10) the rest of the engine maps to
// HTTP status codes.
package httpwire

import (
	"errors"
	"fmt"

	"github.com/alexrudd/http4g/internal/message"
)

// Sentinel kinds. Dynamic-message errors (InvalidContentLength,
// InvalidBoundaryDigit) wrap one of these via Unwrap so errors.Is still
// matches after wrapping, mirroring the teacher's pre-allocated
// sentinel-error idiom while still carrying a useful message.
var (
	ErrInvalidContentLength              = errors.New("httpwire: invalid Content-Length")
	ErrNoContentLengthOrTransferEncoding = errors.New("httpwire: no Content-Length or Transfer-Encoding")
	ErrStartLineTooBig                   = errors.New("httpwire: start line exceeds buffer capacity")
	ErrHeadersTooBig                     = errors.New("httpwire: headers exceed buffer capacity")
	ErrTrailersTooBig                    = errors.New("httpwire: trailers exceed buffer capacity")
	ErrInvalidBoundaryDigit              = errors.New("httpwire: invalid boundary digit in chunked encoding")
)

// MessageError is the common shape of every framing error this package
// returns: a Kind sentinel plus a human-readable message for the synthetic
// response body. Method and Target, when non-empty, are the request's
// already-parsed method and request-target at the point the error
// occurred (§7's "method/target/error_kind" structured log fields); they
// are empty for errors that occur before the start line has been parsed.
type MessageError struct {
	Kind    error
	Message string
	Method  string
	Target  string
}

func (e *MessageError) Error() string { return e.Message }
func (e *MessageError) Unwrap() error { return e.Kind }

// withRequestInfo annotates err's Method/Target fields if err unwraps to a
// *MessageError, so the caller's structured log line can include them even
// though the reader itself returns a zero-value Request on every error
// path. Errors that are not a *MessageError (malformed start line, raw
// socket errors) are returned unchanged.
func withRequestInfo(err error, method, target string) error {
	var me *MessageError
	if errors.As(err, &me) {
		me.Method = method
		me.Target = target
	}
	return err
}

func newInvalidContentLength(first, second string) *MessageError {
	return &MessageError{Kind: ErrInvalidContentLength, Message: fmt.Sprintf("invalid Content-Length: got %s, %s", first, second)}
}

func newNoContentLengthOrTransferEncoding() *MessageError {
	return &MessageError{Kind: ErrNoContentLengthOrTransferEncoding, Message: "no Content-Length or Transfer-Encoding"}
}

func newStartLineTooBig() *MessageError {
	return &MessageError{Kind: ErrStartLineTooBig, Message: "start line too big"}
}

func newHeadersTooBig() *MessageError {
	return &MessageError{Kind: ErrHeadersTooBig, Message: "headers too big"}
}

func newTrailersTooBig() *MessageError {
	return &MessageError{Kind: ErrTrailersTooBig, Message: "trailers too big"}
}

// StatusFor maps a MessageError's Kind to the HTTP status the server
// boundary (C10, §7) converts it to.
func StatusFor(err error) message.Status {
	var me *MessageError
	if !errors.As(err, &me) {
		return message.StatusBadRequest
	}
	switch {
	case errors.Is(me.Kind, ErrNoContentLengthOrTransferEncoding):
		return message.StatusLengthRequired
	default:
		return message.StatusBadRequest
	}
}
