// Package handler implements the continuation-based handler pipeline
// (C8): Client, Server, WithContentLength, Logging, RedirectToHttps and
// ContentNegotiation, all composing around the same contract — given a
// request, eventually invoke a single continuation with a response.
package handler

import "github.com/alexrudd/http4g/internal/message"

// Continuation receives a response exactly once. It is the only way a
// Handler communicates its result; there is no return value, so a handler
// whose response body borrows a socket reader can let the continuation
// consume that body while the handler's own stack frame (and therefore the
// borrow) is still alive.
type Continuation func(message.Response)

// Handler is any value that can process a request and invoke a
// continuation with the eventual response.
type Handler interface {
	Handle(req message.Request, cont Continuation)
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(req message.Request, cont Continuation)

// Handle calls f.
func (f HandlerFunc) Handle(req message.Request, cont Continuation) {
	f(req, cont)
}
