package handler

import (
	"testing"

	"github.com/alexrudd/http4g/internal/message"
)

func TestWithContentLengthInjectsHeaderBeforeDelegating(t *testing.T) {
	var seen message.Request
	next := HandlerFunc(func(req message.Request, cont Continuation) {
		seen = req
		cont(message.Ok(nil))
	})
	w := WithContentLength{Next: next}

	req := message.NewRequest(message.POST, message.ParseURI("/bob")).WithBody(message.BufferedBody([]byte("hello")))
	w.Handle(req, func(message.Response) {})

	if v, ok := seen.Headers.Get("Content-Length"); !ok || v != "5" {
		t.Fatalf("Content-Length = %q, %v; want \"5\", true", v, ok)
	}
}

func TestWithContentLengthIsIdempotent(t *testing.T) {
	var seen message.Request
	next := HandlerFunc(func(req message.Request, cont Continuation) {
		seen = req
		cont(message.Ok(nil))
	})
	w := WithContentLength{Next: next}

	req := message.NewRequest(message.POST, message.ParseURI("/bob")).
		WithHeader("Content-Length", "999").
		WithBody(message.BufferedBody([]byte("hello")))
	w.Handle(req, func(message.Response) {})

	if v, _ := seen.Headers.Get("Content-Length"); v != "999" {
		t.Fatalf("Content-Length = %q; want unchanged \"999\"", v)
	}
}
