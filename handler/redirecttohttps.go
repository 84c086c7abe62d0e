package handler

import "github.com/alexrudd/http4g/internal/message"

// RedirectToHttps wraps a Handler. In a "production" environment it
// replaces any request whose URI scheme is not https with a 301 pointing
// at the same URI with the scheme rewritten to https; in any other
// environment (including an absent "environment" key) it passes the
// request through unchanged.
type RedirectToHttps struct {
	Next Handler
	Env  map[string]string
}

// Handle implements Handler.
func (r RedirectToHttps) Handle(req message.Request, cont Continuation) {
	if r.Env["environment"] == "production" {
		if req.URI.Scheme == nil || *req.URI.Scheme != "https" {
			location := req.URI.WithScheme("https").String()
			cont(message.MovedPermanently(location))
			return
		}
	}
	r.Next.Handle(req, cont)
}
