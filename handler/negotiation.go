package handler

import (
	"strings"

	"github.com/alexrudd/http4g/internal/codex"
	"github.com/alexrudd/http4g/internal/message"
)

// ContentNegotiation wraps a Handler and implements the filter layer §4.4
// describes but leaves outside the writer itself: on the way in it decodes
// a request body that declares Content-Encoding; on the way out it encodes
// the response body per the Content-Encoding > Accept-Encoding >
// Transfer-Encoding (TE) priority. A coding chosen via Content-Encoding or
// Accept-Encoding is announced on the response's Content-Encoding header;
// a coding chosen via TE is instead prepended to Transfer-Encoding (e.g.
// "gzip, chunked"), since TE negotiates a transfer coding rather than a
// content coding.
type ContentNegotiation struct {
	Next Handler
}

// Handle implements Handler.
func (c ContentNegotiation) Handle(req message.Request, cont Continuation) {
	reqHeaders := req.Headers
	if algo, ok := codex.SelectRequestCoding(req.Headers); ok {
		if raw, ok := req.Body.Bytes(); ok {
			if decoded, err := codex.Decode(raw, algo); err == nil {
				req.Body = message.BufferedBody(decoded)
				req.Headers = req.Headers.Remove("Content-Encoding")
			}
		}
	}

	c.Next.Handle(req, func(resp message.Response) {
		if algo, source, ok := codex.SelectResponseCoding(reqHeaders); ok {
			if raw, ok := resp.Body.Bytes(); ok {
				if encoded, err := codex.Encode(raw, algo); err == nil {
					resp.Body = message.BufferedBody(encoded)
					if source == codex.SourceTE {
						resp.Headers = resp.Headers.Replace("Transfer-Encoding", prependTransferCoding(resp.Headers, algo))
					} else {
						resp.Headers = resp.Headers.Replace("Content-Encoding", algo.String())
					}
				}
			}
		}
		cont(resp)
	})
}

// prependTransferCoding builds the Transfer-Encoding value for a TE-negotiated
// coding per §4.4 rule 3: the coding is prepended to whatever
// Transfer-Encoding already carries (e.g. "chunked"), or to a fresh
// "chunked" marker if none is present yet, since a compressed body always
// ends up chunk-framed. A coding already present is left alone rather than
// prepended twice.
func prependTransferCoding(headers message.Headers, algo message.CompressionAlgorithm) string {
	existing, ok := headers.Get("Transfer-Encoding")
	if !ok {
		existing = "chunked"
	}
	for _, tok := range strings.Split(existing, ",") {
		if strings.EqualFold(strings.TrimSpace(tok), algo.String()) {
			return existing
		}
	}
	return algo.String() + ", " + existing
}
