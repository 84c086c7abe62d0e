package codex

import (
	"strconv"
	"strings"

	"github.com/alexrudd/http4g/internal/message"
)

// codingOrder is the tie-break order used when two codings in an
// Accept-Encoding list carry the same q-value: the later entry in this
// list wins. When no entry carries an explicit q-value, brotli is chosen
// whenever it is listed (see parseAcceptEncoding).
var codingOrder = []message.CompressionAlgorithm{message.GZIP, message.DEFLATE, message.BROTLI}

func rank(a message.CompressionAlgorithm) int {
	for i, c := range codingOrder {
		if c == a {
			return i
		}
	}
	return -1
}

type weightedCoding struct {
	algo message.CompressionAlgorithm
	q    float64
	pos  int
}

// parseAcceptEncoding parses a comma-separated, optionally q-weighted
// Accept-Encoding value and returns the highest-ranked recognised coding,
// breaking ties per codingOrder with brotli preferred when no entry
// carries an explicit q-value.
func parseAcceptEncoding(value string) (message.CompressionAlgorithm, bool) {
	parts := strings.Split(value, ",")
	var candidates []weightedCoding
	anyExplicitQ := false
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		token := part
		q := 1.0
		hasQ := false
		if idx := strings.Index(part, ";"); idx >= 0 {
			token = strings.TrimSpace(part[:idx])
			qPart := strings.TrimSpace(part[idx+1:])
			if strings.HasPrefix(qPart, "q=") {
				if v, err := strconv.ParseFloat(strings.TrimPrefix(qPart, "q="), 64); err == nil {
					q = v
					hasQ = true
				}
			}
		}
		if q == 0 {
			continue
		}
		algo, ok := message.ParseCompressionAlgorithm(token)
		if !ok {
			continue
		}
		if hasQ {
			anyExplicitQ = true
		}
		candidates = append(candidates, weightedCoding{algo: algo, q: q, pos: i})
	}
	if len(candidates) == 0 {
		return 0, false
	}
	if !anyExplicitQ {
		for _, c := range candidates {
			if c.algo == message.BROTLI {
				return message.BROTLI, true
			}
		}
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		switch {
		case c.q > best.q:
			best = c
		case c.q == best.q && rank(c.algo) > rank(best.algo):
			best = c
		}
	}
	return best.algo, true
}

// SelectRequestCoding determines which coding (if any) a request body was
// encoded with, for decoding purposes. Only Content-Encoding applies here:
// it is the sender's statement of fact about its own body.
func SelectRequestCoding(h message.Headers) (message.CompressionAlgorithm, bool) {
	if v, ok := h.Get("Content-Encoding"); ok {
		return message.ParseCompressionAlgorithm(strings.TrimSpace(v))
	}
	return 0, false
}

// Source names which request header a negotiated response coding was
// chosen from. The header the engine writes the coding back onto differs
// by source (§4.4 rule 3): Content-Encoding/Accept-Encoding write
// Content-Encoding, but TE writes the coding into Transfer-Encoding
// instead, since TE negotiates a transfer coding, not a content coding.
type Source uint8

const (
	SourceNone Source = iota
	SourceContentEncoding
	SourceAcceptEncoding
	SourceTE
)

// SelectResponseCoding chooses the coding to apply to an outgoing response
// body given the headers of the request that elicited it, per §4.4's
// priority: Content-Encoding wins over Accept-Encoding wins over
// Transfer-Encoding (TE). The returned Source tells the caller which rule
// matched, since a TE match must be written back onto Transfer-Encoding,
// not Content-Encoding.
func SelectResponseCoding(reqHeaders message.Headers) (message.CompressionAlgorithm, Source, bool) {
	if v, ok := reqHeaders.Get("Content-Encoding"); ok {
		if algo, ok := message.ParseCompressionAlgorithm(strings.TrimSpace(v)); ok {
			return algo, SourceContentEncoding, true
		}
	}
	if v, ok := reqHeaders.Get("Accept-Encoding"); ok {
		if algo, ok := parseAcceptEncoding(v); ok {
			return algo, SourceAcceptEncoding, true
		}
	}
	if v, ok := reqHeaders.Get("TE"); ok {
		if algo, ok := parseAcceptEncoding(v); ok {
			return algo, SourceTE, true
		}
	}
	return 0, SourceNone, false
}
