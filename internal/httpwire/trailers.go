package httpwire

import "github.com/alexrudd/http4g/internal/message"

// disallowedTrailers is the exact, case-insensitive set of header names
// that must never survive as a trailer: authorization/cookie families,
// framing controls, Content-* metadata, routing and caching headers.
// Promoting any of these from a trailer block would let an attacker
// smuggle values the rest of the pipeline already decided on before the
// body was read.
var disallowedTrailers = map[string]struct{}{
	"authorization":               {},
	"www-authenticate":            {},
	"proxy-authenticate":          {},
	"proxy-authorization":         {},
	"set-cookie":                  {},
	"cookie":                      {},
	"cookie2":                     {},
	"access-control-allow-origin":  {},
	"access-control-allow-headers": {},
	"transfer-encoding":           {},
	"content-length":              {},
	"trailer":                     {},
	"location":                    {},
	"vary":                        {},
	"retry-after":                 {},
	"content-encoding":            {},
	"accept-encoding":             {},
	"content-type":                {},
	"content-range":               {},
	"keep-alive":                  {},
	"upgrade":                     {},
	"cache-control":               {},
	"expect":                      {},
	"max-forwards":                {},
	"pragma":                      {},
	"range":                       {},
	"te":                          {},
	"dnt":                         {},
	"feature-policy":              {},
	"via":                         {},
	"host":                        {},
	"connection":                  {},
	"origin":                      {},
}

func isDisallowedTrailer(name string) bool {
	_, ok := disallowedTrailers[lowerASCII(name)]
	return ok
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// cleanseTrailers drops every disallowed trailer from raw and returns the
// surviving set.
func cleanseTrailers(raw message.Headers) message.Headers {
	var out message.Headers
	for _, p := range raw.All() {
		if isDisallowedTrailer(p.Name) {
			continue
		}
		out = out.Add(p.Name, p.Value)
	}
	return out
}
