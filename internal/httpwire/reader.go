package httpwire

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/alexrudd/http4g/internal/chunked"
	"github.com/alexrudd/http4g/internal/message"
)

// Limits bounds the growable buffers the reader uses for each phase of a
// message. The reader never reallocates past these bounds; exceeding one
// is the error path; see §5 of the design.
type Limits struct {
	StartLine int
	Headers   int
	Trailers  int
	ReadSlab  int
	Body      int
}

// DefaultLimits returns the buffer sizes named in the design: 16 KiB
// start-line, 16 KiB headers, 16 KiB trailers, 4 KiB read slab, 1 MiB body.
func DefaultLimits() Limits {
	return Limits{
		StartLine: 16 * 1024,
		Headers:   16 * 1024,
		Trailers:  16 * 1024,
		ReadSlab:  4 * 1024,
		Body:      1024 * 1024,
	}
}

var errCapExceeded = errors.New("httpwire: capacity exceeded")

// scanner is the two-level refill loop described in §4.1: it pulls bytes
// from the underlying socket in ReadSlab-sized chunks via bufio.Reader and
// exposes line/block scanning primitives over them.
type scanner struct {
	br *bufio.Reader
}

func newScanner(r io.Reader, limits Limits) *scanner {
	return &scanner{br: bufio.NewReaderSize(r, limits.ReadSlab)}
}

// readLine reads up to and excluding the next "\r\n", enforcing capBytes.
func (s *scanner) readLine(capBytes int) (string, error) {
	var buf []byte
	for {
		b, err := s.br.ReadByte()
		if err != nil {
			return "", err
		}
		if b == '\n' && len(buf) > 0 && buf[len(buf)-1] == '\r' {
			return string(buf[:len(buf)-1]), nil
		}
		buf = append(buf, b)
		if len(buf) > capBytes {
			return "", errCapExceeded
		}
	}
}

// readBlock reads CRLF-terminated lines until a blank line, returning the
// joined "\r\n"-terminated block (without the trailing blank line) — the
// same shape headers and trailers share on the wire.
func (s *scanner) readBlock(capBytes int) (string, error) {
	var block strings.Builder
	total := 0
	for {
		line, err := s.readLine(capBytes - total)
		if err != nil {
			return "", err
		}
		if line == "" {
			return block.String(), nil
		}
		total += len(line) + 2
		if total > capBytes {
			return "", errCapExceeded
		}
		block.WriteString(line)
		block.WriteString("\r\n")
	}
}

func teWantsTrailers(h message.Headers) bool {
	v, ok := h.Get("TE")
	if !ok {
		return false
	}
	for _, tok := range strings.Split(v, ",") {
		if strings.EqualFold(strings.TrimSpace(tok), "trailers") {
			return true
		}
	}
	return false
}

func isChunked(h message.Headers) bool {
	v, ok := h.Get("Transfer-Encoding")
	if !ok {
		return false
	}
	for _, tok := range strings.Split(v, ",") {
		if strings.EqualFold(strings.TrimSpace(tok), "chunked") {
			return true
		}
	}
	return false
}

func parseContentLength(raw string) (int64, error) {
	parts := strings.Split(raw, ", ")
	first := strings.TrimSpace(parts[0])
	for _, p := range parts[1:] {
		if strings.TrimSpace(p) != first {
			return 0, newInvalidContentLength(first, strings.TrimSpace(p))
		}
	}
	n, err := strconv.ParseInt(first, 10, 64)
	if err != nil || n < 0 {
		return 0, &MessageError{Kind: ErrInvalidContentLength, Message: "invalid Content-Length: " + raw}
	}
	return n, nil
}

// decodeChunked drains a chunked body from s, byte at a time, into a
// growing slice, then reads and returns the raw trailer block. The
// byte-at-a-time feed exercises the decoder's resumable-call contract
// (§4.2/§9) without needing slab-boundary bookkeeping in this caller.
func decodeChunked(s *scanner, limits Limits) ([]byte, message.Headers, error) {
	var dec chunked.Decoder
	out := make([]byte, 0, 4096)
	one := make([]byte, 1)
	for !dec.Finished {
		b, err := s.br.ReadByte()
		if err != nil {
			return nil, message.Headers{}, err
		}
		one[0] = b
		var derr error
		out, derr = dec.Decode(one, out)
		if derr != nil {
			return nil, message.Headers{}, &MessageError{Kind: ErrInvalidBoundaryDigit, Message: derr.Error()}
		}
	}
	block, err := s.readBlock(limits.Trailers)
	if err != nil {
		if errors.Is(err, errCapExceeded) {
			return nil, message.Headers{}, newTrailersTooBig()
		}
		return nil, message.Headers{}, err
	}
	trailers, perr := message.ParseHeaders(block)
	if perr != nil {
		return nil, message.Headers{}, perr
	}
	return out, trailers, nil
}

// resolveTrailers applies the cleansing and TE:trailers-gated promotion
// rule of §4.1 to a raw trailer set, returning the (headers, trailers)
// to attach to the message.
func resolveTrailers(headers, rawTrailers message.Headers, happyToReceiveTrailers bool) (message.Headers, message.Headers) {
	cleansed := cleanseTrailers(rawTrailers)
	if cleansed.IsEmpty() {
		return headers, message.Headers{}
	}
	if !happyToReceiveTrailers {
		return headers.AddAll(cleansed), message.Headers{}
	}
	return headers, cleansed
}

// ReadRequest parses one HTTP/1.1 request from r.
func ReadRequest(r io.Reader, limits Limits) (message.Request, error) {
	s := newScanner(r, limits)

	startLine, err := s.readLine(limits.StartLine)
	if err != nil {
		if errors.Is(err, errCapExceeded) {
			return message.Request{}, newStartLineTooBig()
		}
		return message.Request{}, err
	}
	parts := strings.SplitN(startLine, " ", 3)
	if len(parts) != 3 {
		return message.Request{}, errors.New("httpwire: malformed request line")
	}
	method, ok := message.ParseMethod(parts[0])
	if !ok {
		return message.Request{}, errors.New("httpwire: unrecognised method " + parts[0])
	}
	version, ok := message.ParseHttpVersion(parts[2])
	if !ok {
		return message.Request{}, errors.New("httpwire: unrecognised protocol version " + parts[2])
	}
	uri := message.ParseURI(parts[1])
	// method and target are known from here on; every MessageError
	// returned below is annotated with them so the server's framing-error
	// log line (§7) can report method/target even though this function
	// itself returns a zero-value Request on every error path.
	reqMethod, reqTarget := parts[0], parts[1]

	headerBlock, err := s.readBlock(limits.Headers)
	if err != nil {
		if errors.Is(err, errCapExceeded) {
			return message.Request{}, withRequestInfo(newHeadersTooBig(), reqMethod, reqTarget)
		}
		return message.Request{}, err
	}
	headers, perr := message.ParseHeaders(headerBlock)
	if perr != nil {
		return message.Request{}, perr
	}

	req := message.Request{Method: method, URI: uri, Version: version, Headers: headers, Body: message.EmptyBody}

	if !method.CanHaveBody() {
		if cl, ok := headers.Get("Content-Length"); ok {
			if n, err := parseContentLength(cl); err == nil && n > 0 {
				if _, err := io.CopyN(io.Discard, s.br, n); err != nil {
					return message.Request{}, withRequestInfo(err, reqMethod, reqTarget)
				}
			}
		} else if isChunked(headers) {
			if _, _, err := decodeChunked(s, limits); err != nil {
				return message.Request{}, withRequestInfo(err, reqMethod, reqTarget)
			}
		}
		req.Headers = headers.Remove("Content-Length").Remove("Transfer-Encoding").Replace("Content-Length", "0")
		req.Body = message.EmptyBody
		return req, nil
	}

	body, headersOut, trailers, err := readBody(s, headers, limits, true)
	if err != nil {
		return message.Request{}, withRequestInfo(err, reqMethod, reqTarget)
	}
	req.Headers = headersOut
	req.Body = body
	req.Trailers = trailers
	return req, nil
}

// ReadResponse parses one HTTP/1.1 response from r.
func ReadResponse(r io.Reader, limits Limits) (message.Response, error) {
	s := newScanner(r, limits)

	startLine, err := s.readLine(limits.StartLine)
	if err != nil {
		if errors.Is(err, errCapExceeded) {
			return message.Response{}, newStartLineTooBig()
		}
		return message.Response{}, err
	}
	parts := strings.SplitN(startLine, " ", 3)
	if len(parts) < 2 {
		return message.Response{}, errors.New("httpwire: malformed status line")
	}
	version, ok := message.ParseHttpVersion(parts[0])
	if !ok {
		return message.Response{}, errors.New("httpwire: unrecognised protocol version " + parts[0])
	}
	status := message.StatusFrom(parts[1])

	headerBlock, err := s.readBlock(limits.Headers)
	if err != nil {
		if errors.Is(err, errCapExceeded) {
			return message.Response{}, newHeadersTooBig()
		}
		return message.Response{}, err
	}
	headers, perr := message.ParseHeaders(headerBlock)
	if perr != nil {
		return message.Response{}, perr
	}

	resp := message.Response{Status: status, Version: version, Headers: headers}

	body, headersOut, trailers, err := readBody(s, headers, limits, false)
	if err != nil {
		return message.Response{}, err
	}
	resp.Headers = headersOut
	resp.Body = body
	resp.Trailers = trailers
	return resp, nil
}

// readBody implements the shared framing-arbitration and body-presentation
// rules of §4.1 for both requests and responses once the caller has
// already established that a body is permitted here (isRequest matters
// only for the "happy to receive trailers" computation, which is a
// request-only concept: TE is a request header).
func readBody(s *scanner, headers message.Headers, limits Limits, isRequest bool) (message.Body, message.Headers, message.Headers, error) {
	_, hasCL := headers.Get("Content-Length")
	_, hasTE := headers.Get("Transfer-Encoding")

	if hasCL && hasTE {
		headers = headers.Remove("Content-Length")
		hasCL = false
	}

	if !hasCL && !hasTE {
		return message.EmptyBody, headers, message.Headers{}, newNoContentLengthOrTransferEncoding()
	}

	if isChunked(headers) {
		raw, rawTrailers, err := decodeChunked(s, limits)
		if err != nil {
			return message.Body{}, headers, message.Headers{}, err
		}
		happy := isRequest && teWantsTrailers(headers)
		headersOut, trailers := resolveTrailers(headers, rawTrailers, happy)
		return message.BufferedBody(raw), headersOut, trailers, nil
	}

	clValue, _ := headers.Get("Content-Length")
	n, err := parseContentLength(clValue)
	if err != nil {
		return message.Body{}, headers, message.Headers{}, err
	}
	if n == 0 {
		return message.EmptyBody, headers, message.Headers{}, nil
	}
	if n <= int64(limits.Body) {
		buf := make([]byte, n)
		if _, err := io.ReadFull(s.br, buf); err != nil {
			return message.Body{}, headers, message.Headers{}, err
		}
		return message.BufferedBody(buf), headers, message.Headers{}, nil
	}
	return message.StreamedBody(io.LimitReader(s.br, n)), headers, message.Headers{}, nil
}

// BridgeToHTTP10 rewrites resp so a Transfer-Encoding: chunked response can
// be relayed to an HTTP/1.0 recipient: the body is fully drained into a
// buffered body (if not already) and Content-Length is injected in place
// of Transfer-Encoding.
func BridgeToHTTP10(resp message.Response) (message.Response, error) {
	if !isChunked(resp.Headers) {
		return resp, nil
	}
	data, err := message.ReadBodyString(resp.Body)
	if err != nil {
		return message.Response{}, err
	}
	resp.Headers = resp.Headers.Remove("Transfer-Encoding").Replace("Content-Length", strconv.Itoa(len(data)))
	resp.Body = message.BufferedBody([]byte(data))
	resp.Version = message.OnePtOh
	return resp, nil
}
