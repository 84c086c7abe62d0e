package httpwire

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alexrudd/http4g/internal/message"
)

const streamChunkSize = 16 * 1024

// EnsureContentLengthOrTransferEncoding injects the missing framing header
// per §4.3: Content-Length for a buffered body with neither header set,
// Transfer-Encoding: chunked for a streamed HTTP/1.1 body with neither
// header set. It is idempotent: calling it again once a framing header is
// present is a no-op (§8 invariant 4).
func EnsureContentLengthOrTransferEncoding(headers message.Headers, version message.HttpVersion, body message.Body) message.Headers {
	if headers.Has("Content-Length") || headers.Has("Transfer-Encoding") {
		return headers
	}
	if !body.IsStreamed() {
		n, _ := body.Len()
		return headers.Add("Content-Length", strconv.Itoa(n))
	}
	if version.IsOnePtOne() {
		return headers.Add("Transfer-Encoding", "chunked")
	}
	return headers
}

// WriteRequest serializes req to w.
func WriteRequest(w io.Writer, req message.Request) error {
	headers := EnsureContentLengthOrTransferEncoding(req.Headers, req.Version, req.Body)
	startLine := fmt.Sprintf("%s %s %s", req.Method, req.URI.String(), req.Version.String())
	return writeMessage(w, startLine, headers, req.Body, req.Trailers)
}

// WriteResponse serializes resp to w.
func WriteResponse(w io.Writer, resp message.Response) error {
	headers := EnsureContentLengthOrTransferEncoding(resp.Headers, resp.Version, resp.Body)
	startLine := fmt.Sprintf("%s %d %s", resp.Version.String(), resp.Status.Code, resp.Status.Reason)
	return writeMessage(w, startLine, headers, resp.Body, resp.Trailers)
}

func writeMessage(w io.Writer, startLine string, headers message.Headers, body message.Body, trailers message.Headers) error {
	if _, err := io.WriteString(w, startLine+"\r\n"); err != nil {
		return err
	}
	if !headers.IsEmpty() {
		if _, err := io.WriteString(w, headers.ToWireString()+"\r\n"); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\r\n"); err != nil {
		return err
	}

	if isChunked(headers) {
		return writeChunkedBody(w, body, trailers)
	}
	return writeIdentityBody(w, body)
}

func writeIdentityBody(w io.Writer, body message.Body) error {
	if buf, ok := body.Bytes(); ok {
		if len(buf) == 0 {
			return nil
		}
		_, err := w.Write(buf)
		return err
	}
	_, err := io.Copy(w, body.Reader())
	return err
}

// writeChunkedBody emits the body as RFC 7230 chunks, hex-encoded size
// prefixes (§4.3's resolution of the §9 open question), then a zero-size
// terminating chunk, optional trailers, and the final CRLF.
func writeChunkedBody(w io.Writer, body message.Body, trailers message.Headers) error {
	writeChunk := func(chunk []byte) error {
		if len(chunk) == 0 {
			return nil
		}
		if _, err := io.WriteString(w, strconv.FormatInt(int64(len(chunk)), 16)+"\r\n"); err != nil {
			return err
		}
		if _, err := w.Write(chunk); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\r\n")
		return err
	}

	if buf, ok := body.Bytes(); ok {
		if err := writeChunk(buf); err != nil {
			return err
		}
	} else {
		buf := make([]byte, streamChunkSize)
		r := body.Reader()
		for {
			n, err := r.Read(buf)
			if n > 0 {
				if werr := writeChunk(buf[:n]); werr != nil {
					return werr
				}
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
		}
	}

	if _, err := io.WriteString(w, "0\r\n"); err != nil {
		return err
	}
	if !trailers.IsEmpty() {
		if _, err := io.WriteString(w, trailers.ToWireString()+"\r\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\r\n")
	return err
}
