package handler

import (
	"net"
	"time"

	"github.com/alexrudd/http4g/internal/httpwire"
	"github.com/alexrudd/http4g/internal/message"
)

// ClientOptions configures a Client. HeaderBufferSize/TrailerBufferSize
// default to 16384, matching the design's client buffer defaults.
type ClientOptions struct {
	HeaderBufferSize  int
	TrailerBufferSize int
	DialTimeout       time.Duration
}

// DefaultClientOptions returns the documented defaults.
func DefaultClientOptions() ClientOptions {
	return ClientOptions{HeaderBufferSize: 16384, TrailerBufferSize: 16384, DialTimeout: 10 * time.Second}
}

func (o ClientOptions) limits() httpwire.Limits {
	l := httpwire.DefaultLimits()
	if o.HeaderBufferSize > 0 {
		l.Headers = o.HeaderBufferSize
	}
	if o.TrailerBufferSize > 0 {
		l.Trailers = o.TrailerBufferSize
	}
	return l
}

// Client is the C8 Client handler: it opens a TCP connection per request,
// writes the request, reads the response, and invokes the continuation.
// On any framing or transport error it synthesises a 400 response whose
// body carries the error message, rather than propagating the error —
// this keeps the Handler contract total.
type Client struct {
	Addr    string
	Options ClientOptions
}

// NewClient builds a Client dialing addr (host:port) with default options.
func NewClient(addr string) *Client {
	return &Client{Addr: addr, Options: DefaultClientOptions()}
}

// Handle implements Handler.
func (c *Client) Handle(req message.Request, cont Continuation) {
	dialer := net.Dialer{Timeout: c.Options.DialTimeout}
	conn, err := dialer.Dial("tcp", c.Addr)
	if err != nil {
		cont(message.BadRequest([]byte(err.Error())))
		return
	}
	defer conn.Close()

	if err := httpwire.WriteRequest(conn, req); err != nil {
		cont(message.BadRequest([]byte(err.Error())))
		return
	}

	resp, err := httpwire.ReadResponse(conn, c.Options.limits())
	if err != nil {
		cont(message.BadRequest([]byte(err.Error())))
		return
	}
	cont(resp)
}
