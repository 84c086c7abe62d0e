package handler

import (
	"errors"
	"net"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alexrudd/http4g/internal/httpwire"
	"github.com/alexrudd/http4g/internal/message"
	"github.com/alexrudd/http4g/internal/pool"
)

// Config holds Server construction options, following the teacher's
// struct-with-documented-defaults convention (no functional-options
// dependency is introduced; the teacher's own server package does not use
// one either).
type Config struct {
	// Addr is the TCP address to listen on. Use ":0" to have the kernel
	// assign a port; Server.Addr() reports the actual bound address
	// after Start.
	Addr string

	// WorkerPoolSize is the fixed number of workers servicing accepted
	// connections. Default 10.
	WorkerPoolSize int

	// Limits bounds the wire reader's buffers for every connection.
	Limits httpwire.Limits

	// ReadTimeout/WriteTimeout, when non-zero, are applied as connection
	// deadlines before reading the request and before writing the
	// response respectively. Zero means no deadline (§5's "SHOULD
	// provide an optional per-connection deadline").
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Logger receives a warn-level entry for every framing error this
	// server converts to a status code (§7).
	Logger logrus.FieldLogger
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Addr:           ":0",
		WorkerPoolSize: 10,
		Limits:         httpwire.DefaultLimits(),
		Logger:         logrus.StandardLogger(),
	}
}

// HandlerFactory constructs a fresh per-connection Handler. It must be
// safe to call concurrently from every worker; the Handler it returns need
// not itself be safe for concurrent use, since each connection gets its
// own.
type HandlerFactory func() Handler

// Server binds a TCP listener and hands each accepted connection to a
// fixed worker pool. Each connection handles exactly one request/response
// exchange — no keep-alive, no pipelining — per the engine's Non-goals:
// the socket is closed after the response is flushed regardless of what
// Connection header either side sent.
type Server struct {
	cfg     Config
	factory HandlerFactory
	ln      net.Listener
	workers *pool.Pool
}

// NewServer builds a Server that will dispatch each connection to a fresh
// Handler built by factory.
func NewServer(cfg Config, factory HandlerFactory) *Server {
	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = 10
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	if cfg.Limits == (httpwire.Limits{}) {
		cfg.Limits = httpwire.DefaultLimits()
	}
	return &Server{cfg: cfg, factory: factory}
}

// Start binds the listener and begins accepting connections on a
// background goroutine. It returns once the listener is bound, so Addr()
// is immediately valid.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	s.ln = ln
	s.workers = pool.New(s.cfg.WorkerPoolSize)
	go s.acceptLoop()
	return nil
}

// Addr returns the bound listener address.
func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		s.workers.Execute(func() { s.serveOne(conn) })
	}
}

func (s *Server) serveOne(conn net.Conn) {
	defer conn.Close()

	if s.cfg.ReadTimeout > 0 {
		conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
	}

	req, err := httpwire.ReadRequest(conn, s.cfg.Limits)
	if err != nil {
		s.logFramingError(err)
		if s.cfg.WriteTimeout > 0 {
			conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
		}
		_ = httpwire.WriteResponse(conn, errorResponse(err))
		return
	}

	h := s.factory()
	h.Handle(req, func(resp message.Response) {
		if s.cfg.WriteTimeout > 0 {
			conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
		}
		_ = httpwire.WriteResponse(conn, resp)
	})
}

func (s *Server) logFramingError(err error) {
	var me *httpwire.MessageError
	kind := "unknown"
	method, target := "", ""
	if errors.As(err, &me) {
		kind = me.Kind.Error()
		method = me.Method
		target = me.Target
	}
	s.cfg.Logger.WithFields(logrus.Fields{
		"method":     method,
		"target":     target,
		"error_kind": kind,
	}).Warn(err.Error())
}

// errorResponse maps a framing error to the status C10/§4.6 requires:
// HeadersTooBig/StartLineTooBig/TrailersTooBig/InvalidContentLength/
// InvalidBoundaryDigit all become 400; NoContentLengthOrTransferEncoding
// becomes 411.
func errorResponse(err error) message.Response {
	status := httpwire.StatusFor(err)
	return message.NewResponse(status).WithBody(message.BufferedBody([]byte(err.Error())))
}

// Stop closes the listener and waits for in-flight workers to drain via
// an orderly pool shutdown.
func (s *Server) Stop() error {
	err := s.ln.Close()
	if s.workers != nil {
		s.workers.Shutdown()
	}
	return err
}
