package handler

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alexrudd/http4g/internal/message"
)

// Clock is injected into Logging so its duration measurement is testable
// without a real wall-clock dependency.
type Clock func() time.Time

// Logging wraps a Handler, recording "method uri => status took Δt" for
// every request through an injected logrus logger. The clock and logger
// are both constructor-injected rather than package-level globals, so a
// test can supply a fixed clock and an in-memory logger to assert on the
// emitted line.
type Logging struct {
	Next   Handler
	Logger logrus.FieldLogger
	Now    Clock
}

// NewLogging builds a Logging handler with the standard logger and the
// real wall clock.
func NewLogging(next Handler) Logging {
	return Logging{Next: next, Logger: logrus.StandardLogger(), Now: time.Now}
}

// Handle implements Handler.
func (l Logging) Handle(req message.Request, cont Continuation) {
	now := l.Now
	if now == nil {
		now = time.Now
	}
	logger := l.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	start := now()
	l.Next.Handle(req, func(resp message.Response) {
		took := now().Sub(start)
		logger.WithFields(logrus.Fields{
			"method":      req.Method.String(),
			"uri":         req.URI.String(),
			"status":      resp.Status.Code,
			"duration_us": took.Microseconds(),
		}).Infof("%s %s => %d took %s", req.Method, req.URI.String(), resp.Status.Code, took)
		cont(resp)
	})
}
