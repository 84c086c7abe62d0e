// Command httpd wires the handler pipeline into a runnable echo server:
// RedirectToHttps → Logging → ContentNegotiation → an echo handler that
// mirrors the request body back as the response body, demonstrating the
// continuation contract end to end.
package main

import (
	"log"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/alexrudd/http4g/handler"
	"github.com/alexrudd/http4g/internal/message"
)

func echoHandler() handler.Handler {
	return handler.HandlerFunc(func(req message.Request, cont handler.Continuation) {
		body, err := message.ReadBodyString(req.Body)
		if err != nil {
			cont(message.InternalServerError([]byte(err.Error())))
			return
		}
		cont(message.Ok([]byte(body)))
	})
}

func buildHandler() handler.Handler {
	env := map[string]string{"environment": os.Getenv("HTTP4G_ENV")}
	h := echoHandler()
	h = handler.ContentNegotiation{Next: h}
	h = handler.NewLogging(h)
	h = handler.RedirectToHttps{Next: h, Env: env}
	return h
}

func main() {
	cfg := handler.DefaultConfig()
	cfg.Addr = ":8080"

	srv := handler.NewServer(cfg, func() handler.Handler { return buildHandler() })
	if err := srv.Start(); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
	log.Printf("listening on %s", srv.Addr())
	select {}
}
