package handler

import (
	"testing"

	"github.com/alexrudd/http4g/internal/message"
)

func TestClientSynthesizesBadRequestOnDialFailure(t *testing.T) {
	c := NewClient("127.0.0.1:1") // nothing listens on port 1

	var got message.Response
	c.Handle(message.NewRequest(message.GET, message.ParseURI("/")), func(resp message.Response) {
		got = resp
	})

	if got.Status != message.StatusBadRequest {
		t.Fatalf("Status = %+v; want 400 on dial failure", got.Status)
	}
}
