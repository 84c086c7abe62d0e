package message

import "testing"

func TestRequestBuilders(t *testing.T) {
	req := NewRequest(GET, ParseURI("/foo")).
		WithHeader("Host", "example.com").
		WithBody(BufferedBody([]byte("body"))).
		WithTrailers(NewHeaders(Header{"X-Checksum", "abc"}))

	if req.Method != GET {
		t.Fatalf("Method = %v", req.Method)
	}
	if v, ok := req.Headers.Get("Host"); !ok || v != "example.com" {
		t.Fatalf("Host header = %q, %v", v, ok)
	}
	if b, ok := req.Body.Bytes(); !ok || string(b) != "body" {
		t.Fatalf("Body = %q, %v", b, ok)
	}
	if v, ok := req.Trailers.Get("X-Checksum"); !ok || v != "abc" {
		t.Fatalf("Trailers = %q, %v", v, ok)
	}
}

func TestResponseFactories(t *testing.T) {
	cases := []struct {
		resp Response
		want Status
	}{
		{Ok([]byte("x")), StatusOK},
		{BadRequest([]byte("x")), StatusBadRequest},
		{NotFound([]byte("x")), StatusNotFound},
		{LengthRequired([]byte("x")), StatusLengthRequired},
		{InternalServerError([]byte("x")), StatusInternalServerError},
	}
	for _, c := range cases {
		if c.resp.Status != c.want {
			t.Errorf("Status = %+v; want %+v", c.resp.Status, c.want)
		}
		b, ok := c.resp.Body.Bytes()
		if !ok || string(b) != "x" {
			t.Errorf("Body = %q, %v", b, ok)
		}
	}
}

func TestMovedPermanentlySetsLocation(t *testing.T) {
	resp := MovedPermanently("https://example.com/foo")
	if resp.Status != StatusMovedPermanently {
		t.Fatalf("Status = %+v", resp.Status)
	}
	if v, ok := resp.Headers.Get("Location"); !ok || v != "https://example.com/foo" {
		t.Fatalf("Location header = %q, %v", v, ok)
	}
	if n, ok := resp.Body.Len(); !ok || n != 0 {
		t.Fatalf("expected empty body, got len=%d ok=%v", n, ok)
	}
}

func TestResponseWithHeadersReplacesWholesale(t *testing.T) {
	resp := NewResponse(StatusOK).WithHeader("A", "1")
	resp = resp.WithHeaders(NewHeaders(Header{"B", "2"}))
	if resp.Headers.Has("A") {
		t.Fatalf("expected WithHeaders to replace, but A survived")
	}
	if v, ok := resp.Headers.Get("B"); !ok || v != "2" {
		t.Fatalf("B header = %q, %v", v, ok)
	}
}
