package message

import "testing"

func TestHeadersAddFoldsSameName(t *testing.T) {
	h := NewHeaders()
	h = h.Add("Content-Length", "5")
	h = h.Add("Content-Length", "5")

	v, ok := h.Get("Content-Length")
	if !ok || v != "5, 5" {
		t.Fatalf("got %q, %v; want %q, true", v, ok, "5, 5")
	}
	if h.Len() != 1 {
		t.Fatalf("Len() = %d; want 1", h.Len())
	}
}

func TestHeadersAddNeverFoldsSetCookie(t *testing.T) {
	h := NewHeaders()
	h = h.Add("Set-Cookie", "a=1")
	h = h.Add("Set-Cookie", "b=2")

	if h.Len() != 2 {
		t.Fatalf("Len() = %d; want 2 (Set-Cookie must never fold)", h.Len())
	}
}

func TestHeadersPreservesInsertionOrder(t *testing.T) {
	h := NewHeaders()
	h = h.Add("B", "1")
	h = h.Add("A", "2")
	h = h.Add("B", "3") // folds into the first B

	all := h.All()
	if len(all) != 2 || all[0].Name != "B" || all[1].Name != "A" {
		t.Fatalf("unexpected order: %+v", all)
	}
}

func TestHeadersReplaceInPlace(t *testing.T) {
	h := NewHeaders(Header{"A", "1"}, Header{"B", "2"}, Header{"C", "3"})
	h = h.Replace("B", "replaced")

	all := h.All()
	if all[1].Name != "B" || all[1].Value != "replaced" {
		t.Fatalf("Replace did not substitute in place: %+v", all)
	}
}

func TestHeadersRemoveCaseInsensitive(t *testing.T) {
	h := NewHeaders(Header{"Content-Type", "text/plain"})
	h = h.Remove("content-type")
	if !h.IsEmpty() {
		t.Fatalf("expected headers to be empty after Remove")
	}
}

func TestParseHeadersRoundTrip(t *testing.T) {
	h := NewHeaders(Header{"Host", "example.com"}, Header{"Accept", "*/*"})
	wire := h.ToWireString()

	parsed, err := ParseHeaders(wire)
	if err != nil {
		t.Fatalf("ParseHeaders: %v", err)
	}
	if parsed.ToWireString() != wire {
		t.Fatalf("round-trip mismatch: got %q, want %q", parsed.ToWireString(), wire)
	}
}

func TestHeadersFilter(t *testing.T) {
	h := NewHeaders(Header{"A", "1"}, Header{"B", "2"}, Header{"C", "3"})
	filtered := h.Filter("A", "C")
	if filtered.Len() != 2 || !filtered.Has("A") || !filtered.Has("C") || filtered.Has("B") {
		t.Fatalf("unexpected filter result: %+v", filtered.All())
	}
}
