package message

import "testing"

func TestParseURIFullReference(t *testing.T) {
	u := ParseURI("https://example.com/path?q=1#frag")
	if u.Scheme == nil || *u.Scheme != "https" {
		t.Fatalf("Scheme = %v", u.Scheme)
	}
	if u.Authority == nil || *u.Authority != "example.com" {
		t.Fatalf("Authority = %v", u.Authority)
	}
	if u.Path != "/path" {
		t.Fatalf("Path = %q", u.Path)
	}
	if u.Query == nil || *u.Query != "q=1" {
		t.Fatalf("Query = %v", u.Query)
	}
	if u.Fragment == nil || *u.Fragment != "frag" {
		t.Fatalf("Fragment = %v", u.Fragment)
	}
}

func TestParseURIPathOnly(t *testing.T) {
	u := ParseURI("/just/a/path")
	if u.Scheme != nil || u.Authority != nil || u.Query != nil || u.Fragment != nil {
		t.Fatalf("expected only Path to be present, got %+v", u)
	}
	if u.Path != "/just/a/path" {
		t.Fatalf("Path = %q", u.Path)
	}
}

func TestURIRoundTrip(t *testing.T) {
	cases := []string{
		"https://example.com/path?q=1#frag",
		"/just/a/path",
		"http://example.com",
		"mailto:foo@example.com",
		"/search?q=go",
	}
	for _, c := range cases {
		u := ParseURI(c)
		if got := u.String(); got != c {
			t.Errorf("round-trip mismatch for %q: got %q", c, got)
		}
	}
}

func TestURIWithScheme(t *testing.T) {
	u := ParseURI("/foo").WithScheme("https").WithAuthority("example.com")
	if u.String() != "https://example.com/foo" {
		t.Fatalf("got %q", u.String())
	}
}
