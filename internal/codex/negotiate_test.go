package codex

import (
	"testing"

	"github.com/alexrudd/http4g/internal/message"
)

func TestParseAcceptEncodingPrefersExplicitQ(t *testing.T) {
	algo, ok := parseAcceptEncoding("gzip;q=0.2, br;q=0.8, deflate;q=0.5")
	if !ok || algo != message.BROTLI {
		t.Fatalf("got %v, %v; want BROTLI", algo, ok)
	}
}

func TestParseAcceptEncodingBrotliTieBreakWithoutQ(t *testing.T) {
	// S9: "gzip, deflate, br" with no q-values present anywhere prefers br.
	algo, ok := parseAcceptEncoding("gzip, deflate, br")
	if !ok || algo != message.BROTLI {
		t.Fatalf("got %v, %v; want BROTLI", algo, ok)
	}
}

func TestParseAcceptEncodingIgnoresZeroWeighted(t *testing.T) {
	algo, ok := parseAcceptEncoding("br;q=0, gzip;q=0.5")
	if !ok || algo != message.GZIP {
		t.Fatalf("got %v, %v; want GZIP", algo, ok)
	}
}

func TestParseAcceptEncodingNoRecognisedCoding(t *testing.T) {
	if _, ok := parseAcceptEncoding("identity, sdch"); ok {
		t.Fatalf("expected no recognised coding to be selected")
	}
}

func TestSelectRequestCodingUsesContentEncodingOnly(t *testing.T) {
	h := message.NewHeaders(message.Header{Name: "Content-Encoding", Value: "gzip"})
	algo, ok := SelectRequestCoding(h)
	if !ok || algo != message.GZIP {
		t.Fatalf("got %v, %v; want GZIP", algo, ok)
	}
}

func TestSelectResponseCodingPriority(t *testing.T) {
	// Content-Encoding present: it wins outright.
	h := message.NewHeaders(
		message.Header{Name: "Content-Encoding", Value: "br"},
		message.Header{Name: "Accept-Encoding", Value: "gzip"},
	)
	algo, source, ok := SelectResponseCoding(h)
	if !ok || algo != message.BROTLI || source != SourceContentEncoding {
		t.Fatalf("got %v, %v, %v; want BROTLI, SourceContentEncoding (Content-Encoding wins)", algo, source, ok)
	}

	// No Content-Encoding: Accept-Encoding is consulted next.
	h2 := message.NewHeaders(message.Header{Name: "Accept-Encoding", Value: "gzip, deflate, br"})
	algo2, source2, ok2 := SelectResponseCoding(h2)
	if !ok2 || algo2 != message.BROTLI || source2 != SourceAcceptEncoding {
		t.Fatalf("got %v, %v, %v; want BROTLI, SourceAcceptEncoding", algo2, source2, ok2)
	}

	// Neither present, but TE is: falls back to TE.
	h3 := message.NewHeaders(message.Header{Name: "TE", Value: "deflate"})
	algo3, source3, ok3 := SelectResponseCoding(h3)
	if !ok3 || algo3 != message.DEFLATE || source3 != SourceTE {
		t.Fatalf("got %v, %v, %v; want DEFLATE, SourceTE", algo3, source3, ok3)
	}

	// Nothing present: no coding selected.
	if _, _, ok4 := SelectResponseCoding(message.NewHeaders()); ok4 {
		t.Fatalf("expected no coding to be selected")
	}
}
