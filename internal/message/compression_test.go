package message

import "testing"

func TestParseCompressionAlgorithmKnownTokens(t *testing.T) {
	cases := map[string]CompressionAlgorithm{
		"gzip":    GZIP,
		"x-gzip":  GZIP,
		"deflate": DEFLATE,
		"br":      BROTLI,
	}
	for token, want := range cases {
		got, ok := ParseCompressionAlgorithm(token)
		if !ok || got != want {
			t.Errorf("ParseCompressionAlgorithm(%q) = %v, %v; want %v, true", token, got, ok, want)
		}
	}
}

func TestParseCompressionAlgorithmRejectsUnimplementedCodings(t *testing.T) {
	for _, token := range []string{"identity", "compress", "sdch"} {
		if _, ok := ParseCompressionAlgorithm(token); ok {
			t.Errorf("ParseCompressionAlgorithm(%q) unexpectedly succeeded", token)
		}
	}
}

func TestCompressionAlgorithmString(t *testing.T) {
	cases := map[CompressionAlgorithm]string{
		GZIP: "gzip", DEFLATE: "deflate", BROTLI: "br", NONE: "identity",
	}
	for alg, want := range cases {
		if got := alg.String(); got != want {
			t.Errorf("%v.String() = %q; want %q", alg, got, want)
		}
	}
}
