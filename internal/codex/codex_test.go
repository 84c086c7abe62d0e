package codex

import (
	"testing"

	"github.com/alexrudd/http4g/internal/message"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	src := []byte("the quick brown fox jumps over the lazy dog, repeatedly, for padding")
	for _, algo := range []message.CompressionAlgorithm{message.GZIP, message.DEFLATE, message.BROTLI} {
		encoded, err := Encode(src, algo)
		if err != nil {
			t.Fatalf("Encode(%v): %v", algo, err)
		}
		decoded, err := Decode(encoded, algo)
		if err != nil {
			t.Fatalf("Decode(%v): %v", algo, err)
		}
		if string(decoded) != string(src) {
			t.Errorf("%v round-trip mismatch: got %q", algo, decoded)
		}
	}
}

func TestEncodePanicsOnNone(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Encode(NONE) to panic")
		}
	}()
	Encode([]byte("x"), message.NONE)
}

func TestDecodePanicsOnNone(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Decode(NONE) to panic")
		}
	}()
	Decode([]byte("x"), message.NONE)
}
