package message

import "testing"

func TestStatusFromKnownCodes(t *testing.T) {
	cases := map[string]Status{
		"200": StatusOK,
		"400": StatusBadRequest,
		"404": StatusNotFound,
	}
	for token, want := range cases {
		if got := StatusFrom(token); got != want {
			t.Errorf("StatusFrom(%q) = %+v; want %+v", token, got, want)
		}
	}
}

func TestStatusFromUnrecognisedFallsBackToUnknown(t *testing.T) {
	// Even other well-known codes not explicitly special-cased degrade to
	// StatusUnknown; this engine does not maintain a full status table.
	cases := []string{"301", "411", "500", "not-a-number", ""}
	for _, token := range cases {
		if got := StatusFrom(token); got != StatusUnknown {
			t.Errorf("StatusFrom(%q) = %+v; want StatusUnknown", token, got)
		}
	}
}
