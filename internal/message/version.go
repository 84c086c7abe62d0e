package message

import "fmt"

// HttpVersion is a (major, minor) protocol version pair.
type HttpVersion struct {
	Major int
	Minor int
}

var (
	OnePtOh = HttpVersion{1, 0}
	OnePtOne = HttpVersion{1, 1}
)

// IsOnePtOne reports whether v is HTTP/1.1, the only version under which
// chunked transfer coding and trailers are permitted.
func (v HttpVersion) IsOnePtOne() bool {
	return v.Major == 1 && v.Minor == 1
}

// String renders v as it appears on the wire, e.g. "HTTP/1.1".
func (v HttpVersion) String() string {
	return fmt.Sprintf("HTTP/%d.%d", v.Major, v.Minor)
}

// ParseHttpVersion parses a wire token such as "HTTP/1.1".
func ParseHttpVersion(token string) (HttpVersion, bool) {
	var major, minor int
	n, err := fmt.Sscanf(token, "HTTP/%d.%d", &major, &minor)
	if err != nil || n != 2 {
		return HttpVersion{}, false
	}
	return HttpVersion{major, minor}, true
}
