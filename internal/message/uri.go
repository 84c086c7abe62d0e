package message

import (
	"regexp"
	"strings"
)

// uriPattern is the RFC 3986 Appendix B reference regex for splitting a URI
// reference into its five components.
var uriPattern = regexp.MustCompile(`^(?:([^:/?#]+):)?(?://([^/?#]*))?([^?#]*)(?:\?([^#]*))?(?:#(.*))?$`)

// URI holds the five optional RFC 3986 components of a URI reference. Path
// is the only component that is always present (it may be empty, but it is
// never absent); the others are present-or-absent, modeled as pointers so
// "absent" and "empty string" are distinguishable.
type URI struct {
	Scheme    *string
	Authority *string
	Path      string
	Query     *string
	Fragment  *string
}

func strPtr(s string) *string { return &s }

// ParseURI parses s using the standard RFC 3986 reference regex. The regex
// always matches (it has no required groups), so this never fails.
func ParseURI(s string) URI {
	m := uriPattern.FindStringSubmatch(s)
	u := URI{Path: m[3]}
	if m[1] != "" {
		u.Scheme = strPtr(m[1])
	}
	// authority can legitimately be empty ("scheme://") so we check whether
	// the "//" prefix was present in the original string by checking if
	// group 2 is distinguishable: regexp gives "" for both "no match" and
	// "matched empty string", so we look for "//" following the scheme.
	if hasAuthorityMarker(s, m[1]) {
		u.Authority = strPtr(m[2])
	}
	if strings.Contains(s, "?") {
		u.Query = strPtr(m[4])
	}
	if strings.Contains(s, "#") {
		u.Fragment = strPtr(m[5])
	}
	return u
}

func hasAuthorityMarker(s, scheme string) bool {
	rest := s
	if scheme != "" {
		rest = strings.TrimPrefix(s, scheme+":")
	}
	return strings.HasPrefix(rest, "//")
}

// WithScheme returns a copy of u with Scheme set.
func (u URI) WithScheme(scheme string) URI {
	u.Scheme = strPtr(scheme)
	return u
}

// WithAuthority returns a copy of u with Authority set.
func (u URI) WithAuthority(authority string) URI {
	u.Authority = strPtr(authority)
	return u
}

// WithPath returns a copy of u with Path set.
func (u URI) WithPath(path string) URI {
	u.Path = path
	return u
}

// WithQuery returns a copy of u with Query set.
func (u URI) WithQuery(query string) URI {
	u.Query = strPtr(query)
	return u
}

// WithFragment returns a copy of u with Fragment set.
func (u URI) WithFragment(fragment string) URI {
	u.Fragment = strPtr(fragment)
	return u
}

// String reassembles u in canonical order, emitting delimiters only for
// components that are present.
func (u URI) String() string {
	var b strings.Builder
	if u.Scheme != nil {
		b.WriteString(*u.Scheme)
		b.WriteByte(':')
	}
	if u.Authority != nil {
		b.WriteString("//")
		b.WriteString(*u.Authority)
	}
	b.WriteString(u.Path)
	if u.Query != nil {
		b.WriteByte('?')
		b.WriteString(*u.Query)
	}
	if u.Fragment != nil {
		b.WriteByte('#')
		b.WriteString(*u.Fragment)
	}
	return b.String()
}
