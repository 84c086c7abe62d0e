// Package message holds the wire-agnostic HTTP value types: headers, URIs,
// methods, statuses, versions and the Request/Response envelopes built from
// them.
package message

import "strings"

// Header is a single (name, value) pair. Name comparisons are
// case-insensitive everywhere in this package, but the case supplied on
// construction is preserved for serialization.
type Header struct {
	Name  string
	Value string
}

// disallowedFoldName is the one header name that must never be folded into
// a comma-joined value, because multiple Set-Cookie headers are semantically
// distinct cookies, not a list.
const disallowedFoldName = "set-cookie"

func eqFold(a, b string) bool {
	return strings.EqualFold(a, b)
}

// Headers is an ordered multimap of Header. Insertion order of the first
// occurrence of a name is preserved; later additions with the same name
// fold their value into the existing entry (except Set-Cookie, which is
// always appended as a new entry).
type Headers struct {
	pairs []Header
}

// NewHeaders builds a Headers value from a flat list of pairs, applying the
// same fold-on-add rule as Add.
func NewHeaders(pairs ...Header) Headers {
	var h Headers
	for _, p := range pairs {
		h = h.Add(p.Name, p.Value)
	}
	return h
}

// Add appends a value for name, folding it (", "-joined) into an existing
// entry with the same name unless name is Set-Cookie.
func (h Headers) Add(name, value string) Headers {
	if !eqFold(name, disallowedFoldName) {
		for i := range h.pairs {
			if eqFold(h.pairs[i].Name, name) {
				pairs := append([]Header(nil), h.pairs...)
				pairs[i].Value = pairs[i].Value + ", " + value
				return Headers{pairs: pairs}
			}
		}
	}
	h.pairs = append(h.pairs[:len(h.pairs):len(h.pairs)], Header{Name: name, Value: value})
	return h
}

// AddAll merges other into h. Conflicting names fold together, with other's
// values folded in after h's own (other "wins" in the sense that it is
// applied last and therefore appears last in the folded value).
func (h Headers) AddAll(other Headers) Headers {
	out := h
	for _, p := range other.pairs {
		out = out.Add(p.Name, p.Value)
	}
	return out
}

// Replace substitutes the value of the first entry matching name in place,
// or appends a new entry if name is absent.
func (h Headers) Replace(name, value string) Headers {
	for i := range h.pairs {
		if eqFold(h.pairs[i].Name, name) {
			pairs := append([]Header(nil), h.pairs...)
			pairs[i].Value = value
			return Headers{pairs: pairs}
		}
	}
	out := h
	out.pairs = append(out.pairs[:len(out.pairs):len(out.pairs)], Header{Name: name, Value: value})
	return out
}

// Remove drops every entry matching name, case-insensitively.
func (h Headers) Remove(name string) Headers {
	out := Headers{pairs: make([]Header, 0, len(h.pairs))}
	for _, p := range h.pairs {
		if !eqFold(p.Name, name) {
			out.pairs = append(out.pairs, p)
		}
	}
	return out
}

// Get returns the value of the first entry matching name and whether it was
// found.
func (h Headers) Get(name string) (string, bool) {
	for _, p := range h.pairs {
		if eqFold(p.Name, name) {
			return p.Value, true
		}
	}
	return "", false
}

// GetOr returns Get's value or def if name is absent.
func (h Headers) GetOr(name, def string) string {
	if v, ok := h.Get(name); ok {
		return v
	}
	return def
}

// Has reports whether name is present.
func (h Headers) Has(name string) bool {
	_, ok := h.Get(name)
	return ok
}

// Filter returns the subset of h whose names are in names, preserving order.
func (h Headers) Filter(names ...string) Headers {
	out := Headers{pairs: make([]Header, 0, len(h.pairs))}
	for _, p := range h.pairs {
		for _, n := range names {
			if eqFold(p.Name, n) {
				out.pairs = append(out.pairs, p)
				break
			}
		}
	}
	return out
}

// IsEmpty reports whether h has no entries.
func (h Headers) IsEmpty() bool {
	return len(h.pairs) == 0
}

// Len returns the number of entries.
func (h Headers) Len() int {
	return len(h.pairs)
}

// All returns the underlying pairs in insertion order. Callers must not
// mutate the returned slice.
func (h Headers) All() []Header {
	return h.pairs
}

// ParseHeaders parses a "\r\n"-separated header block (with the terminating
// blank line already stripped by the caller). Each line splits at its first
// ':'; one space after the colon, if present, is dropped from the value.
func ParseHeaders(block string) (Headers, error) {
	var h Headers
	if block == "" {
		return h, nil
	}
	lines := strings.Split(block, "\r\n")
	for _, line := range lines {
		if line == "" {
			continue
		}
		idx := strings.Index(line, ":")
		if idx <= 0 {
			return Headers{}, &MalformedHeaderError{Line: line}
		}
		name := line[:idx]
		value := line[idx+1:]
		value = strings.TrimPrefix(value, " ")
		h = h.Add(name, value)
	}
	return h, nil
}

// MalformedHeaderError reports a header line with no ':' separator or an
// empty name.
type MalformedHeaderError struct {
	Line string
}

func (e *MalformedHeaderError) Error() string {
	return "message: malformed header line: " + e.Line
}

// ToWireString serializes h as "\r\n"-joined "name: value" lines, with no
// trailing terminator.
func (h Headers) ToWireString() string {
	var b strings.Builder
	for i, p := range h.pairs {
		if i > 0 {
			b.WriteString("\r\n")
		}
		b.WriteString(p.Name)
		b.WriteString(": ")
		b.WriteString(p.Value)
	}
	return b.String()
}
