package graph

import "strings"

// Separator joins the segments of an ID.
const Separator = "/"

var (
	escaper   = strings.NewReplacer("%", "%25", Separator, "%2F")
	unescaper = strings.NewReplacer("%2F", Separator, "%25", "%")
)

// ID is an immutable, value-equal, path-like key addressing a vertex.
// The zero value is the empty ID.
type ID struct {
	key string
}

// NewID returns the ID made of the given segments. Separators inside a
// segment are escaped, so Segments returns them unchanged.
func NewID(segments ...string) ID {
	if len(segments) == 0 {
		return ID{}
	}
	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = escaper.Replace(s)
	}
	return ID{key: strings.Join(parts, Separator)}
}

// ParseID returns the ID whose String form is s.
func ParseID(s string) ID {
	return ID{key: s}
}

// IsZero reports whether id is the empty ID.
func (id ID) IsZero() bool { return id.key == "" }

// String returns the escaped, separator-joined form of the ID.
func (id ID) String() string { return id.key }

// Segments returns the unescaped segments of the ID.
func (id ID) Segments() []string {
	if id.key == "" {
		return nil
	}
	parts := strings.Split(id.key, Separator)
	for i, p := range parts {
		parts[i] = unescaper.Replace(p)
	}
	return parts
}

// Len returns the number of segments.
func (id ID) Len() int {
	if id.key == "" {
		return 0
	}
	return strings.Count(id.key, Separator) + 1
}

// Base returns the last segment, or "" for the empty ID.
func (id ID) Base() string {
	if i := strings.LastIndex(id.key, Separator); i >= 0 {
		return unescaper.Replace(id.key[i+1:])
	}
	return unescaper.Replace(id.key)
}

// Child returns the ID extended by one segment.
func (id ID) Child(segment string) ID {
	if id.key == "" {
		return NewID(segment)
	}
	return ID{key: id.key + Separator + escaper.Replace(segment)}
}

// Parent returns the ID without its last segment. It returns false for
// single-segment and empty IDs.
func (id ID) Parent() (ID, bool) {
	i := strings.LastIndex(id.key, Separator)
	if i < 0 {
		return ID{}, false
	}
	return ID{key: id.key[:i]}, true
}

// HasPrefix reports whether prefix equals id or is one of its ancestors,
// comparing whole segments.
func (id ID) HasPrefix(prefix ID) bool {
	if prefix.key == "" || prefix.key == id.key {
		return true
	}
	return strings.HasPrefix(id.key, prefix.key+Separator)
}
