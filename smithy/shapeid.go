package smithy

import (
	"fmt"
	"strings"
)

// ShapeID is the namespace-qualified identifier of a shape, optionally
// narrowed to a single member. It is the sole cross-reference mechanism in a
// model: shapes never hold pointers to one another, only ShapeIDs.
//
// The textual form is "namespace#Name" for a shape and "namespace#Name$member"
// for a member, e.g. "example.weather#GetForecastInput$cityId".
type ShapeID struct {
	// Namespace is the dotted namespace, e.g. "example.weather" or "smithy.api".
	Namespace string
	// Name is the shape's simple name within its namespace.
	Name string
	// Member is the member name, empty for non-member IDs.
	Member string
}

// ParseShapeID parses the textual form of a shape ID.
// It returns an error when the namespace or name is missing.
func ParseShapeID(s string) (ShapeID, error) {
	var id ShapeID
	hash := strings.Index(s, "#")
	if hash <= 0 || hash == len(s)-1 {
		return id, fmt.Errorf("invalid shape ID %q: expected namespace#Name", s)
	}
	id.Namespace = s[:hash]
	rest := s[hash+1:]
	if dollar := strings.Index(rest, "$"); dollar >= 0 {
		if dollar == 0 || dollar == len(rest)-1 {
			return ShapeID{}, fmt.Errorf("invalid shape ID %q: malformed member suffix", s)
		}
		id.Name = rest[:dollar]
		id.Member = rest[dollar+1:]
	} else {
		id.Name = rest
	}
	return id, nil
}

// MustParseShapeID is like ParseShapeID but panics on error.
// Intended for package-level variables and tests.
func MustParseShapeID(s string) ShapeID {
	id, err := ParseShapeID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the canonical textual form of the ID.
func (id ShapeID) String() string {
	var sb strings.Builder
	sb.WriteString(id.Namespace)
	sb.WriteByte('#')
	sb.WriteString(id.Name)
	if id.Member != "" {
		sb.WriteByte('$')
		sb.WriteString(id.Member)
	}
	return sb.String()
}

// Defined returns true when the ID has both a namespace and a name.
func (id ShapeID) Defined() bool {
	return id.Namespace != "" && id.Name != ""
}

// IsMember returns true when the ID refers to a shape member.
func (id ShapeID) IsMember() bool {
	return id.Member != ""
}

// WithMember returns a copy of the ID narrowed to the named member.
func (id ShapeID) WithMember(member string) ShapeID {
	id.Member = member
	return id
}

// WithoutMember returns the containing shape's ID.
func (id ShapeID) WithoutMember() ShapeID {
	id.Member = ""
	return id
}
