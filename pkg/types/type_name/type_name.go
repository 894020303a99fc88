package type_name

import (
	"strings"

	"github.com/vphpersson/type_description/internal/generic_name"
)

// TypeName is a formatted type name broken into its root name and its ordered
// top-level generic parameters. The zero value represents the empty name.
type TypeName struct {
	Raw        string
	Root       string
	Parameters []string
}

func New(raw string) TypeName {
	root, parameters := generic_name.Parse(raw)
	return TypeName{Raw: raw, Root: root, Parameters: parameters}
}

func (t TypeName) String() string {
	return t.Raw
}

// HasGenericMarker reports whether the raw name contains generic notation at
// all. A name like "Foo<>" carries the marker even though parsing it yields no
// parameters.
func (t TypeName) HasGenericMarker() bool {
	return strings.Contains(t.Raw, "<")
}

// IsParameterized reports whether parsing produced any top-level parameters.
func (t TypeName) IsParameterized() bool {
	return len(t.Parameters) > 0
}
