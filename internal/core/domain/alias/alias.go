/*
Package alias defines the core domain entity for an alias.
*/
package alias

import (
	"strings"
	"unicode"
)

/*
Alias is a user-defined shorthand: a unique, non-empty name mapped to the
literal expansion text it stands for. The expansion may carry a leading
command token followed by fixed argument text.
*/
type Alias struct {
	Command string `yaml:"command"`
	Name    string `yaml:"alias"`
}

// Mapping is the persisted name -> expansion table.
type Mapping map[string]string

// Clone returns a shallow copy of the mapping. A nil mapping clones to an empty one.
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	for name, expansion := range m {
		out[name] = expansion
	}
	return out
}

// Has reports whether name is a defined alias.
func (m Mapping) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// IsSeparator reports whether r separates words in an expansion: any Unicode
// white space plus the ASCII file, group, record and unit separators.
func IsSeparator(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Words splits an expansion into its literal words. Quotes, variables and
// globs carry no meaning.
func Words(expansion string) []string {
	return strings.FieldsFunc(expansion, IsSeparator)
}
