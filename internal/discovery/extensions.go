// SPDX-License-Identifier: MPL-2.0

package discovery

// ExtensionSet is the set of file extensions (leading dot included) a
// walk considers source files. Membership comparison is exact.
type ExtensionSet map[string]struct{}

// NewExtensionSet builds an ExtensionSet from literal extensions.
func NewExtensionSet(exts ...string) ExtensionSet {
	s := make(ExtensionSet, len(exts))
	for _, e := range exts {
		s[e] = struct{}{}
	}
	return s
}

// Contains reports whether ext (with leading dot) is in the set.
func (s ExtensionSet) Contains(ext string) bool {
	_, ok := s[ext]
	return ok
}

// Extension sets for the C/C++ family. Header/implementation splits let
// callers scan only the files a compiler would actually be handed.
var (
	CPPImplementation = NewExtensionSet(".cc", ".cpp", ".cxx")
	CPPHeader         = NewExtensionSet(".h", ".hh", ".hpp", ".hxx")
	CPP               = NewExtensionSet(".cc", ".cpp", ".cxx", ".h", ".hh", ".hpp", ".hxx")

	CImplementation = NewExtensionSet(".c")
	CHeader         = NewExtensionSet(".h")
	C               = NewExtensionSet(".c", ".h")
)

// ExtensionsFor selects one of the predefined sets by language ("cpp" or
// "c") and kind ("all", "header", "impl"). Unknown values report false.
func ExtensionsFor(lang, kind string) (ExtensionSet, bool) {
	switch lang {
	case "cpp":
		switch kind {
		case "all":
			return CPP, true
		case "header":
			return CPPHeader, true
		case "impl":
			return CPPImplementation, true
		}
	case "c":
		switch kind {
		case "all":
			return C, true
		case "header":
			return CHeader, true
		case "impl":
			return CImplementation, true
		}
	}
	return nil, false
}
