// SPDX-License-Identifier: MPL-2.0

package include

import (
	"fmt"
	"sort"
)

const (
	// AngleBracket marks an include written as #include <name>. These are
	// resolved against the search path only, never relative to the
	// including file.
	AngleBracket QuoteKind = iota
	// QuoteRelative marks an include written as #include "name". These
	// are first resolved relative to the including file's directory.
	QuoteRelative
)

type (
	// QuoteKind distinguishes angle-bracket includes from quoted ones.
	QuoteKind int

	// Include is a parsed reference to another file extracted from a
	// #include directive. Spelling is the literal text between the
	// delimiters, untouched (no comment stripping, no path cleaning).
	Include struct {
		Spelling string
		Quote    QuoteKind
	}

	// Set is a duplicate-free collection of Includes for one file,
	// immutable once produced by a scan.
	Set struct {
		members map[Include]struct{}
	}
)

// String returns a human-readable quote kind name.
func (k QuoteKind) String() string {
	switch k {
	case AngleBracket:
		return "angle"
	case QuoteRelative:
		return "quote"
	default:
		return "unknown"
	}
}

// String renders the include the way it was spelled in source.
func (i Include) String() string {
	if i.Quote == QuoteRelative {
		return fmt.Sprintf("%q", i.Spelling)
	}
	return fmt.Sprintf("<%s>", i.Spelling)
}

// Less orders includes by (spelling, quote kind) for deterministic output.
func (i Include) Less(other Include) bool {
	if i.Spelling != other.Spelling {
		return i.Spelling < other.Spelling
	}
	return i.Quote < other.Quote
}

// NewSet builds a Set from the given includes, dropping duplicates.
func NewSet(includes ...Include) *Set {
	s := &Set{members: make(map[Include]struct{}, len(includes))}
	for _, inc := range includes {
		s.members[inc] = struct{}{}
	}
	return s
}

// Len returns the number of distinct includes in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.members)
}

// Contains reports whether the set holds the given include.
func (s *Set) Contains(inc Include) bool {
	if s == nil {
		return false
	}
	_, ok := s.members[inc]
	return ok
}

// Sorted returns the set members ordered by (spelling, quote kind).
func (s *Set) Sorted() []Include {
	if s == nil {
		return nil
	}
	out := make([]Include, 0, len(s.members))
	for inc := range s.members {
		out = append(out, inc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Equal reports whether two sets hold exactly the same includes.
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	if s == nil {
		return true
	}
	for inc := range s.members {
		if !other.Contains(inc) {
			return false
		}
	}
	return true
}
