// SPDX-License-Identifier: MPL-2.0

package include

import "testing"

func TestIncludeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		inc  Include
		want string
	}{
		{name: "quoted", inc: Include{Spelling: "foo.h", Quote: QuoteRelative}, want: `"foo.h"`},
		{name: "angle", inc: Include{Spelling: "vector", Quote: AngleBracket}, want: "<vector>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.inc.String(); got != tt.want {
				t.Errorf("Include.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIncludeLessOrdersBySpellingThenQuote(t *testing.T) {
	t.Parallel()

	a := Include{Spelling: "a.h", Quote: QuoteRelative}
	b := Include{Spelling: "b.h", Quote: AngleBracket}
	if !a.Less(b) {
		t.Error("spelling should dominate ordering")
	}

	angle := Include{Spelling: "same.h", Quote: AngleBracket}
	quoted := Include{Spelling: "same.h", Quote: QuoteRelative}
	if !angle.Less(quoted) {
		t.Error("angle sorts before quoted for equal spellings")
	}
	if quoted.Less(angle) {
		t.Error("ordering must be antisymmetric")
	}
}

func TestSetMembership(t *testing.T) {
	t.Parallel()

	s := NewSet(
		Include{Spelling: "foo.h", Quote: QuoteRelative},
		Include{Spelling: "foo.h", Quote: QuoteRelative},
		Include{Spelling: "foo.h", Quote: AngleBracket},
	)

	if s.Len() != 2 {
		t.Fatalf("Set.Len() = %d, want 2 (same spelling, distinct quote kinds)", s.Len())
	}
	if !s.Contains(Include{Spelling: "foo.h", Quote: AngleBracket}) {
		t.Error("Contains() = false for member")
	}
	if s.Contains(Include{Spelling: "bar.h", Quote: AngleBracket}) {
		t.Error("Contains() = true for non-member")
	}
}

func TestSetEqual(t *testing.T) {
	t.Parallel()

	a := NewSet(Include{Spelling: "x.h", Quote: AngleBracket})
	b := NewSet(Include{Spelling: "x.h", Quote: AngleBracket})
	c := NewSet(Include{Spelling: "x.h", Quote: QuoteRelative})

	if !a.Equal(b) {
		t.Error("identical sets compare unequal")
	}
	if a.Equal(c) {
		t.Error("sets differing in quote kind compare equal")
	}
}
