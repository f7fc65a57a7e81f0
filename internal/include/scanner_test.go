// SPDX-License-Identifier: MPL-2.0

package include

import (
	"strings"
	"testing"
)

func TestScanLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want Include
		ok   bool
	}{
		{
			name: "quoted include",
			line: `#include "foo.h"`,
			want: Include{Spelling: "foo.h", Quote: QuoteRelative},
			ok:   true,
		},
		{
			name: "angle include",
			line: `#include <vector>`,
			want: Include{Spelling: "vector", Quote: AngleBracket},
			ok:   true,
		},
		{
			name: "extra whitespace everywhere",
			line: "  \t#  include\t <bar.h>",
			want: Include{Spelling: "bar.h", Quote: AngleBracket},
			ok:   true,
		},
		{
			name: "trailing comment after closing delimiter",
			line: `#include <x.h> // trailing comment`,
			want: Include{Spelling: "x.h", Quote: AngleBracket},
			ok:   true,
		},
		{
			name: "comment characters inside delimiters are literal",
			line: `#include "a//b.h"`,
			want: Include{Spelling: "a//b.h", Quote: QuoteRelative},
			ok:   true,
		},
		{
			name: "hash not first non-whitespace",
			line: `int x; #include "foo.h"`,
			ok:   false,
		},
		{
			name: "other directive",
			line: `#pragma once`,
			ok:   false,
		},
		{
			name: "missing closing quote",
			line: `#include "unterminated.h`,
			ok:   false,
		},
		{
			name: "missing closing angle",
			line: `#include <unterminated.h`,
			ok:   false,
		},
		{
			name: "mismatched closing delimiter",
			line: `#include <confused.h"`,
			ok:   false,
		},
		{
			name: "empty line",
			line: "",
			ok:   false,
		},
		{
			name: "bare hash",
			line: "#",
			ok:   false,
		},
		{
			name: "include keyword without delimiter",
			line: "#include",
			ok:   false,
		},
		{
			name: "empty spelling",
			line: `#include ""`,
			want: Include{Spelling: "", Quote: QuoteRelative},
			ok:   true,
		},
		{
			name: "only first include on line",
			line: `#include "first.h" #include "second.h"`,
			want: Include{Spelling: "first.h", Quote: QuoteRelative},
			ok:   true,
		},
		{
			// A single-quote opener pairs with a double-quote closer and
			// counts as a quoted include.
			name: "single quote opener",
			line: `#include 'odd.h"`,
			want: Include{Spelling: "odd.h", Quote: QuoteRelative},
			ok:   true,
		},
		{
			name: "no space between keyword and delimiter",
			line: `#include<cstdio>`,
			want: Include{Spelling: "cstdio", Quote: AngleBracket},
			ok:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ScanLine(tt.line)
			if ok != tt.ok {
				t.Fatalf("ScanLine(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ScanLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestScanReaderDeduplicates(t *testing.T) {
	t.Parallel()

	src := strings.Join([]string{
		`#include "foo.h"`,
		`#include <vector>`,
		`#include "foo.h"`,
		`#include <vector>`,
		`int main() { return 0; }`,
	}, "\n")

	got, err := ScanReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ScanReader() error = %v", err)
	}
	if got.Len() != 2 {
		t.Fatalf("ScanReader() len = %d, want 2", got.Len())
	}

	want := NewSet(
		Include{Spelling: "foo.h", Quote: QuoteRelative},
		Include{Spelling: "vector", Quote: AngleBracket},
	)
	if !got.Equal(want) {
		t.Errorf("ScanReader() = %v, want %v", got.Sorted(), want.Sorted())
	}
}

func TestScanReaderIsDeterministic(t *testing.T) {
	t.Parallel()

	src := "#include <b.h>\n#include <a.h>\n#include \"a.h\"\n"

	first, err := ScanReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ScanReader() error = %v", err)
	}
	second, err := ScanReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ScanReader() error = %v", err)
	}

	if !first.Equal(second) {
		t.Errorf("scanning identical content twice: %v != %v", first.Sorted(), second.Sorted())
	}

	sorted := first.Sorted()
	for i := 1; i < len(sorted); i++ {
		if !sorted[i-1].Less(sorted[i]) {
			t.Errorf("Sorted() not strictly ordered at %d: %v", i, sorted)
		}
	}
}

func TestScanReaderNoMultilineDirectives(t *testing.T) {
	t.Parallel()

	// A continuation-split directive never reaches a closing delimiter on
	// a single line, so nothing is emitted.
	src := "#include \\\n\"split.h\"\n"

	got, err := ScanReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ScanReader() error = %v", err)
	}
	if got.Len() != 0 {
		t.Errorf("ScanReader() = %v, want empty set", got.Sorted())
	}
}

func TestScanFileMissingFileYieldsEmptySet(t *testing.T) {
	t.Parallel()

	got := ScanFile("/nonexistent/definitely/missing.cc")
	if got.Len() != 0 {
		t.Errorf("ScanFile(missing) len = %d, want 0", got.Len())
	}
}
