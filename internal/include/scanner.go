// SPDX-License-Identifier: MPL-2.0

package include

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strings"
)

// scanState is one position in the per-line directive recognizer.
// The recognizer restarts from awaitHash at the beginning of every
// physical line; directives split across lines via continuations are
// not recognized.
type scanState int

const (
	awaitHash scanState = iota
	awaitInclude
	awaitOpening
	awaitClosingQuote
	awaitClosingAngle
)

// directiveToken is the literal keyword expected after '#'.
const directiveToken = "include"

// linear whitespace only; a newline never reaches ScanLine.
const lineSpace = " \t"

// ScanLine runs the directive recognizer over a single line and returns
// the first include found on it, if any. At most one include is
// recognized per line. A line that never reaches a closing delimiter
// yields nothing; that is not an error.
//
// Text between the delimiters is taken literally: trailing comments
// after the closing delimiter are ignored by construction, and comment
// characters before it become part of the spelling.
func ScanLine(line string) (Include, bool) {
	var (
		state   = awaitHash
		quote   QuoteKind
		closing byte
		rest    = line
	)

	for {
		switch state {
		case awaitHash:
			rest = strings.TrimLeft(rest, lineSpace)
			if rest == "" || rest[0] != '#' {
				return Include{}, false
			}
			rest = rest[1:]
			state = awaitInclude

		case awaitInclude:
			rest = strings.TrimLeft(rest, lineSpace)
			if !strings.HasPrefix(rest, directiveToken) {
				return Include{}, false
			}
			rest = rest[len(directiveToken):]
			state = awaitOpening

		case awaitOpening:
			rest = strings.TrimLeft(rest, lineSpace)
			if rest == "" {
				return Include{}, false
			}
			switch rest[0] {
			case '"', '\'':
				quote, closing, state = QuoteRelative, '"', awaitClosingQuote
			case '<':
				quote, closing, state = AngleBracket, '>', awaitClosingAngle
			default:
				return Include{}, false
			}
			rest = rest[1:]

		case awaitClosingQuote, awaitClosingAngle:
			i := strings.IndexByte(rest, closing)
			if i < 0 {
				return Include{}, false
			}
			return Include{Spelling: rest[:i], Quote: quote}, true
		}
	}
}

// ScanReader extracts the include set from source text, one line at a
// time. Scanning the same content twice yields equal sets.
func ScanReader(r io.Reader) (*Set, error) {
	s := NewSet()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if inc, ok := ScanLine(scanner.Text()); ok {
			s.members[inc] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// ScanFile extracts the include set from the file at path. A missing or
// unreadable file yields an empty set rather than an error; build
// dependency extraction treats unreadable inputs as having no includes.
func ScanFile(path string) *Set {
	f, err := os.Open(path)
	if err != nil {
		slog.Debug("include scan skipped unreadable file", "path", path, "error", err)
		return NewSet()
	}
	defer f.Close()

	s, err := ScanReader(f)
	if err != nil {
		slog.Debug("include scan aborted mid-file", "path", path, "error", err)
		return NewSet()
	}
	return s
}
