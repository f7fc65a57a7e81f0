// SPDX-License-Identifier: MPL-2.0

// Package resolve maps include directives to concrete files using
// compiler-like search-path semantics. The ordering mirrors GCC's
// documented behavior: a quoted include is tried relative to the
// including file first, then both kinds fall through to the search
// directories in caller-supplied order; first match wins.
//
// An include that matches nothing (system headers, generated headers)
// is an expected outcome, reported as absence rather than an error.
package resolve

import (
	"os"
	"path/filepath"

	"ccmk-cli/internal/include"
)

// Resolve maps one include directive to the canonical path of an
// existing regular file, or reports absence.
//
// Resolution order:
//  1. The spelling interpreted directly as a path, if it names an
//     existing regular file.
//  2. Absolute spellings that did not match in step 1 fail outright;
//     they are never searched.
//  3. For quoted includes, includerDir/spelling.
//  4. Each dir in searchDirs, in order: dir/spelling.
//
// The returned path is always canonical (absolute, symlinks and
// redundant segments resolved) and verified to exist at resolution
// time. Callers depend on first-match-wins to reproduce what an actual
// compiler invocation would see.
func Resolve(inc include.Include, searchDirs []string, includerDir string) (string, bool) {
	if p, ok := canonicalRegularFile(inc.Spelling); ok {
		return p, true
	}

	if filepath.IsAbs(inc.Spelling) {
		return "", false
	}

	if inc.Quote == include.QuoteRelative {
		if p, ok := canonicalRegularFile(filepath.Join(includerDir, inc.Spelling)); ok {
			return p, true
		}
	}

	for _, dir := range searchDirs {
		if p, ok := canonicalRegularFile(filepath.Join(dir, inc.Spelling)); ok {
			return p, true
		}
	}

	return "", false
}

// canonicalRegularFile reports the canonical form of path iff it names
// an existing regular file.
func canonicalRegularFile(path string) (string, bool) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		// The file vanished between Stat and EvalSymlinks; treat it as
		// absent rather than guessing at a textual path.
		return "", false
	}
	return resolved, true
}
