// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"

	"ccmk-cli/internal/include"
)

// FileIncludeMap maps a canonical absolute file path to the include set
// scanned from that file. It is built once per walk and read-only
// thereafter.
type FileIncludeMap map[string]*include.Set

// SortedPaths returns the map keys in lexical order for deterministic
// iteration.
func (m FileIncludeMap) SortedPaths() []string {
	paths := make([]string, 0, len(m))
	for p := range m {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Walk recursively enumerates regular files under root whose extension
// is a member of exts and scans each for include directives.
//
// Canonicalization failure is deliberately fatal to the walk: the walk
// assumes a stable directory snapshot, and a root that does not exist
// or a file that vanishes mid-walk is surfaced as an error instead of
// being silently skipped.
func Walk(root string, exts ExtensionSet) (FileIncludeMap, error) {
	result := make(FileIncludeMap)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walking %s: %w", path, err)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !exts.Contains(filepath.Ext(path)) {
			return nil
		}

		canonical, err := canonicalize(path)
		if err != nil {
			return fmt.Errorf("canonicalizing %s: %w", path, err)
		}

		set := include.ScanFile(path)
		result[canonical] = set
		slog.Debug("scanned source file", "path", canonical, "includes", set.Len())
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// canonicalize resolves path to an absolute path with symlinks and
// redundant segments removed.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
