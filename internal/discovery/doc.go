// SPDX-License-Identifier: MPL-2.0

// Package discovery enumerates C/C++ source trees and builds the
// per-file include map that feeds dependency resolution.
//
// This package intentionally combines two related concerns:
//   - File discovery: recursive enumeration filtered by extension sets
//   - Include extraction: running the include scanner over each match
//
// These concerns are tightly coupled because the map key (the canonical
// path) and the map value (the scanned include set) are produced in the
// same traversal. Splitting them would force a second pass over the tree.
//
// File organization:
//   - extensions.go: ExtensionSet and the predefined C/C++ family sets
//   - walker.go: Walk, FileIncludeMap, path canonicalization
package discovery
