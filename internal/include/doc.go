// SPDX-License-Identifier: MPL-2.0

// Package include extracts #include directives from C/C++-family source
// text with a single-pass lexical scan.
//
// The recognizer is deliberately not a preprocessor: there is no macro
// expansion, no #if evaluation, no comment stripping, and no line
// continuation support. Each physical line is scanned independently by a
// five-state machine (hash, keyword, opening delimiter, closing quote,
// closing angle) that emits at most one Include per line.
//
// File organization:
//   - include.go: Include, QuoteKind, and the Set container
//   - scanner.go: the per-line state machine and file/reader entry points
package include
