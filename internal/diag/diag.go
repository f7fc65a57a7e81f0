// SPDX-License-Identifier: MPL-2.0

// Package diag owns the plain-text diagnostic contract of the tool:
// every executed command is echoed as "[CMD] <rendered argv>" before
// launch, and fatal faults print "[ERROR] at <source location>:
// <message>" before aborting the process.
//
// These lines are a stable output contract consumed by humans and
// wrapper scripts alike, so they bypass the structured logger and go
// straight to stderr.
package diag

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

var (
	//nolint:gochecknoglobals // Test seam for diagnostic output.
	Output io.Writer = os.Stderr

	//nolint:gochecknoglobals // Test seam for os.Exit.
	osExit = os.Exit
)

// EchoCommand prints the rendered command line in the "[CMD] ..." form.
func EchoCommand(rendered string) {
	fmt.Fprintf(Output, "[CMD] %s\n", rendered)
}

// Fatalf prints a fatal diagnostic naming the immediate caller's source
// location and aborts the process with exit code 1. There is no retry
// and no partial continuation; a build tool must never silently ignore
// a failed toolchain step.
func Fatalf(format string, args ...any) {
	FatalfDepth(1, format, args...)
}

// FatalfDepth is Fatalf with explicit caller-frame skipping, for
// helpers that abort on behalf of their caller and want the caller's
// location in the diagnostic. skip counts frames above FatalfDepth's
// caller: 0 behaves like Fatalf.
func FatalfDepth(skip int, format string, args ...any) {
	fmt.Fprintf(Output, "[ERROR] at %s: %s\n", CallSite(skip+2), fmt.Sprintf(format, args...))
	osExit(1)
}

// CallSite reports "file:line" for the stack frame skip levels above
// the caller, with the file shortened to its base name. It returns
// "unknown" when the stack cannot be resolved.
func CallSite(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
