// SPDX-License-Identifier: MPL-2.0

// Package toolchain models the compiler identity and builds toolchain
// invocations. The identity is decided once at startup (explicit
// configuration wins, then PATH probing, then the POSIX fallback) and
// passed around explicitly; nothing re-evaluates it per call.
package toolchain

import (
	"os/exec"
	"path/filepath"
	"strings"

	"ccmk-cli/internal/runner"
)

const (
	// GCC identifies the GNU C++ compiler family (g++).
	GCC Compiler = "gcc"
	// Clang identifies the LLVM C++ compiler family (clang++).
	Clang Compiler = "clang"
	// Other covers any compiler reachable through the POSIX c++ name.
	Other Compiler = "other"

	// DefaultStandardFlag is the fixed language-standard flag applied to
	// every compile unless overridden in configuration.
	DefaultStandardFlag = "-std=c++20"

	binGCC   = "g++"
	binClang = "clang++"
	binPOSIX = "c++"
)

//nolint:gochecknoglobals // Test seam for exec.LookPath.
var lookPath = exec.LookPath

type (
	// Compiler is the enumerated compiler identity.
	Compiler string

	// Toolchain is one concrete compiler selection: the identity, the
	// binary to invoke, the language-standard flag, and extra flags.
	Toolchain struct {
		Compiler     Compiler
		Binary       string
		StandardFlag string
		ExtraFlags   []string
	}
)

// String returns the compiler identity name.
func (c Compiler) String() string { return string(c) }

// Detect chooses the active toolchain once at startup. A non-empty
// binary override (from configuration or the CCMK_CXX environment
// variable) wins and is classified by its base name; otherwise the
// PATH is probed for g++ then clang++, falling back to the POSIX c++
// name with identity Other.
func Detect(binaryOverride string) Toolchain {
	if binaryOverride != "" {
		return Toolchain{
			Compiler:     Classify(binaryOverride),
			Binary:       binaryOverride,
			StandardFlag: DefaultStandardFlag,
		}
	}

	if _, err := lookPath(binGCC); err == nil {
		return Toolchain{Compiler: GCC, Binary: binGCC, StandardFlag: DefaultStandardFlag}
	}
	if _, err := lookPath(binClang); err == nil {
		return Toolchain{Compiler: Clang, Binary: binClang, StandardFlag: DefaultStandardFlag}
	}
	return Toolchain{Compiler: Other, Binary: binPOSIX, StandardFlag: DefaultStandardFlag}
}

// Classify maps a compiler binary name to its identity. Classification
// looks at the base name only, so /usr/local/bin/clang++-17 is Clang.
func Classify(binary string) Compiler {
	base := strings.TrimSuffix(filepath.Base(binary), ".exe")
	switch {
	case strings.Contains(base, "clang"):
		return Clang
	case strings.Contains(base, "g++") || strings.Contains(base, "gcc"):
		return GCC
	default:
		return Other
	}
}

// SplitFlags splits an environment-supplied flag string into arguments
// on runs of whitespace. There is no quoting or escaping support: this
// literal split is the contract for CCMK_CXXFLAGS and any caller
// populating it must respect it.
func SplitFlags(value string) []string {
	return strings.Fields(value)
}

// CompileCommand builds the invocation that compiles source into the
// executable at output: binary, standard flag, extra flags, then
// -o output source.
func (tc Toolchain) CompileCommand(source, output string) *runner.Cmd {
	cmd := runner.New(tc.Binary, tc.StandardFlag)
	cmd.AppendList(tc.ExtraFlags)
	cmd.Append("-o", output, source)
	return cmd
}
