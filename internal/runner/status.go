// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"fmt"

	"ccmk-cli/pkg/types"
)

// signalExitBase is added to a signal number when folding signal
// terminations into the exit-code domain, matching shell convention.
const signalExitBase = 128

type (
	statusKind int

	// Status is the normalized outcome of one process execution: either
	// a normal exit with a code, or termination by a signal. Exactly one
	// Status is produced per Run invocation.
	Status struct {
		kind statusKind
		code int
	}
)

const (
	statusExited statusKind = iota
	statusSignaled
)

// Exited builds a Status for a normal termination with the given code.
func Exited(code int) Status {
	return Status{kind: statusExited, code: code}
}

// Signaled builds a Status for a termination by the given signal number.
func Signaled(signum int) Status {
	return Status{kind: statusSignaled, code: signum}
}

// ExitCode returns the exit code and true for a normal termination.
func (s Status) ExitCode() (int, bool) {
	return s.code, s.kind == statusExited
}

// Signal returns the signal number and true for a signal termination.
func (s Status) Signal() (int, bool) {
	return s.code, s.kind == statusSignaled
}

// Normalized folds the Status into the single exit-code domain:
// Exited(n) maps to n and Signaled(s) maps to 128+s. This mapping is
// used both for reporting child exit codes and for deciding success.
func (s Status) Normalized() types.ExitCode {
	if s.kind == statusSignaled {
		return types.ExitCode(signalExitBase + s.code)
	}
	return types.ExitCode(s.code)
}

// Success reports whether the Status is Exited(0), the only success case.
func (s Status) Success() bool {
	return s.kind == statusExited && s.code == 0
}

// String describes the outcome for diagnostics: the numeric exit code
// for normal terminations, the signal name for signal terminations.
func (s Status) String() string {
	if s.kind == statusSignaled {
		return fmt.Sprintf("signal %s", signalName(s.code))
	}
	return fmt.Sprintf("exit code %d", s.code)
}
