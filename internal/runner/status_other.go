// SPDX-License-Identifier: MPL-2.0

//go:build !unix

package runner

import (
	"fmt"
	"os"
)

// statusFromProcessState converts a terminated child's state into a
// Status. Non-unix platforms have no signal terminations to report, so
// every outcome is a plain exit code.
func statusFromProcessState(state *os.ProcessState) Status {
	return Exited(state.ExitCode())
}

func signalName(signum int) string {
	return fmt.Sprintf("%d", signum)
}
