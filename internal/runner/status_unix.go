// SPDX-License-Identifier: MPL-2.0

//go:build unix

package runner

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// statusFromProcessState converts a terminated child's wait status into
// a Status. os.Process.Wait only reports final terminations; stopped and
// continued notifications are consumed by the runtime, so exactly one
// Status comes out of each wait.
func statusFromProcessState(state *os.ProcessState) Status {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return Signaled(int(ws.Signal()))
	}
	return Exited(state.ExitCode())
}

// signalName resolves a signal number to its conventional name
// (e.g. 11 -> SIGSEGV) for diagnostics.
func signalName(signum int) string {
	if name := unix.SignalName(unix.Signal(signum)); name != "" {
		return fmt.Sprintf("%s (%d)", name, signum)
	}
	return fmt.Sprintf("%d", signum)
}
