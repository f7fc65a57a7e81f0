// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"errors"
	"os"
	"os/exec"

	"ccmk-cli/internal/diag"
)

// Run echoes the rendered command line, spawns the first argument as a
// child process with the remaining arguments, and blocks until that
// child terminates. The child inherits the current environment and the
// standard streams.
//
// An empty argument list is fatal; there is no concept of a no-op
// command. Failure to locate or launch the program is fatal with the
// underlying OS error included in the diagnostic. A non-zero exit or a
// signal termination is not fatal here: exactly one Status is returned
// and the caller decides.
func (c *Cmd) Run() Status {
	return c.run()
}

// RunChecked runs the command and aborts the whole process when the
// outcome is anything but Exited(0), naming the rendered command, the
// call site, and the failure detail. A failed toolchain step stops the
// whole run; there is no retry and no partial continuation.
func (c *Cmd) RunChecked() {
	status := c.run()
	if !status.Success() {
		diag.FatalfDepth(1, "command %s failed with %s", c.Render(), status)
	}
}

// run is the shared launch path. Fatal diagnostics report the frame two
// levels up: the caller of Run or RunChecked.
func (c *Cmd) run() Status {
	if len(c.argv) == 0 {
		diag.FatalfDepth(2, "refusing to run an empty command")
	}

	diag.EchoCommand(c.Render())

	cmd := exec.Command(c.argv[0], c.argv[1:]...)
	cmd.Env = os.Environ()
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return Exited(0)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return statusFromProcessState(exitErr.ProcessState)
	}

	// Not an exit status: the program could not be located or spawned.
	diag.FatalfDepth(2, "cannot run %s: %v", c.argv[0], err)
	return Status{} // unreachable; FatalfDepth does not return
}
