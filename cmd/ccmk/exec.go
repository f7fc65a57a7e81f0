// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"ccmk-cli/internal/runner"

	"github.com/spf13/cobra"
)

var (
	execCheck bool

	execCmd = &cobra.Command{
		Use:   "exec -- <program> [args...]",
		Short: "Run a toolchain command with normalized exit reporting",
		Long: `Runs one external command, echoing the rendered command line as
[CMD] before launch. The child inherits the environment and standard
streams, and ccmk exits with the child's normalized status: its exit
code, or 128 plus the signal number for signal terminations.

With --check, any outcome other than a clean zero exit aborts with a
fatal diagnostic instead of propagating the code.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runExec,
	}
)

func init() {
	execCmd.Flags().BoolVar(&execCheck, "check", false, "abort with a fatal diagnostic on any non-zero outcome")
}

func runExec(_ *cobra.Command, args []string) error {
	invocation := runner.New(args...)

	if execCheck {
		invocation.RunChecked()
		return nil
	}

	status := invocation.Run()
	if status.Success() {
		return nil
	}
	return &ExitError{
		Code: status.Normalized(),
		Err:  fmt.Errorf("command %s failed with %s", invocation.Render(), status),
	}
}
