// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"ccmk-cli/internal/bootstrap"
	"ccmk-cli/internal/runner"
	"ccmk-cli/internal/toolchain"

	"github.com/spf13/cobra"
)

var (
	bootstrapOutput string

	bootstrapCmd = &cobra.Command{
		Use:   "bootstrap <script> [-- args...]",
		Short: "Rebuild a stale single-file build script, then run it",
		Long: `Treats <script> as a single-file C++ build script whose compiled
binary sits next to it (the script path minus its extension, or
--output). When the script's modification time strictly exceeds the
binary's, the binary is backed up to a .old sibling, recompiled with
the active toolchain, and the fresh binary is launched with the
trailing arguments; ccmk then exits with its normalized status. A
fresh binary skips the rebuild entirely and is launched directly.

The active toolchain is chosen once at startup: the configured
compiler (or CCMK_CXX) wins, else g++ then clang++ from the PATH,
else the POSIX c++ name.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runBootstrap,
	}
)

func init() {
	bootstrapCmd.Flags().StringVarP(&bootstrapOutput, "output", "o", "", "binary path (default: script path without extension)")
}

func runBootstrap(_ *cobra.Command, args []string) error {
	script := args[0]
	childArgs := args[1:]

	binary := bootstrapOutput
	if binary == "" {
		derived, ok := defaultBinaryPath(script)
		if !ok {
			return fmt.Errorf("script %s has no extension; use --output to name the binary", script)
		}
		binary = derived
	}

	tc := toolchain.Detect(cfg.Compiler)
	if cfg.StandardFlag != "" {
		tc.StandardFlag = cfg.StandardFlag
	}
	tc.ExtraFlags = cfg.ExtraFlags

	ctl := &bootstrap.Controller{
		SourcePath: script,
		BinaryPath: binary,
		Toolchain:  tc,
		Args:       childArgs,
	}

	// Stale: Ensure rebuilds, relaunches, and exits with the child's
	// code — it only returns on the fresh path or on a staleness error.
	if err := ctl.Ensure(); err != nil {
		return err
	}

	launch := runner.New(binary)
	launch.AppendList(childArgs)
	status := launch.Run()
	if status.Success() {
		return nil
	}
	return &ExitError{
		Code: status.Normalized(),
		Err:  fmt.Errorf("%s failed with %s", binary, status),
	}
}

// defaultBinaryPath derives the compiled binary's path from the script
// path by stripping the extension. A script with no extension cannot be
// derived: the binary would shadow the script itself.
func defaultBinaryPath(script string) (string, bool) {
	binary := strings.TrimSuffix(script, filepath.Ext(script))
	if binary == script || binary == "" {
		return "", false
	}
	return binary, true
}
