// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for ccmk.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"ccmk-cli/internal/config"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the effective configuration, loaded once before any
	// command runs.
	cfg = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "ccmk",
		Short: "A minimal build-orchestration core for C/C++ projects",
		Long: TitleStyle.Render("ccmk") + SubtitleStyle.Render(" - A minimal build-orchestration core for C/C++ projects") + `

ccmk extracts #include directives with a single-pass lexical scan,
resolves them against compiler-like search paths, runs toolchain
commands with normalized exit/signal reporting, and keeps single-file
build scripts transparently rebuilt.

` + SubtitleStyle.Render("Examples:") + `
  ccmk scan src/                 Show each file's includes and resolutions
  ccmk scan -I include/ --format table src/
  ccmk exec -- g++ -o tool tool.cc
  ccmk bootstrap make.cc -- all  Rebuild a stale build script, then run it`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/ccmk/config.toml)")

	// Add subcommands
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(bootstrapCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	// Set custom config file path if provided via --config flag
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	loaded, err := config.Load()
	if err != nil {
		// Surface config loading errors but keep running on defaults:
		// a broken config file must not block include scanning.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
	}
	if loaded != nil {
		cfg = loaded
	}

	config.ConfigureLogging(cfg, verbose)
}
