// SPDX-License-Identifier: MPL-2.0

// Package bootstrap detects a stale compiled build script and
// transparently recompiles and relaunches it.
//
// The decision is made once per process start and is monotone: a
// rebuild fires only when the source's modification time strictly
// exceeds the binary's, so a successful rebuild (which bumps the binary
// mtime past the source) cannot loop as long as mtimes are well-ordered.
package bootstrap

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"ccmk-cli/internal/runner"
	"ccmk-cli/internal/toolchain"
)

// BackupSuffix is appended to the binary path for the pre-rebuild
// backup copy. The backup is overwritten on every rebuild and never
// read back programmatically.
const BackupSuffix = ".old"

//nolint:gochecknoglobals // Test seam for os.Exit.
var osExit = os.Exit

// Controller compares one build script against its compiled binary and
// owns the rebuild-and-relaunch hand-off.
type Controller struct {
	// SourcePath is the build script's source file.
	SourcePath string
	// BinaryPath is the compiled executable the source produces.
	BinaryPath string
	// Toolchain performs the recompilation.
	Toolchain toolchain.Toolchain
	// Args are the original process arguments handed to the relaunched
	// binary, so the rebuilt generation observes the same invocation.
	Args []string
}

// Stale reports whether the binary needs a rebuild: the source exists
// and its modification time strictly exceeds the binary's. A missing
// binary is stale; a missing source is an error.
func (c *Controller) Stale() (bool, error) {
	srcInfo, err := os.Stat(c.SourcePath)
	if err != nil {
		return false, fmt.Errorf("stat build source: %w", err)
	}

	binInfo, err := os.Stat(c.BinaryPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, fmt.Errorf("stat binary: %w", err)
	}

	return srcInfo.ModTime().After(binInfo.ModTime()), nil
}

// Ensure checks staleness once and acts on it.
//
// Fresh: returns nil immediately with zero side effects — no filesystem
// writes, no spawned processes.
//
// Stale: copies the current binary to BinaryPath+".old" (overwriting
// any prior backup), recompiles the source into BinaryPath (a failed
// compile aborts the whole process, run-and-check semantics), then
// spawns the rebuilt binary with the original arguments, waits for it,
// and terminates the current process with the child's normalized exit
// code. Whatever invoked the original process observes a single
// consistent exit status no matter how many rebuild generations ran.
func (c *Controller) Ensure() error {
	stale, err := c.Stale()
	if err != nil {
		return err
	}
	if !stale {
		slog.Debug("binary is fresh", "binary", c.BinaryPath, "source", c.SourcePath)
		return nil
	}

	if err := c.backup(); err != nil {
		return err
	}

	c.Toolchain.CompileCommand(c.SourcePath, c.BinaryPath).RunChecked()
	slog.Info("rebuilt stale binary", "binary", c.BinaryPath, "source", c.SourcePath)

	relaunch := runner.New(c.BinaryPath)
	relaunch.AppendList(c.Args)
	status := relaunch.Run()

	osExit(int(status.Normalized()))
	return nil
}

// backup copies the current binary to its .old sibling, overwriting any
// prior backup. A missing binary (first build) needs no backup.
func (c *Controller) backup() error {
	src, err := os.Open(c.BinaryPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open binary for backup: %w", err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("stat binary for backup: %w", err)
	}

	dst, err := os.OpenFile(c.BinaryPath+BackupSuffix, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create backup: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("write backup: %w", err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("close backup: %w", err)
	}

	slog.Debug("backed up binary", "backup", c.BinaryPath+BackupSuffix)
	return nil
}
