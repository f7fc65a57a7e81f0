// SPDX-License-Identifier: MPL-2.0

// Package runner builds, renders, and executes external toolchain
// commands with deterministic argument handling.
//
// The execution model is deliberately synchronous and single-child: a
// Run call blocks until its one spawned process terminates, with no
// timeout and no cancellation. Outcomes are normalized to a Status in a
// single exit-code domain (signal terminations map to 128+signum), and
// RunChecked turns any non-success into a fatal abort — a failed
// compiler invocation must never be silently ignored.
//
// File organization:
//   - cmd.go: the Cmd argument vector and Render quoting
//   - status.go: Status and exit-code normalization
//   - status_unix.go / status_other.go: platform wait-status extraction
//   - run.go: Run and RunChecked
package runner
