// SPDX-License-Identifier: MPL-2.0

package cmd

import "testing"

func TestGetVersionString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	defer func() { Version, Commit, BuildDate = origVersion, origCommit, origDate }()

	Version = "dev"
	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("getVersionString() = %q, want dev marker", got)
	}

	Version, Commit, BuildDate = "1.2.3", "abc1234", "2026-01-01"
	if got := getVersionString(); got != "1.2.3 (commit: abc1234, built: 2026-01-01)" {
		t.Errorf("getVersionString() = %q", got)
	}
}

func TestRootRegistersSubcommands(t *testing.T) {
	t.Parallel()

	want := map[string]bool{"scan": false, "exec": false, "bootstrap": false, "config": false}
	for _, sub := range rootCmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}
