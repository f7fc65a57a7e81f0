// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ccmk-cli/internal/discovery"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll(%q) error = %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%q) error = %v", path, err)
	}
}

// scanFixture builds a small tree with one resolvable quoted include,
// one resolvable angle include, and one unresolvable angle include,
// then returns the walked map and search dirs.
func scanFixture(t *testing.T) (discovery.FileIncludeMap, []string) {
	t.Helper()

	src := t.TempDir()
	sys := t.TempDir()
	writeFile(t, filepath.Join(src, "main.cc"), "#include \"util.h\"\n#include <shared.h>\n#include <vector>\n")
	writeFile(t, filepath.Join(src, "util.h"), "")
	writeFile(t, filepath.Join(sys, "shared.h"), "")

	includeMap, err := discovery.Walk(src, discovery.CPP)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	return includeMap, []string{sys}
}

func TestBuildReport(t *testing.T) {
	t.Parallel()

	includeMap, searchDirs := scanFixture(t)
	report := buildReport(includeMap, searchDirs)

	if len(report) != 2 {
		t.Fatalf("buildReport() files = %d, want 2", len(report))
	}

	// Paths are sorted, so main.cc precedes util.h within the same dir.
	main := report[0]
	if filepath.Base(main.Path) != "main.cc" {
		t.Fatalf("report[0] = %q, want main.cc first", main.Path)
	}
	if len(main.Includes) != 3 {
		t.Fatalf("main.cc includes = %d, want 3", len(main.Includes))
	}

	byForm := map[string]includeReport{}
	for _, ir := range main.Includes {
		byForm[ir.Spelling] = ir
	}

	if got := byForm["util.h"]; got.Kind != "quote" || filepath.Base(got.Resolved) != "util.h" {
		t.Errorf("util.h report = %+v, want quoted and resolved", got)
	}
	if got := byForm["shared.h"]; got.Kind != "angle" || filepath.Base(got.Resolved) != "shared.h" {
		t.Errorf("shared.h report = %+v, want angle and resolved via search dir", got)
	}
	if got := byForm["vector"]; got.Resolved != "" {
		t.Errorf("vector report = %+v, want unresolved", got)
	}
}

func TestRenderTree(t *testing.T) {
	t.Parallel()

	report := []fileReport{
		{
			Path: "/proj/main.cc",
			Includes: []includeReport{
				{Spelling: "util.h", Kind: "quote", Resolved: "/proj/util.h"},
				{Spelling: "vector", Kind: "angle"},
			},
		},
	}

	got := renderTree(report)

	for _, want := range []string{
		"/proj/main.cc",
		`  "util.h" -> /proj/util.h`,
		"  <vector>\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("renderTree() missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "<vector> ->") {
		t.Errorf("renderTree() shows an arrow for an unresolved include:\n%s", got)
	}
}

func TestRenderTable(t *testing.T) {
	t.Parallel()

	report := []fileReport{
		{
			Path: "/proj/main.cc",
			Includes: []includeReport{
				{Spelling: "util.h", Kind: "quote", Resolved: "/proj/util.h"},
				{Spelling: "vector", Kind: "angle"},
			},
		},
	}

	got := renderTable(report)

	for _, want := range []string{"/proj/main.cc", `"util.h"`, "<vector>", "Files 1", "Includes 2", "Resolved 1"} {
		if !strings.Contains(got, want) {
			t.Errorf("renderTable() missing %q in:\n%s", want, got)
		}
	}
}

func TestReportYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	includeMap, searchDirs := scanFixture(t)
	report := buildReport(includeMap, searchDirs)

	out, err := yaml.Marshal(report)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}

	var decoded []fileReport
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if len(decoded) != len(report) {
		t.Errorf("round trip files = %d, want %d", len(decoded), len(report))
	}
}

func TestSpelled(t *testing.T) {
	t.Parallel()

	if got := spelled(includeReport{Spelling: "a.h", Kind: "quote"}); got != `"a.h"` {
		t.Errorf("spelled(quote) = %q, want %q", got, `"a.h"`)
	}
	if got := spelled(includeReport{Spelling: "vector", Kind: "angle"}); got != "<vector>" {
		t.Errorf("spelled(angle) = %q, want %q", got, "<vector>")
	}
}
