// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"ccmk-cli/internal/diag"
	"ccmk-cli/internal/discovery"
	"ccmk-cli/internal/resolve"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatTree  = "tree"
	formatTable = "table"
	formatYAML  = "yaml"
)

var (
	scanLang        string
	scanKind        string
	scanIncludeDirs []string
	scanFormat      string

	scanCmd = &cobra.Command{
		Use:   "scan [dir]",
		Short: "Scan a source tree for #include directives and resolve them",
		Long: `Recursively scans a directory for C/C++ source files, extracts their
#include directives with a single-pass lexical scan, and resolves each
directive against the include search path the way a compiler would:
quoted includes relative to the including file first, then the -I
directories in order, first match wins.

Unresolved includes (system headers, generated headers) are expected
and shown without a resolution, not treated as errors.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runScan,
	}
)

func init() {
	scanCmd.Flags().StringVar(&scanLang, "lang", "", "extension set language: cpp or c (default from config)")
	scanCmd.Flags().StringVar(&scanKind, "kind", "", "extension set kind: all, header, or impl (default from config)")
	scanCmd.Flags().StringArrayVarP(&scanIncludeDirs, "include-dir", "I", nil, "include search directory (repeatable, ordered)")
	scanCmd.Flags().StringVarP(&scanFormat, "format", "f", formatTree, "output format: tree, table, or yaml")
}

type (
	// includeReport is one include directive and its resolution outcome.
	includeReport struct {
		Spelling string `yaml:"spelling"`
		Kind     string `yaml:"kind"`
		Resolved string `yaml:"resolved,omitempty"`
	}

	// fileReport is one scanned file with its includes in set order.
	fileReport struct {
		Path     string          `yaml:"path"`
		Includes []includeReport `yaml:"includes"`
	}
)

func runScan(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	lang := scanLang
	if lang == "" {
		lang = cfg.Lang
	}
	kind := scanKind
	if kind == "" {
		kind = cfg.Kind
	}
	exts, ok := discovery.ExtensionsFor(lang, kind)
	if !ok {
		return fmt.Errorf("unknown extension set %s/%s (lang: cpp or c; kind: all, header, or impl)", lang, kind)
	}

	// CLI -I directories take precedence over configured search paths,
	// in the order given.
	searchDirs := make([]string, 0, len(scanIncludeDirs)+len(cfg.SearchPaths))
	searchDirs = append(searchDirs, scanIncludeDirs...)
	searchDirs = append(searchDirs, cfg.SearchPaths...)

	includeMap, err := discovery.Walk(root, exts)
	if err != nil {
		// The walk assumes a stable snapshot; a vanished root or file is
		// fatal rather than a partial result.
		diag.Fatalf("scanning %s: %v", root, err)
	}

	report := buildReport(includeMap, searchDirs)

	switch scanFormat {
	case formatTree:
		cmd.Print(renderTree(report))
	case formatTable:
		cmd.Print(renderTable(report))
	case formatYAML:
		out, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("marshaling scan report: %w", err)
		}
		cmd.Print(string(out))
	default:
		return fmt.Errorf("unknown format %q (want tree, table, or yaml)", scanFormat)
	}

	return nil
}

// buildReport resolves every scanned include and flattens the map into
// a deterministic, path-ordered report.
func buildReport(includeMap discovery.FileIncludeMap, searchDirs []string) []fileReport {
	report := make([]fileReport, 0, len(includeMap))

	for _, path := range includeMap.SortedPaths() {
		fr := fileReport{Path: path}
		includerDir := filepath.Dir(path)

		for _, inc := range includeMap[path].Sorted() {
			ir := includeReport{Spelling: inc.Spelling, Kind: inc.Quote.String()}
			if resolved, ok := resolve.Resolve(inc, searchDirs, includerDir); ok {
				ir.Resolved = resolved
			}
			fr.Includes = append(fr.Includes, ir)
		}
		report = append(report, fr)
	}

	return report
}

// renderTree prints each file followed by its includes, resolved ones
// with an arrow to their canonical path.
func renderTree(report []fileReport) string {
	var b strings.Builder

	for _, fr := range report {
		b.WriteString(FileStyle.Render(fr.Path))
		b.WriteByte('\n')
		for _, ir := range fr.Includes {
			b.WriteString("  ")
			b.WriteString(spelled(ir))
			if ir.Resolved != "" {
				b.WriteString(" -> ")
				b.WriteString(ResolvedStyle.Render(ir.Resolved))
			}
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// renderTable prints one row per include directive.
func renderTable(report []fileReport) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"File", "Include", "Resolved"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	total, resolved := 0, 0
	for _, fr := range report {
		for _, ir := range fr.Includes {
			total++
			target := ir.Resolved
			if target == "" {
				target = "-"
			} else {
				resolved++
			}
			table.Append([]string{fr.Path, spelled(ir), target})
		}
	}
	table.SetFooter([]string{
		fmt.Sprintf("Files %d", len(report)),
		fmt.Sprintf("Includes %d", total),
		fmt.Sprintf("Resolved %d", resolved),
	})

	table.Render()
	return buf.String()
}

// spelled reproduces the include the way it was written in source.
func spelled(ir includeReport) string {
	if ir.Kind == "quote" {
		return fmt.Sprintf("%q", ir.Spelling)
	}
	return "<" + ir.Spelling + ">"
}
