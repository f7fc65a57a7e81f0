// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"ccmk-cli/internal/config"
	"ccmk-cli/internal/toolchain"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration after defaults, file, and environment",
		RunE:  runConfigShow,
	}

	configPathCmd = &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE:  runConfigPath,
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	tc := toolchain.Detect(cfg.Compiler)

	view := struct {
		Compiler     string   `yaml:"compiler"`
		Identity     string   `yaml:"identity"`
		StandardFlag string   `yaml:"standard_flag"`
		ExtraFlags   []string `yaml:"extra_flags"`
		SearchPaths  []string `yaml:"search_paths"`
		Lang         string   `yaml:"lang"`
		Kind         string   `yaml:"kind"`
		LogFile      string   `yaml:"log_file,omitempty"`
	}{
		Compiler:     tc.Binary,
		Identity:     tc.Compiler.String(),
		StandardFlag: cfg.StandardFlag,
		ExtraFlags:   cfg.ExtraFlags,
		SearchPaths:  cfg.SearchPaths,
		Lang:         cfg.Lang,
		Kind:         cfg.Kind,
		LogFile:      cfg.Log.File,
	}

	out, err := yaml.Marshal(view)
	if err != nil {
		return fmt.Errorf("marshaling config view: %w", err)
	}
	cmd.Print(string(out))
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	path, err := config.ConfigFilePath()
	if err != nil {
		return err
	}
	cmd.Println(path)
	return nil
}
