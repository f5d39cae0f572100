// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docforge CLI. docforge
// materializes a documentation site config into a tree of Markdown
// placeholder files with an index and metadata summary.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docforge/internal/config"
	"github.com/pdiddy/docforge/internal/materialize"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd materializes a documentation tree from a site config.
var rootCmd = &cobra.Command{
	Use:   "docforge",
	Short: "Materialize documentation site configs into Markdown trees",
	Long: `docforge reads a JSON or YAML config describing a documentation site
(sections and pages) and writes one directory per section, one
placeholder Markdown file per page, a root INDEX.md, and metadata.json.

No network access happens: fetch-related config options are recognized
and preserved but not enforced.`,
	RunE: runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	listConfigs, _ := cmd.Flags().GetBool("list-configs")
	configsDir, _ := cmd.Flags().GetString("configs-dir")
	if configsDir == "" {
		configsDir = viper.GetString("configs_dir")
	}

	if listConfigs {
		return runListConfigs(configsDir)
	}

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		cmd.Usage()
		return fmt.Errorf("--config is required (or use --list-configs)")
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = viper.GetString("output_dir")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	noManifest, _ := cmd.Flags().GetBool("no-manifest")
	opts := materialize.Options{
		ConfigPath: configPath,
		Manifest:   !noManifest,
	}

	_, err = materialize.Run(cfg, outputDir, opts, os.Stdout)
	return err
}

func runListConfigs(dir string) error {
	infos, err := config.List(dir)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Printf("No config files found in %s\n", dir)
		return nil
	}

	fmt.Printf("Available configs in %s:\n\n", dir)
	for _, info := range infos {
		if info.Err != nil {
			fmt.Printf("  %s (error: %v)\n", info.File, info.Err)
			continue
		}
		ver := info.Version
		if ver == "" {
			ver = "N/A"
		}
		fmt.Printf("  %s\n", info.File)
		fmt.Printf("    Name: %s  Version: %s\n", info.Name, ver)
		if info.Description != "" {
			fmt.Printf("    Description: %s\n", info.Description)
		}
		fmt.Printf("    Sections: %d  Pages: %d\n", info.Sections, info.Pages)
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().String("config", "", "path to a site config file (.json, .yaml)")
	rootCmd.Flags().String("output", "", "output directory root (default from docforge.yaml or \"output\")")
	rootCmd.Flags().Bool("list-configs", false, "list available config files and exit")
	rootCmd.Flags().String("configs-dir", "", "directory scanned by --list-configs (default \"configs\")")
	rootCmd.Flags().Bool("no-manifest", false, "skip recording the run in the output manifest")
}

// initConfig layers tool defaults from docforge.yaml and the
// environment (DOCFORGE_ prefix).
func initConfig() {
	viper.SetConfigName("docforge")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "docforge"))
	}

	viper.SetDefault("configs_dir", "configs")
	viper.SetDefault("output_dir", "output")

	viper.SetEnvPrefix("DOCFORGE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
