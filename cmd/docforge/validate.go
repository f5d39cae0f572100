package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docforge/internal/config"
	"github.com/pdiddy/docforge/internal/layout"
)

var validateCmd = &cobra.Command{
	Use:   "validate <config>",
	Short: "Check a site config without writing anything",
	Long: `Validate loads a config file, applies schema and structural checks,
and resolves the output layout (catching duplicate category slugs).
Nothing is written to disk.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(args[0])
		if err != nil {
			return err
		}
		if _, err := layout.FromConfig(cfg); err != nil {
			return fmt.Errorf("config %s: %w", args[0], err)
		}
		fmt.Printf("valid: %s (%d sections, %d pages)\n",
			cfg.Name, len(cfg.Sections), cfg.TotalPages())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
