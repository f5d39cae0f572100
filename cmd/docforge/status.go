package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docforge/internal/manifest"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show recent materialization runs for an output directory",
	Long: `Status reads the run manifest under <output>/.docforge/ and lists
recent materialization runs, newest first.`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = viper.GetString("output_dir")
	}
	limit, _ := cmd.Flags().GetInt("limit")

	// Status is read-only: never create a manifest just to report it empty.
	if !manifest.Exists(outputDir) {
		fmt.Printf("No recorded runs under %s\n", outputDir)
		return nil
	}

	store, err := manifest.Open(outputDir)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Recent(context.Background(), limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Printf("No recorded runs under %s\n", outputDir)
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-24s  %-8s  %-6s  %s\n",
		"ID", "Config", "Sections", "Pages", "Finished")
	for _, r := range runs {
		name := r.ConfigName
		if len(name) > 24 {
			name = name[:21] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-24s  %-8d  %-6d  %s\n",
			r.ID, name, r.Sections, r.Pages, r.FinishedAt)
	}
	return nil
}

func init() {
	statusCmd.Flags().String("output", "", "output directory whose manifest to read")
	statusCmd.Flags().Int("limit", 10, "maximum number of runs to show")

	rootCmd.AddCommand(statusCmd)
}
