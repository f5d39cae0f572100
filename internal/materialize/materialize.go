// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package materialize writes a documentation tree to disk: one
// directory per section, one placeholder Markdown file per page, plus
// INDEX.md and metadata.json at the output root. The run is a linear
// pipeline; the first I/O failure aborts it.
package materialize

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/docforge/internal/index"
	"github.com/pdiddy/docforge/internal/layout"
	"github.com/pdiddy/docforge/internal/manifest"
	"github.com/pdiddy/docforge/internal/render"
	"github.com/pdiddy/docforge/pkg/types"
)

const (
	indexFile    = "INDEX.md"
	metadataFile = "metadata.json"
)

// Options controls a materialization run.
type Options struct {
	// ConfigPath is recorded in the run manifest for provenance.
	ConfigPath string

	// Manifest enables recording the run in the output's manifest
	// database. Recording is best-effort: a manifest error is reported
	// as a warning, not a run failure.
	Manifest bool
}

// Summary holds the outcome of a materialization run.
type Summary struct {
	Written  int
	Skipped  int
	Sections int
}

// Total returns the number of pages processed.
func (s Summary) Total() int {
	return s.Written + s.Skipped
}

// Run materializes cfg under outputDir, printing per-page status and a
// final summary to w. Pages without a URL are skipped; any directory or
// file write error aborts the run.
func Run(cfg *types.Config, outputDir string, opts Options, w io.Writer) (Summary, error) {
	lay, err := layout.FromConfig(cfg)
	if err != nil {
		return Summary{}, err
	}

	started := time.Now().UTC()

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}

	fmt.Fprintf(w, "Materializing %s -> %s\n", cfg.Name, outputDir)
	fmt.Fprintf(w, "%d sections, %d pages\n\n", len(cfg.Sections), cfg.TotalPages())

	var (
		summary = Summary{Sections: len(lay.Sections)}
		records []manifest.PageRecord
	)

	for _, section := range lay.Sections {
		dir := filepath.Join(outputDir, section.Dir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return summary, fmt.Errorf("creating section directory %s: %w", dir, err)
		}

		for _, page := range section.Pages {
			if page.URL == "" {
				fmt.Fprintf(w, "skipped: %s (no URL)\n", page.Title)
				summary.Skipped++
				continue
			}

			content := render.Page(cfg, section.Category, page)
			path := filepath.Join(dir, page.File)
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return summary, fmt.Errorf("writing page %s: %w", path, err)
			}

			fmt.Fprintf(w, "written: %s\n", page.RelPath)
			summary.Written++
			records = append(records, manifest.PageRecord{
				Category: section.Category,
				Slug:     strings.TrimSuffix(page.File, ".md"),
				Title:    page.Title,
				URL:      page.URL,
				Path:     page.RelPath,
			})
		}
	}

	if cfg.Output.WantIndex() {
		path := filepath.Join(outputDir, indexFile)
		if err := os.WriteFile(path, []byte(index.Build(cfg, lay)), 0o644); err != nil {
			return summary, fmt.Errorf("writing index %s: %w", path, err)
		}
		fmt.Fprintf(w, "written: %s\n", indexFile)
	}

	if cfg.Output.WantMetadata() {
		if err := writeMetadata(cfg, outputDir); err != nil {
			return summary, err
		}
		fmt.Fprintf(w, "written: %s\n", metadataFile)
	}

	fmt.Fprintf(w, "\nSummary: %d written, %d skipped (%d sections)\n",
		summary.Written, summary.Skipped, summary.Sections)

	if opts.Manifest {
		if err := recordRun(cfg, opts.ConfigPath, outputDir, summary, started, records); err != nil {
			fmt.Fprintf(w, "warning: manifest not updated: %v\n", err)
		}
	}

	return summary, nil
}

// writeMetadata serializes the run summary metadata to metadata.json.
func writeMetadata(cfg *types.Config, outputDir string) error {
	meta := types.Metadata{
		Name:          cfg.Name,
		BaseURL:       cfg.BaseURL,
		DocsBase:      cfg.DocsBase,
		Version:       cfg.Version,
		Description:   cfg.Description,
		TotalSections: len(cfg.Sections),
		TotalPages:    cfg.TotalPages(),
		GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}
	path := filepath.Join(outputDir, metadataFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing metadata %s: %w", path, err)
	}
	return nil
}

func recordRun(cfg *types.Config, configPath, outputDir string, summary Summary, started time.Time, pages []manifest.PageRecord) error {
	store, err := manifest.Open(outputDir)
	if err != nil {
		return err
	}
	defer store.Close()

	run := manifest.Run{
		ConfigName: cfg.Name,
		ConfigPath: configPath,
		OutputDir:  outputDir,
		Sections:   summary.Sections,
		Pages:      summary.Written,
		StartedAt:  started.Format(time.RFC3339),
		FinishedAt: time.Now().UTC().Format(time.RFC3339),
	}
	_, err = store.Record(context.Background(), run, pages)
	return err
}
