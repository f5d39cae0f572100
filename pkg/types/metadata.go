// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Metadata summarizes a materialized documentation tree. It is written
// to metadata.json at the output root so downstream tooling can
// identify what was generated without re-reading the config.
type Metadata struct {
	Name          string `json:"name" yaml:"name"`
	BaseURL       string `json:"base_url" yaml:"base_url"`
	DocsBase      string `json:"docs_base,omitempty" yaml:"docs_base,omitempty"`
	Version       string `json:"version,omitempty" yaml:"version,omitempty"`
	Description   string `json:"description,omitempty" yaml:"description,omitempty"`
	TotalSections int    `json:"total_sections" yaml:"total_sections"`
	TotalPages    int    `json:"total_pages" yaml:"total_pages"`

	// GeneratedAt is the UTC RFC 3339 timestamp of the run.
	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
}
