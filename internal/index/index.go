// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index builds the root INDEX.md for a materialized
// documentation tree: one subsection per category, one link per page,
// in config order.
package index

import (
	"fmt"
	"strings"

	"github.com/pdiddy/docforge/internal/layout"
	"github.com/pdiddy/docforge/pkg/types"
)

// Build serializes the section/page tree into INDEX.md content. Links
// use the relative paths from the layout, so they always match the
// files the materializer writes.
func Build(cfg *types.Config, lay *layout.Layout) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Documentation Index\n\n", cfg.Name)
	fmt.Fprintf(&b, "**Version:** %s\n", orNA(cfg.Version))
	fmt.Fprintf(&b, "**Description:** %s\n", orNA(cfg.Description))
	fmt.Fprintf(&b, "**Base URL:** %s\n\n", orNA(cfg.BaseURL))

	b.WriteString("## Table of Contents\n\n")

	for _, section := range lay.Sections {
		fmt.Fprintf(&b, "### %s\n\n", section.Category)
		for _, page := range section.Pages {
			fmt.Fprintf(&b, "- [%s](./%s) - [source](%s)\n",
				page.Title, page.RelPath, layout.FullURL(cfg.BaseURL, page.URL))
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	b.WriteString("*Index generated by docforge*\n")
	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
