// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render produces the placeholder Markdown for documentation
// pages. Rendering is a pure template fill: a full implementation would
// replace the placeholder body with fetched and converted content.
package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/docforge/internal/layout"
	"github.com/pdiddy/docforge/pkg/types"
)

// Page renders the placeholder document for one page. The output starts
// with a level-one heading carrying the page title, names the category
// and resolved source URL, and closes with a footer identifying the
// config that produced it.
func Page(cfg *types.Config, category string, page layout.PageLayout) string {
	fullURL := layout.FullURL(cfg.BaseURL, page.URL)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", page.Title)
	fmt.Fprintf(&b, "**Category:** %s\n", category)
	fmt.Fprintf(&b, "**Source:** %s\n\n", fullURL)

	b.WriteString("## Overview\n\n")
	fmt.Fprintf(&b, "This documentation page covers: **%s**\n\n", page.Title)
	fmt.Fprintf(&b, "> Content not yet scraped. A full implementation would fetch\n")
	fmt.Fprintf(&b, "> %s, apply the configured selectors, and convert the\n", fullURL)
	b.WriteString("> result to Markdown.\n\n")

	b.WriteString("---\n\n")
	b.WriteString("*Generated by docforge*\n")
	if cfg.Version != "" {
		fmt.Fprintf(&b, "*Configuration: %s v%s*\n", cfg.Name, cfg.Version)
	} else {
		fmt.Fprintf(&b, "*Configuration: %s*\n", cfg.Name)
	}
	return b.String()
}
