// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package layout maps a site config onto the output directory and file
// structure. The layout is the single source of slugs: the renderer,
// the index builder, and the run manifest all read names from here, so
// INDEX.md links always match the files on disk.
package layout

import (
	"fmt"
	"path"
	"strings"

	"github.com/pdiddy/docforge/internal/slug"
	"github.com/pdiddy/docforge/pkg/types"
)

// Layout is the resolved output structure for one config.
type Layout struct {
	Sections []SectionLayout
}

// SectionLayout is one output subdirectory and its page files, in
// config order.
type SectionLayout struct {
	// Category is the original category name from the config.
	Category string

	// Dir is the slugified directory name under the output root.
	Dir string

	Pages []PageLayout
}

// PageLayout is one page file within a section directory.
type PageLayout struct {
	Title string

	// URL is the page URL as given in the config (possibly relative).
	URL string

	// File is the filename within the section directory, including the
	// .md extension.
	File string

	// RelPath is the file path relative to the output root, always with
	// forward slashes so it can be used in Markdown links.
	RelPath string
}

// FromConfig resolves the output layout for cfg. Page filename
// collisions within a section are resolved with numeric suffixes.
// Duplicate category slugs are rejected: each section must map to its
// own directory.
func FromConfig(cfg *types.Config) (*Layout, error) {
	lay := &Layout{Sections: make([]SectionLayout, 0, len(cfg.Sections))}
	dirs := make(map[string]string, len(cfg.Sections))

	for _, section := range cfg.Sections {
		dir := slug.Make(section.Category)
		if dir == "" {
			dir = "uncategorized"
		}
		if prev, taken := dirs[dir]; taken {
			return nil, fmt.Errorf("categories %q and %q both map to directory %q", prev, section.Category, dir)
		}
		dirs[dir] = section.Category

		sl := SectionLayout{
			Category: section.Category,
			Dir:      dir,
			Pages:    make([]PageLayout, 0, len(section.Pages)),
		}

		names := slug.NewUniquifier()
		for _, page := range section.Pages {
			file := names.Take(page.Title) + ".md"
			sl.Pages = append(sl.Pages, PageLayout{
				Title:   page.Title,
				URL:     page.URL,
				File:    file,
				RelPath: path.Join(dir, file),
			})
		}
		lay.Sections = append(lay.Sections, sl)
	}

	return lay, nil
}

// FullURL resolves a page URL against the config base. Absolute URLs
// pass through unchanged; anything else is appended to baseURL.
func FullURL(baseURL, pageURL string) string {
	if strings.HasPrefix(pageURL, "http://") || strings.HasPrefix(pageURL, "https://") {
		return pageURL
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(pageURL, "/")
}
