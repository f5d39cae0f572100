// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Config describes a documentation site: its identity, the ordered
// section/page tree, and the scraping and output options. It is loaded
// once at startup and never mutated during a run.
type Config struct {
	// Name is the human-readable site or framework name (e.g. "Tailwind CSS").
	Name string `json:"name" yaml:"name"`

	// BaseURL is the site root used to resolve relative page URLs.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// DocsBase is the documentation root, when it differs from BaseURL.
	DocsBase string `json:"docs_base,omitempty" yaml:"docs_base,omitempty"`

	// Version is the documented framework version.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Description is a one-line summary shown in listings and the index.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Sections is the ordered list of categories. Config order drives
	// directory creation order and index order.
	Sections []Section `json:"sections" yaml:"sections"`

	// Scraping holds fetch-related options. These are recognized and
	// preserved but not enforced: docforge performs no network access.
	Scraping ScrapingConfig `json:"scraping,omitempty" yaml:"scraping,omitempty"`

	// Output holds materialization options.
	Output OutputConfig `json:"output,omitempty" yaml:"output,omitempty"`
}

// TotalPages returns the page count across all sections.
func (c *Config) TotalPages() int {
	total := 0
	for _, s := range c.Sections {
		total += len(s.Pages)
	}
	return total
}

// Section is a named category grouping an ordered list of pages. The
// category name becomes an output subdirectory after slugification.
type Section struct {
	Category string `json:"category" yaml:"category"`
	Pages    []Page `json:"pages" yaml:"pages"`
}

// Page is a single documentation entry. URL may be absolute or relative
// to the config's BaseURL. The title becomes the output filename after
// slugification.
type Page struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
}

// ScrapingConfig holds fetch options carried in site configs.
//
// All fields are recognized but not yet enforced. No HTTP requests are
// made, so rate limits, retries, timeouts, and selectors are inert
// metadata kept for a future fetching implementation. Do not rely on
// them taking effect.
type ScrapingConfig struct {
	// RateLimitMS is the intended delay between page fetches, in milliseconds.
	RateLimitMS int `json:"rate_limit_ms,omitempty" yaml:"rate_limit_ms,omitempty"`

	// MaxRetries is the intended per-page retry budget.
	MaxRetries int `json:"max_retries,omitempty" yaml:"max_retries,omitempty"`

	// TimeoutMS is the intended per-request timeout, in milliseconds.
	TimeoutMS int `json:"timeout_ms,omitempty" yaml:"timeout_ms,omitempty"`

	// UserAgent is the intended User-Agent header.
	UserAgent string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`

	// Selectors maps content roles (e.g. "main", "code") to CSS selectors.
	Selectors map[string]string `json:"selectors,omitempty" yaml:"selectors,omitempty"`
}

// OutputConfig holds materialization options. The boolean fields are
// pointers so an absent field defaults to true while an explicit false
// is respected.
type OutputConfig struct {
	// Format names the output format. Only "markdown" is supported.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// IncludeMetadata controls writing metadata.json (default true).
	IncludeMetadata *bool `json:"include_metadata,omitempty" yaml:"include_metadata,omitempty"`

	// PreserveCodeBlocks is recognized but inert until content
	// conversion exists.
	PreserveCodeBlocks *bool `json:"preserve_code_blocks,omitempty" yaml:"preserve_code_blocks,omitempty"`

	// CreateIndex controls writing INDEX.md (default true).
	CreateIndex *bool `json:"create_index,omitempty" yaml:"create_index,omitempty"`
}

// WantIndex reports whether INDEX.md should be written.
func (o OutputConfig) WantIndex() bool {
	return o.CreateIndex == nil || *o.CreateIndex
}

// WantMetadata reports whether metadata.json should be written.
func (o OutputConfig) WantMetadata() bool {
	return o.IncludeMetadata == nil || *o.IncludeMetadata
}
