// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docforge/pkg/types"
)

func testConfig() *types.Config {
	return &types.Config{
		Name:    "Example Docs",
		BaseURL: "https://example.com",
		Sections: []types.Section{
			{
				Category: "Getting Started",
				Pages: []types.Page{
					{Title: "Installation", URL: "/docs/install"},
					{Title: "Quick Start", URL: "/docs/quickstart"},
				},
			},
			{
				Category: "API Reference",
				Pages: []types.Page{
					{Title: "Core API", URL: "/docs/api/core"},
				},
			},
		},
	}
}

func TestFromConfig(t *testing.T) {
	lay, err := FromConfig(testConfig())
	require.NoError(t, err)
	require.Len(t, lay.Sections, 2)

	// Config order is preserved and directories are slugified categories.
	assert.Equal(t, "getting-started", lay.Sections[0].Dir)
	assert.Equal(t, "api-reference", lay.Sections[1].Dir)

	require.Len(t, lay.Sections[0].Pages, 2)
	assert.Equal(t, "installation.md", lay.Sections[0].Pages[0].File)
	assert.Equal(t, "getting-started/installation.md", lay.Sections[0].Pages[0].RelPath)
	assert.Equal(t, "quick-start.md", lay.Sections[0].Pages[1].File)
}

func TestFromConfigTitleCollision(t *testing.T) {
	cfg := &types.Config{
		Name: "Collide",
		Sections: []types.Section{
			{
				Category: "Guides",
				Pages: []types.Page{
					{Title: "Setup", URL: "/a"},
					{Title: "Setup", URL: "/b"},
					{Title: "setup", URL: "/c"},
				},
			},
		},
	}

	lay, err := FromConfig(cfg)
	require.NoError(t, err)

	pages := lay.Sections[0].Pages
	require.Len(t, pages, 3)
	assert.Equal(t, "setup.md", pages[0].File)
	assert.Equal(t, "setup-2.md", pages[1].File)
	assert.Equal(t, "setup-3.md", pages[2].File)
}

func TestFromConfigSameTitleDifferentSections(t *testing.T) {
	cfg := &types.Config{
		Name: "Shared",
		Sections: []types.Section{
			{Category: "Guides", Pages: []types.Page{{Title: "Overview", URL: "/a"}}},
			{Category: "Reference", Pages: []types.Page{{Title: "Overview", URL: "/b"}}},
		},
	}

	lay, err := FromConfig(cfg)
	require.NoError(t, err)

	// Collision resolution is scoped per section: no suffix here.
	assert.Equal(t, "overview.md", lay.Sections[0].Pages[0].File)
	assert.Equal(t, "overview.md", lay.Sections[1].Pages[0].File)
}

func TestFromConfigDuplicateCategory(t *testing.T) {
	cfg := &types.Config{
		Name: "Dup",
		Sections: []types.Section{
			{Category: "Getting Started"},
			{Category: "getting started"},
		},
	}

	_, err := FromConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "getting-started")
}

func TestFromConfigDotOnlyNamesStayInsideRoot(t *testing.T) {
	cfg := &types.Config{
		Name: "Hostile",
		Sections: []types.Section{
			{Category: "..", Pages: []types.Page{
				{Title: ".", URL: "/a"},
				{Title: "..", URL: "/b"},
			}},
		},
	}

	lay, err := FromConfig(cfg)
	require.NoError(t, err)
	require.Len(t, lay.Sections, 1)

	// A dot-only category must not alias or escape the output root.
	assert.Equal(t, "uncategorized", lay.Sections[0].Dir)

	pages := lay.Sections[0].Pages
	require.Len(t, pages, 2)
	assert.Equal(t, "untitled.md", pages[0].File)
	assert.Equal(t, "untitled-2.md", pages[1].File)
	for _, p := range pages {
		assert.NotContains(t, p.RelPath, "..")
		assert.Equal(t, "uncategorized/"+p.File, p.RelPath)
	}
}

func TestFullURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		url  string
		want string
	}{
		{"relative", "https://example.com", "/docs/install", "https://example.com/docs/install"},
		{"relative no slash", "https://example.com", "docs/install", "https://example.com/docs/install"},
		{"base trailing slash", "https://example.com/", "/docs", "https://example.com/docs"},
		{"absolute passes through", "https://example.com", "https://other.dev/page", "https://other.dev/page"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FullURL(tt.base, tt.url))
		})
	}
}
