// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads, validates, and lists documentation-site
// configs. JSON configs are checked against an embedded JSON Schema;
// YAML configs get the same structural checks after parsing.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/docforge/pkg/types"
)

// ErrConfig is the sentinel all configuration failures unwrap to.
var ErrConfig = errors.New("invalid configuration")

// Issue is a single validation failure with its instance location.
type Issue struct {
	Location string
	Message  string
}

// Error reports why a config file could not be loaded. It wraps
// ErrConfig so callers can distinguish config failures from I/O
// failures with errors.Is.
type Error struct {
	Path   string
	Reason string
	Issues []Issue
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("config %s: %s", e.Path, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	for _, issue := range e.Issues {
		loc := issue.Location
		if loc == "" {
			loc = "#"
		}
		msg += fmt.Sprintf("\n  %s: %s", loc, issue.Message)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return ErrConfig
}

// Load reads and validates the config at path. The format is chosen by
// extension: .json, .yaml, or .yml.
func Load(path string) (*types.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Reason: "reading file", Err: err}
	}

	var cfg types.Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := loadJSON(path, data, &cfg); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, &Error{Path: path, Reason: "malformed YAML", Err: err}
		}
	default:
		return nil, &Error{Path: path, Reason: fmt.Sprintf("unsupported extension %q (want .json, .yaml, or .yml)", ext)}
	}

	if issues := validate(&cfg); len(issues) > 0 {
		return nil, &Error{Path: path, Reason: "missing required fields", Issues: issues}
	}
	return &cfg, nil
}

func loadJSON(path string, data []byte, cfg *types.Config) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return &Error{Path: path, Reason: "malformed JSON", Err: err}
	}
	if issues := validateSchema(doc); len(issues) > 0 {
		return &Error{Path: path, Reason: "schema validation failed", Issues: issues}
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return &Error{Path: path, Reason: "decoding config", Err: err}
	}
	return nil
}

// validate applies the structural checks shared by all formats:
// required fields must be present and non-empty.
func validate(cfg *types.Config) []Issue {
	var issues []Issue
	if strings.TrimSpace(cfg.Name) == "" {
		issues = append(issues, Issue{Location: "#/name", Message: "name is required"})
	}
	if len(cfg.Sections) == 0 {
		issues = append(issues, Issue{Location: "#/sections", Message: "at least one section is required"})
	}
	for i, section := range cfg.Sections {
		if strings.TrimSpace(section.Category) == "" {
			issues = append(issues, Issue{
				Location: fmt.Sprintf("#/sections/%d/category", i),
				Message:  "category is required",
			})
		}
		for j, page := range section.Pages {
			if strings.TrimSpace(page.Title) == "" {
				issues = append(issues, Issue{
					Location: fmt.Sprintf("#/sections/%d/pages/%d/title", i, j),
					Message:  "title is required",
				})
			}
		}
	}
	return issues
}

// Info summarizes one file in a configs directory. Files that fail to
// load still get an entry, with Err set.
type Info struct {
	File        string
	Name        string
	Version     string
	Description string
	Sections    int
	Pages       int
	Err         error
}

// List enumerates the config files (*.json, *.yaml, *.yml) in dir,
// sorted by filename, loading each for its summary. A file that fails
// to load is reported in its Info rather than aborting the listing.
func List(dir string) ([]Info, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading configs directory %s: %w", dir, err)
	}

	var infos []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".json", ".yaml", ".yml":
		default:
			continue
		}

		info := Info{File: entry.Name()}
		cfg, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			info.Err = err
		} else {
			info.Name = cfg.Name
			info.Version = cfg.Version
			info.Description = cfg.Description
			info.Sections = len(cfg.Sections)
			info.Pages = cfg.TotalPages()
		}
		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].File < infos[j].File })
	return infos, nil
}
