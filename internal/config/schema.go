// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"errors"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// configSchema is the JSON Schema for site config files. It constrains
// field types and required fields; unknown fields are allowed so older
// versions of docforge can read newer configs.
const configSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name", "sections"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "base_url": {"type": "string"},
    "docs_base": {"type": "string"},
    "version": {"type": "string"},
    "description": {"type": "string"},
    "sections": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["category"],
        "properties": {
          "category": {"type": "string", "minLength": 1},
          "pages": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["title"],
              "properties": {
                "title": {"type": "string", "minLength": 1},
                "url": {"type": "string"}
              }
            }
          }
        }
      }
    },
    "scraping": {
      "type": "object",
      "properties": {
        "rate_limit_ms": {"type": "integer", "minimum": 0},
        "max_retries": {"type": "integer", "minimum": 0},
        "timeout_ms": {"type": "integer", "minimum": 0},
        "user_agent": {"type": "string"},
        "selectors": {
          "type": "object",
          "additionalProperties": {"type": "string"}
        }
      }
    },
    "output": {
      "type": "object",
      "properties": {
        "format": {"type": "string", "enum": ["markdown"]},
        "include_metadata": {"type": "boolean"},
        "preserve_code_blocks": {"type": "boolean"},
        "create_index": {"type": "boolean"}
      }
    }
  }
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("config.json", strings.NewReader(configSchema)); err != nil {
			schemaErr = err
			return
		}
		schema, schemaErr = compiler.Compile("config.json")
	})
	return schema, schemaErr
}

// validateSchema checks a decoded JSON document against the config
// schema and returns the leaf validation failures.
func validateSchema(doc any) []Issue {
	sch, err := compiledSchema()
	if err != nil {
		return []Issue{{Message: "compiling config schema: " + err.Error()}}
	}
	if err := sch.Validate(doc); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return collectIssues(validationErr)
		}
		return []Issue{{Message: err.Error()}}
	}
	return nil
}

// collectIssues flattens a validation error tree into its leaves.
func collectIssues(err *jsonschema.ValidationError) []Issue {
	var issues []Issue
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, Issue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
