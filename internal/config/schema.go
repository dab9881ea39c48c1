package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed config.schema.json
var schemaData []byte

var (
	configSchema *jsonschema.Schema
	compileOnce  sync.Once
	compileErr   error
)

func compileSchema() error {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaData))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal config schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("config.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add config schema resource: %w", err)
			return
		}
		configSchema, err = compiler.Compile("config.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile config schema: %w", err)
		}
	})
	return compileErr
}

// ValidateYAML checks a YAML config document against the config schema.
// The document is round-tripped through JSON so the validator sees the same
// value types it would for a JSON file.
func ValidateYAML(data []byte) error {
	if err := compileSchema(); err != nil {
		return err
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	if raw == nil {
		return nil
	}
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("converting YAML to JSON: %w", err)
	}

	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := configSchema.Validate(v); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
