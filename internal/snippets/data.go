package snippets

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// CheckJSON requires the snippet to be a single valid JSON document.
func CheckJSON(src string) error {
	if !json.Valid([]byte(src)) {
		return fmt.Errorf("invalid JSON document")
	}
	return nil
}

// CheckYAML requires the snippet to decode as YAML.
func CheckYAML(src string) error {
	var out any
	if err := yaml.Unmarshal([]byte(src), &out); err != nil {
		return fmt.Errorf("yaml syntax: %w", err)
	}
	return nil
}
