// Package prompts provides the judgment prompt templates, stored as an
// embedded JSON file and loaded once at first use.
package prompts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed judgments.json
var judgmentFile []byte

var (
	loadOnce sync.Once
	loaded   map[string]string
	loadErr  error
)

// Prompt keys available in judgments.json.
const (
	KeyTechnical     = "technical_judgment"
	KeyCommunication = "communication_judgment"
	KeyICPAlignment  = "icp_alignment_judgment"
)

// Get retrieves a judgment prompt template by key.
func Get(key string) (string, error) {
	loadOnce.Do(func() {
		loadErr = json.Unmarshal(judgmentFile, &loaded)
	})
	if loadErr != nil {
		return "", fmt.Errorf("failed to parse embedded prompt file: %w", loadErr)
	}

	prompt, exists := loaded[key]
	if !exists {
		return "", fmt.Errorf("prompt key %q not found", key)
	}
	return prompt, nil
}

// MustGet retrieves a prompt by key, panicking if not found. Use for
// prompts required at initialization time.
func MustGet(key string) string {
	prompt, err := Get(key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format replaces template placeholders in the form {{.Key}} with values
// from data. A simple template system keeps the JSON file readable.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}
