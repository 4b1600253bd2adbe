package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"rental-notification-service/internal/domain"
)

//go:embed default_templates.json
var defaultTemplates []byte

// LoadTemplates reads the quick connect templates from path, or the built-in
// set when path is empty. Field types are not checked here.
func LoadTemplates(path string) (domain.Templates, error) {
	data := defaultTemplates
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return domain.Templates{}, fmt.Errorf("failed to read templates: %w", err)
		}
		data = b
	}

	var t domain.Templates
	if err := json.Unmarshal(data, &t); err != nil {
		return domain.Templates{}, fmt.Errorf("failed to parse templates: %w", err)
	}
	return t, nil
}
