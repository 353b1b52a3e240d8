package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds project-level settings loaded from outline.yml.
type ProjectConfig struct {
	// MinLines is the minimum definition size in lines; 0 keeps the default.
	MinLines int `yaml:"minLines,omitempty"`
	// Concurrency bounds the batch worker pool; 0 keeps the default.
	Concurrency int `yaml:"concurrency,omitempty"`
	// IgnoreGlobs are glob patterns excluded from directory walks.
	IgnoreGlobs []string `yaml:"ignoreGlobs,omitempty"`
	// Languages restricts extraction to the named languages; empty means all.
	Languages []string `yaml:"languages,omitempty"`
	// MaxFiles bounds how many candidate files a walk may return.
	MaxFiles int `yaml:"maxFiles,omitempty"`
	// Verbose enables progress logging.
	Verbose bool `yaml:"verbose,omitempty"`
}

// Load attempts to read outline.yml or outline.yaml from the given
// directory. Returns a zero-value config (not an error) if no config file
// exists.
func Load(dir string) (*ProjectConfig, error) {
	for _, name := range []string{"outline.yml", "outline.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg ProjectConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &ProjectConfig{}, nil
}
