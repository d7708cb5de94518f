package passmeter

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries extra ranked dictionaries to merge over the frozen set.
// List position is the rank: most common token first.
type Config struct {
	Dictionaries map[string][]string `yaml:"dictionaries"`
}

// NewConfig reads config from file
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateSample creates a sample yaml file with default/sample values
func GenerateSample(filePath string) error {
	cfg := Config{
		Dictionaries: map[string][]string{
			"company_terms": {"acme", "acmecorp", "wile", "roadrunner"},
		},
	}
	bin, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}
