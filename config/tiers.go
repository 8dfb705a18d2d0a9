package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/telartis/picqer-ontime/services/shipping"
)

type tierFile struct {
	Tiers []shipping.Tier `yaml:"tiers"`
}

// LoadTiers reads a product tier table from a YAML file.
func LoadTiers(path string) ([]shipping.Tier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var f tierFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := shipping.ValidateTiers(f.Tiers); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return f.Tiers, nil
}
