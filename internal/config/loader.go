package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadAll reads game.yaml and catalog.yaml from dir. An empty dir yields the built-in defaults.
func LoadAll(dir string) (*GameConfig, *CatalogConfig, error) {
	if dir == "" {
		return DefaultGame(), DefaultCatalog(), nil
	}
	var gc GameConfig
	var cc CatalogConfig
	if err := loadYAML(filepath.Join(dir, "game.yaml"), &gc); err != nil {
		return nil, nil, fmt.Errorf("load game config: %w", err)
	}
	if err := loadYAML(filepath.Join(dir, "catalog.yaml"), &cc); err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}
	gc.fillDefaults()
	if err := gc.Validate(); err != nil {
		return nil, nil, err
	}
	if len(cc.Items) == 0 {
		cc = *DefaultCatalog()
	}
	return &gc, &cc, nil
}
