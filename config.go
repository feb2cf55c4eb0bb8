package vcpatch

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "ValkyriaChroniclesFix.yml"

// Config mirrors the yml shared with the fix DLL. Only resolution matters for
// the executable patch.
type Config struct {
	Name         string            `yaml:"name"`
	MasterEnable *bool             `yaml:"masterEnable"`
	Resolution   *ResolutionConfig `yaml:"resolution"`
	Fixes        FixesConfig       `yaml:"fixes"`
}

type ResolutionConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type FixesConfig struct {
	CenterHud struct {
		Enable bool `yaml:"enable"`
	} `yaml:"centerHud"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config '%s' not found: %w", path, err)
		}
		return nil, fmt.Errorf("read config '%s': %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config '%s': %w", path, err)
	}
	if cfg.Resolution == nil {
		return nil, fmt.Errorf("config '%s': missing 'resolution'", path)
	}
	return &cfg, nil
}

// Enabled reports masterEnable, which defaults to true when absent.
func (c *Config) Enabled() bool {
	return c.MasterEnable == nil || *c.MasterEnable
}

func (c *Config) Resolve() Resolution {
	return Resolution{Width: c.Resolution.Width, Height: c.Resolution.Height}
}
