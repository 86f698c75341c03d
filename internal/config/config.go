package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/radix-cli/radix/internal/base"
)

// Config holds the startup defaults. The file is only ever read:
// base changes made with :from/:to during a session are not written
// back.
type Config struct {
	InputBase  string `json:"input_base"`
	OutputBase string `json:"output_base"`
	Debug      bool   `json:"debug"`
}

// DefaultConfig returns the defaults used when no config file exists:
// hex in, binary out.
func DefaultConfig() *Config {
	return &Config{
		InputBase:  "hex",
		OutputBase: "bin",
	}
}

// globalConfigPath returns the global config file path (~/.radix/config.json)
func globalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".radix", "config.json"), nil
}

// projectConfigPath returns the project-level config path (.radix/config.json in cwd)
func projectConfigPath() string {
	return filepath.Join(".radix", "config.json")
}

// Load reads the config from disk, checking the project file first,
// then the global one. A missing file yields the defaults.
func Load() (*Config, error) {
	if data, err := os.ReadFile(projectConfigPath()); err == nil {
		return parse(data)
	}

	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(globalPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return parse(data)
}

func parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if _, _, err := cfg.Bases(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Bases resolves the configured base names into Base values.
func (c *Config) Bases() (in, out base.Base, err error) {
	in, err = base.ParseName(c.InputBase)
	if err != nil {
		return 0, 0, fmt.Errorf("input_base: %w", err)
	}
	out, err = base.ParseName(c.OutputBase)
	if err != nil {
		return 0, 0, fmt.Errorf("output_base: %w", err)
	}
	return in, out, nil
}
