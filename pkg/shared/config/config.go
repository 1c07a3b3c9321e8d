package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

type Config struct {
	Logger    Logger    `yaml:"logger"`
	Validator Validator `yaml:"validator"`
}

type Logger struct {
	Level string `yaml:"level"`
}

// Validator holds defaults for the validate command; command-line flags take
// precedence.
type Validator struct {
	Strict bool   `yaml:"strict"`
	Format string `yaml:"format"`
}

// ValidateConfigPath checks that the given path points at a readable file.
func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

// LoadYAML decodes the YAML file at configPath into data.
func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return err
	}

	return nil
}

// NewConfig loads the YAML config at configPath. A missing file is not an
// error: the tool must run with defaults when no config exists.
func NewConfig(configPath string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadYAML(configPath, config); err != nil {
		return nil, err
	}

	return config, nil
}

// ValidateConfig rejects values the commands cannot honor.
func ValidateConfig(config *Config) error {
	switch config.Validator.Format {
	case "", "console", "sarif":
		return nil
	}
	return fmt.Errorf("unsupported report format %q in config", config.Validator.Format)
}
