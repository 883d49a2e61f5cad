package platform

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig represents the optional config file.
type FileConfig struct {
	Dir          string `yaml:"dir,omitempty"`
	File         string `yaml:"file,omitempty"`
	Notebook     string `yaml:"notebook,omitempty"`
	Editor       string `yaml:"editor,omitempty"`
	StrictDelete bool   `yaml:"strict_delete,omitempty"`
	Versioning   bool   `yaml:"versioning,omitempty"`
}

// LoadConfig reads the config file at path.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadConfig(path string) (*FileConfig, error) {
	if path == "" {
		return &FileConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &FileConfig{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.Dir = expandNonEmpty(cfg.Dir)
	cfg.File = expandNonEmpty(cfg.File)
	return &cfg, nil
}

func expandNonEmpty(path string) string {
	if path == "" {
		return ""
	}
	return ExpandPath(path)
}

// Options converts the file values to factory options.
// Flags applied after these override them.
func (c *FileConfig) Options() []Option {
	var opts []Option
	if c.Dir != "" {
		opts = append(opts, WithDir(c.Dir))
	}
	if c.File != "" {
		opts = append(opts, WithFile(c.File))
	}
	if c.Notebook != "" {
		opts = append(opts, WithDefaultNotebook(c.Notebook))
	}
	if c.Editor != "" {
		opts = append(opts, WithEditorProgram(c.Editor))
	}
	if c.StrictDelete {
		opts = append(opts, WithStrictDelete(true))
	}
	if c.Versioning {
		opts = append(opts, WithVersioning(true))
	}
	return opts
}
