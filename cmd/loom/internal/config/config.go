package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// Config represents the optional loom.yaml configuration.
type Config struct {
	Library LibraryConfig `yaml:"library"`
	Render  RenderConfig  `yaml:"render"`
}

// LibraryConfig contains component library metadata.
type LibraryConfig struct {
	Name   string `yaml:"name,omitempty"`
	Prefix string `yaml:"prefix,omitempty"`
}

// RenderConfig contains rendering defaults.
type RenderConfig struct {
	Dir string `yaml:"dir,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	Name       string
	Prefix     string
	Dir        string
}

// LoadOptional reads loom.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "loom.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read loom.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse loom.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads loom.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(cfg.Library.Name)
	if name == "" {
		name = defaultName(modulePath, dir)
	}

	prefix := strings.TrimSpace(cfg.Library.Prefix)
	if prefix == "" {
		prefix = defaultPrefix(name)
	}
	if err := validatePrefix(prefix); err != nil {
		return nil, err
	}

	docDir := strings.TrimSpace(cfg.Render.Dir)
	if docDir == "" {
		docDir = "ltr"
	}
	if docDir != "ltr" && docDir != "rtl" {
		return nil, fmt.Errorf("render.dir must be \"ltr\" or \"rtl\" (got %q)", docDir)
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		Name:       name,
		Prefix:     prefix,
		Dir:        docDir,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultName(modulePath, dir string) string {
	base := filepath.Base(dir)
	modName, _, ok := module.SplitPathVersion(modulePath)
	if ok {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 {
			base = parts[len(parts)-1]
		}
	}
	if base == "" {
		return "loom_lib"
	}
	return base
}

// defaultPrefix derives a tag prefix from the library name. Custom tags
// need a hyphen, so the prefix becomes "<name>-" with invalid characters
// dropped.
func defaultPrefix(name string) string {
	var out []rune
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z':
			out = append(out, r)
		case r >= '0' && r <= '9' && len(out) > 0:
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		out = []rune("x")
	}
	return string(out) + "-"
}

// validatePrefix enforces the custom-tag naming rules on the configured
// prefix: lowercase start, a trailing hyphen, no uppercase or spaces.
func validatePrefix(prefix string) error {
	if !strings.HasSuffix(prefix, "-") {
		return fmt.Errorf("library.prefix must end with '-' (got %q)", prefix)
	}
	body := strings.TrimSuffix(prefix, "-")
	if body == "" {
		return fmt.Errorf("library.prefix must have at least one character before '-' (got %q)", prefix)
	}
	if body[0] < 'a' || body[0] > 'z' {
		return fmt.Errorf("library.prefix must start with a lowercase letter (got %q)", prefix)
	}
	for _, r := range body {
		if !(r == '-' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
			return fmt.Errorf("library.prefix contains invalid character %q in %q", r, prefix)
		}
	}
	return nil
}
