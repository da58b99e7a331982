package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const FileName = ".blogctl.yaml"

// Defaults mirror the documented recipes: Hugo as the generator, markdownlint
// in a docker container, and a root-level lint glob.
const (
	DefaultContentDir = "content/posts"
	DefaultGenerator  = "hugo"
	DefaultRuntime    = "docker"
	DefaultLintImage  = "ghcr.io/igorshubovych/markdownlint-cli:latest"
	DefaultLintGlob   = "*.md"
)

type Config struct {
	ContentDir       string `yaml:"content_dir,omitempty"`
	Generator        string `yaml:"generator,omitempty"`
	ContainerRuntime string `yaml:"container_runtime,omitempty"`
	LintImage        string `yaml:"lint_image,omitempty"`
	LintGlob         string `yaml:"lint_glob,omitempty"`
}

func Load(root string) (*Config, error) {
	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return withDefaults(&Config{}), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return withDefaults(&cfg), nil
}

func Save(root string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return os.WriteFile(filepath.Join(root, FileName), data, 0644)
}

func withDefaults(cfg *Config) *Config {
	if cfg.ContentDir == "" {
		cfg.ContentDir = DefaultContentDir
	}
	if cfg.Generator == "" {
		cfg.Generator = DefaultGenerator
	}
	if cfg.ContainerRuntime == "" {
		cfg.ContainerRuntime = DefaultRuntime
	}
	if cfg.LintImage == "" {
		cfg.LintImage = DefaultLintImage
	}
	if cfg.LintGlob == "" {
		cfg.LintGlob = DefaultLintGlob
	}
	return cfg
}
