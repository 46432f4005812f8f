// Package config holds the bootstrap settings: built-in defaults, an optional
// envboot.yaml file at the project root, and command-line overrides.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/envboot/internal/model"
)

// FileName is the name of the optional config file at the project root.
const FileName = "envboot.yaml"

// Strategy names accepted by the strategy setting.
const (
	StrategyAuto = "auto"
	StrategySync = "sync"
	StrategyPip  = "pip"
)

var strategies = []string{StrategyAuto, StrategySync, StrategyPip}

// Config holds the effective bootstrap settings.
type Config struct {
	// RuntimeDir is the runtime environment directory, relative to the
	// project root.
	RuntimeDir string `yaml:"runtime_dir"`
	// MinVersion is the minimum interpreter version, e.g. "3.11".
	MinVersion string `yaml:"min_version"`
	// CIVariable names the environment variable that switches on CI mode.
	CIVariable string `yaml:"ci_variable"`
	// InterpreterVariable names the environment variable holding an
	// interpreter override.
	InterpreterVariable string `yaml:"interpreter_variable"`
	// Strategy selects the dependency strategy: auto, sync or pip.
	Strategy string `yaml:"strategy"`
	// HookConfig is the hook framework config file, relative to the project
	// root.
	HookConfig string `yaml:"hook_config"`
	// Ignore lists doublestar globs of directories excluded from manifest
	// discovery, relative to the project root.
	Ignore []string `yaml:"ignore"`
}

// Overrides carries values set on the command line. Empty fields are unset.
type Overrides struct {
	RuntimeDir string
	MinVersion string
	Strategy   string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		RuntimeDir:          ".venv",
		MinVersion:          "3.11",
		CIVariable:          "CI",
		InterpreterVariable: "PYTHON",
		Strategy:            StrategyAuto,
		HookConfig:          ".pre-commit-config.yaml",
		Ignore:              []string{"**/node_modules", "**/__pycache__"},
	}
}

// Parse layers the YAML document data over the defaults and applies the
// overrides on top. A nil or empty data means no config file.
func Parse(data []byte, overrides Overrides) (Config, error) {
	cfg := Default()

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", FileName, err)
		}
	}

	cfg.apply(overrides)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) apply(o Overrides) {
	if o.RuntimeDir != "" {
		c.RuntimeDir = o.RuntimeDir
	}

	if o.MinVersion != "" {
		c.MinVersion = o.MinVersion
	}

	if o.Strategy != "" {
		c.Strategy = o.Strategy
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.RuntimeDir) == "" {
		problems = append(problems, "runtime_dir is required")
	}

	if c.RuntimeDir != "" && !isRuntimeSubdir(c.RuntimeDir) {
		problems = append(problems, fmt.Sprintf("runtime_dir %q must be a subdirectory inside the project root, outside .git", c.RuntimeDir))
	}

	if _, err := m.ParseVersion(c.MinVersion); err != nil {
		problems = append(problems, fmt.Sprintf("min_version: %v", err))
	}

	if c.CIVariable == "" {
		problems = append(problems, "ci_variable is required")
	}

	if c.InterpreterVariable == "" {
		problems = append(problems, "interpreter_variable is required")
	}

	if !slices.Contains(strategies, c.Strategy) {
		problems = append(problems, fmt.Sprintf("strategy %q must be one of %s", c.Strategy, strings.Join(strategies, ", ")))
	}

	if len(problems) > 0 {
		return errors.New("invalid config: " + strings.Join(problems, "; "))
	}

	return nil
}

// isRuntimeSubdir reports whether dir names a directory strictly below the
// project root. The root itself, absolute paths, paths escaping the root and
// anything under .git are rejected: the runtime directory gets deleted when
// it is repaired.
func isRuntimeSubdir(dir string) bool {
	if !filepath.IsLocal(dir) {
		return false
	}

	clean := filepath.Clean(dir)
	if clean == "." {
		return false
	}

	return !slices.Contains(strings.Split(filepath.ToSlash(clean), "/"), ".git")
}

// MinimumVersion returns the parsed minimum interpreter version. It must only
// be called on a validated Config.
func (c Config) MinimumVersion() m.Version {
	return m.MustParseVersion(c.MinVersion)
}
