package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/envboot/internal/model"
)

func TestParse(t *testing.T) {
	t.Run("defaults without a config file", func(t *testing.T) {
		cfg, err := Parse(nil, Overrides{})
		require.NoError(t, err)

		assert.Equal(t, Default(), cfg)
		assert.Equal(t, m.Version{Major: 3, Minor: 11}, cfg.MinimumVersion())
	})

	t.Run("file values replace defaults", func(t *testing.T) {
		data := []byte("runtime_dir: env\nmin_version: \"3.12\"\nstrategy: pip\nignore:\n  - vendor\n")

		cfg, err := Parse(data, Overrides{})
		require.NoError(t, err)

		assert.Equal(t, "env", cfg.RuntimeDir)
		assert.Equal(t, "3.12", cfg.MinVersion)
		assert.Equal(t, StrategyPip, cfg.Strategy)
		assert.Equal(t, []string{"vendor"}, cfg.Ignore)
		assert.Equal(t, "CI", cfg.CIVariable, "unset keys keep their defaults")
	})

	t.Run("overrides win over the file", func(t *testing.T) {
		data := []byte("strategy: pip\nmin_version: \"3.12\"\n")

		cfg, err := Parse(data, Overrides{Strategy: StrategySync, RuntimeDir: ".env311"})
		require.NoError(t, err)

		assert.Equal(t, StrategySync, cfg.Strategy)
		assert.Equal(t, ".env311", cfg.RuntimeDir)
		assert.Equal(t, "3.12", cfg.MinVersion)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("strategy: [pip"), Overrides{})
		assert.ErrorContains(t, err, FileName)
	})
}

func TestConfig_Validate(t *testing.T) {
	cases := map[string]struct {
		mutate  func(*Config)
		wantErr string
	}{
		"unknown strategy": {
			mutate:  func(c *Config) { c.Strategy = "poetry" },
			wantErr: `strategy "poetry"`,
		},
		"bad minimum version": {
			mutate:  func(c *Config) { c.MinVersion = "latest" },
			wantErr: "min_version",
		},
		"runtime dir escapes the root": {
			mutate:  func(c *Config) { c.RuntimeDir = "../shared-venv" },
			wantErr: "inside the project root",
		},
		"runtime dir is the root": {
			mutate:  func(c *Config) { c.RuntimeDir = "." },
			wantErr: "runtime_dir",
		},
		"runtime dir is the root with a slash": {
			mutate:  func(c *Config) { c.RuntimeDir = "./" },
			wantErr: "runtime_dir",
		},
		"runtime dir is absolute": {
			mutate:  func(c *Config) { c.RuntimeDir = "/abs" },
			wantErr: "runtime_dir",
		},
		"runtime dir is the filesystem root": {
			mutate:  func(c *Config) { c.RuntimeDir = "/" },
			wantErr: "runtime_dir",
		},
		"runtime dir climbs out after a subdirectory": {
			mutate:  func(c *Config) { c.RuntimeDir = "a/../.." },
			wantErr: "runtime_dir",
		},
		"runtime dir collapses to the root": {
			mutate:  func(c *Config) { c.RuntimeDir = "a/.." },
			wantErr: "runtime_dir",
		},
		"runtime dir inside .git": {
			mutate:  func(c *Config) { c.RuntimeDir = ".git/venv" },
			wantErr: ".git",
		},
		"empty ci variable": {
			mutate:  func(c *Config) { c.CIVariable = "" },
			wantErr: "ci_variable",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)

			assert.ErrorContains(t, cfg.Validate(), tc.wantErr)
		})
	}

	t.Run("accepted runtime dirs", func(t *testing.T) {
		for _, dir := range []string{".venv", "my..venv", "build/venv", "./env"} {
			cfg := Default()
			cfg.RuntimeDir = dir

			assert.NoError(t, cfg.Validate(), dir)
		}
	})

	t.Run("reports all problems together", func(t *testing.T) {
		cfg := Default()
		cfg.Strategy = "x"
		cfg.InterpreterVariable = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "strategy")
		assert.Contains(t, err.Error(), "interpreter_variable")
	})
}
