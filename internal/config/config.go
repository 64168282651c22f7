// Package config loads gitsub configuration from
// ~/.config/gitsub/config.toml. All values have working defaults; a
// missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"gitsub/internal/subproject"
)

// Probe implementation names accepted in the config file.
const (
	ProbeGit        = "git"        // verify via the git binary
	ProbeStructural = "structural" // verify the on-disk layout only
)

// Config holds the gitsub configuration.
type Config struct {
	MetadataDir string   `toml:"metadata_dir"` // convention name for the metadata directory
	Probe       string   `toml:"probe"`        // "git" or "structural"
	SkipDirs    []string `toml:"skip_dirs"`    // directory names discovery skips
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		MetadataDir: subproject.DefaultMetadataDir,
		Probe:       ProbeGit,
	}
}

// configPath returns the path to the config file
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gitsub", "config.toml"), nil
}

// Load reads the config file, falling back to defaults when it does not
// exist.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), fmt.Errorf("resolve config path: %w", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config file at path, falling back to defaults when it
// does not exist.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.MetadataDir == "" {
		return fmt.Errorf("metadata_dir must not be empty")
	}
	if c.MetadataDir == ".git" {
		return fmt.Errorf("metadata_dir must not be the standard .git name")
	}
	if strings.ContainsRune(c.MetadataDir, os.PathSeparator) {
		return fmt.Errorf("metadata_dir must be a single directory name, got %q", c.MetadataDir)
	}
	switch c.Probe {
	case ProbeGit, ProbeStructural:
	default:
		return fmt.Errorf("probe must be %q or %q, got %q", ProbeGit, ProbeStructural, c.Probe)
	}
	for _, d := range c.SkipDirs {
		if d == "" || strings.ContainsRune(d, os.PathSeparator) {
			return fmt.Errorf("skip_dirs entries must be plain directory names, got %q", d)
		}
	}
	return nil
}

// NewProbe returns the configured probe implementation.
func (c *Config) NewProbe() subproject.Probe {
	if c.Probe == ProbeStructural {
		return subproject.StructuralProbe{MetadataDir: c.MetadataDir}
	}
	return subproject.StatusProbe{}
}

// Options builds linker options from the configuration.
func (c *Config) Options(dryRun bool) subproject.Options {
	return subproject.Options{
		MetadataDir: c.MetadataDir,
		Probe:       c.NewProbe(),
		DryRun:      dryRun,
		SkipDirs:    c.SkipDirs,
	}
}
