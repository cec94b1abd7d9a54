// Package rueconfig loads rue.toml, the optional project-level config
// file that sets defaults for the CLI's tokenize/parse commands: output
// width, coloring, and the on-disk parse cache. Its [run] table is decoded
// too, but the CLI takes its directory-mode job count from --jobs only.
package rueconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the decoded contents of rue.toml.
type Config struct {
	Output OutputConfig `toml:"output"`
	Cache  CacheConfig  `toml:"cache"`
	Run    RunConfig    `toml:"run"`
}

// OutputConfig controls how diagnostics are rendered.
type OutputConfig struct {
	Width int    `toml:"width"` // 0 means auto-detect from the terminal
	Color string `toml:"color"` // "auto", "always", or "never"
}

// CacheConfig controls the on-disk parse cache.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"` // empty means the default XDG cache location
}

// RunConfig holds the [run] table. The CLI does not read it.
type RunConfig struct {
	Jobs int `toml:"jobs"` // 0 means GOMAXPROCS
}

// Default returns the configuration used when no rue.toml is found.
func Default() Config {
	return Config{
		Output: OutputConfig{Color: "auto"},
		Cache:  CacheConfig{Enabled: true},
	}
}

// Manifest pairs a decoded Config with the file and directory it came
// from, so callers can resolve cache paths relative to the project root.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Find walks upward from startDir looking for rue.toml, the way a VCS
// root or go.mod is discovered: the first directory containing the file
// wins. Returns ok=false, no error, if none is found before reaching the
// filesystem root.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "rue.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes rue.toml at path, filling in defaults for any table left
// unset.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

// LoadManifest finds and loads rue.toml starting from startDir, or
// returns ok=false if the project carries no config at all — a missing
// rue.toml is not an error, just a signal to use Default().
func LoadManifest(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// CacheDir resolves the effective disk cache directory: an explicit
// rue.toml [cache].dir, else the standard XDG cache location for rue.
func (c Config) CacheDir(projectRoot string) (string, error) {
	if !c.Cache.Enabled {
		return "", nil
	}
	if c.Cache.Dir != "" {
		if filepath.IsAbs(c.Cache.Dir) {
			return c.Cache.Dir, nil
		}
		return filepath.Join(projectRoot, c.Cache.Dir), nil
	}
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, "rue"), nil
}
