package rueconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"rue/internal/rueconfig"
)

func TestFindWalksUpToParentDirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "rue.toml"), []byte("[output]\nwidth = 100\n"), 0o600); err != nil {
		t.Fatalf("write rue.toml: %v", err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, ok, err := rueconfig.Find(nested)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !ok {
		t.Fatalf("expected to find rue.toml")
	}
	want := filepath.Join(root, "rue.toml")
	if path != want {
		t.Fatalf("path = %s, want %s", path, want)
	}
}

func TestFindReturnsFalseWhenAbsent(t *testing.T) {
	_, ok, err := rueconfig.Find(t.TempDir())
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if ok {
		t.Fatalf("expected no rue.toml to be found")
	}
}

func TestLoadFillsDefaultsForUnsetTables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rue.toml")
	if err := os.WriteFile(path, []byte("[output]\nwidth = 120\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := rueconfig.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Output.Width != 120 {
		t.Fatalf("width = %d, want 120", cfg.Output.Width)
	}
	if !cfg.Cache.Enabled {
		t.Fatalf("expected cache.enabled to default to true")
	}
}

func TestCacheDirHonorsExplicitRelativeDir(t *testing.T) {
	cfg := rueconfig.Config{Cache: rueconfig.CacheConfig{Enabled: true, Dir: ".rue-cache"}}
	dir, err := cfg.CacheDir("/proj")
	if err != nil {
		t.Fatalf("cache dir: %v", err)
	}
	want := filepath.Join("/proj", ".rue-cache")
	if dir != want {
		t.Fatalf("dir = %s, want %s", dir, want)
	}
}

func TestCacheDirEmptyWhenDisabled(t *testing.T) {
	cfg := rueconfig.Config{Cache: rueconfig.CacheConfig{Enabled: false}}
	dir, err := cfg.CacheDir("/proj")
	if err != nil {
		t.Fatalf("cache dir: %v", err)
	}
	if dir != "" {
		t.Fatalf("expected empty dir when cache disabled, got %q", dir)
	}
}
