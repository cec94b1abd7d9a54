package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"rue/internal/diagfmt"
	"rue/internal/rcache"
	"rue/internal/rueconfig"
)

// resolveRenderOptions merges rue.toml's [output] table with any
// explicit --color/--width flags, flags taking precedence.
func resolveRenderOptions(cmd *cobra.Command, cfg rueconfig.Config) diagfmt.Options {
	opts := diagfmt.Options{Width: cfg.Output.Width}

	switch cfg.Output.Color {
	case "always":
		opts.Color = diagfmt.ColorAlways
	case "never":
		opts.Color = diagfmt.ColorNever
	default:
		opts.Color = diagfmt.ColorAuto
	}

	if width, err := cmd.Root().PersistentFlags().GetInt("width"); err == nil && width > 0 {
		opts.Width = width
	}
	if colorFlag, err := cmd.Root().PersistentFlags().GetString("color"); err == nil && cmd.Root().PersistentFlags().Changed("color") {
		switch colorFlag {
		case "always":
			opts.Color = diagfmt.ColorAlways
		case "never":
			opts.Color = diagfmt.ColorNever
		default:
			opts.Color = diagfmt.ColorAuto
		}
	}
	return opts
}

// loadConfig loads rue.toml starting from path's directory (or path
// itself when it is a directory), falling back silently to
// rueconfig.Default() when no manifest is present.
func loadConfig(path string) (rueconfig.Config, string) {
	dir := path
	if !isDir(dir) {
		dir = filepath.Dir(dir)
	}
	manifest, ok, err := rueconfig.LoadManifest(dir)
	if err != nil || !ok {
		return rueconfig.Default(), dir
	}
	return manifest.Config, manifest.Root
}

// openCache opens the parse cache described by cfg, unless --no-cache
// was passed, in which case it returns an in-memory-only cache that
// never touches disk.
func openCache(cmd *cobra.Command, cfg rueconfig.Config, projectRoot string) (*rcache.Cache, error) {
	if noCache, err := cmd.Root().PersistentFlags().GetBool("no-cache"); err == nil && noCache {
		return rcache.Open("")
	}
	dir, err := cfg.CacheDir(projectRoot)
	if err != nil {
		return nil, err
	}
	return rcache.Open(dir)
}

func jobsFlag(cmd *cobra.Command) int {
	jobs, _ := cmd.Root().PersistentFlags().GetInt("jobs")
	return jobs
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
