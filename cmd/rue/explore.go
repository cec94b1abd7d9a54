package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"rue/internal/diagfmt"
	"rue/internal/driver"
	"rue/internal/source"
	"rue/internal/ui"
)

var exploreCmd = &cobra.Command{
	Use:   "explore <file>",
	Short: "Interactively browse a parsed file's concrete syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runExplore,
}

func runExplore(cmd *cobra.Command, args []string) error {
	path := args[0]
	cfg, root := loadConfig(path)
	opts := resolveRenderOptions(cmd, cfg)

	cache, err := openCache(cmd, cfg, root)
	if err != nil {
		return err
	}
	fileSet := source.NewFileSet()
	result := driver.ParseCached(fileSet, path, cache)
	if result.Err != nil {
		fmt.Fprintln(os.Stderr, diagfmt.RenderError(result.Err, path, fileSet, opts))
		return fmt.Errorf("parsing failed")
	}

	model := ui.NewTreeModel(result.Tree)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, err = program.Run()
	return err
}
