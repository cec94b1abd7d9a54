package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rue/internal/diagfmt"
	"rue/internal/driver"
	"rue/internal/source"
	"rue/internal/token"
	"rue/internal/ui"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <path>",
	Short: "Tokenize a Rue source file or directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]
	format, _ := cmd.Flags().GetString("format")

	cfg, _ := loadConfig(path)
	opts := resolveRenderOptions(cmd, cfg)

	if isDir(path) {
		var fileSet *source.FileSet
		var results []driver.TokenizeResult
		err := ui.RunWithSpinner("tokenizing "+path, func() error {
			var runErr error
			fileSet, results, runErr = driver.TokenizeDir(context.Background(), path, jobsFlag(cmd))
			return runErr
		})
		if err != nil {
			return err
		}
		return printTokenizeDir(cmd, fileSet, results, format, opts)
	}

	fileSet := source.NewFileSet()
	result := driver.Tokenize(fileSet, path)
	if result.Err != nil {
		fmt.Fprintln(os.Stderr, diagfmt.RenderError(result.Err, path, fileSet, opts))
		return fmt.Errorf("tokenization failed")
	}
	return printTokens(cmd.OutOrStdout(), result.Tokens, format)
}

func printTokenizeDir(cmd *cobra.Command, fileSet *source.FileSet, results []driver.TokenizeResult, format string, opts diagfmt.Options) error {
	failed := false
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		failed = true
		fmt.Fprintln(os.Stderr, diagfmt.RenderError(r.Err, r.Path, fileSet, opts))
	}
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", r.Path)
		if err := printTokens(cmd.OutOrStdout(), r.Tokens, format); err != nil {
			return err
		}
	}
	if failed {
		return fmt.Errorf("tokenization failed for one or more files")
	}
	return nil
}

// tokenJSON is the wire shape for --format json; token.Token itself has
// no json tags since only this CLI-facing view needs them.
type tokenJSON struct {
	Kind  string `json:"kind"`
	Text  string `json:"text"`
	Start uint32 `json:"start"`
	Stop  uint32 `json:"stop"`
}

func printTokens(w io.Writer, tokens []token.Token, format string) error {
	switch format {
	case "json":
		out := make([]tokenJSON, len(tokens))
		for i, t := range tokens {
			out[i] = tokenJSON{Kind: t.Kind.String(), Text: t.Text, Start: t.Start(), Stop: t.Stop()}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "pretty":
		_, err := fmt.Fprintln(w, diagfmt.Stringify(tokens))
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
