package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rue/internal/cst"
	"rue/internal/diagfmt"
	"rue/internal/driver"
	"rue/internal/source"
	"rue/internal/ui"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <path>",
	Short: "Parse a Rue source file or directory into a concrete syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	format, _ := cmd.Flags().GetString("format")

	cfg, root := loadConfig(path)
	opts := resolveRenderOptions(cmd, cfg)

	if isDir(path) {
		var fileSet *source.FileSet
		var results []driver.ParseResult
		err := ui.RunWithSpinner("parsing "+path, func() error {
			var runErr error
			fileSet, results, runErr = driver.ParseDir(context.Background(), path, jobsFlag(cmd))
			return runErr
		})
		if err != nil {
			return err
		}
		return printParseDir(cmd, fileSet, results, format, opts)
	}

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
	return printTree(cmd.OutOrStdout(), result.Tree, format)
}

func printParseDir(cmd *cobra.Command, fileSet *source.FileSet, results []driver.ParseResult, format string, opts diagfmt.Options) error {
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
		if err := printTree(cmd.OutOrStdout(), r.Tree, format); err != nil {
			return err
		}
	}
	if failed {
		return fmt.Errorf("parsing failed for one or more files")
	}
	return nil
}

// treeJSON is the wire shape for --format json: a Kind name plus either
// a Text leaf or nested Children, mirroring cst.Node's tagged-sum shape.
type treeJSON struct {
	Kind     string      `json:"kind"`
	Text     string      `json:"text,omitempty"`
	Children []*treeJSON `json:"children,omitempty"`
}

func nodeToJSON(n cst.Node) *treeJSON {
	if n.IsToken() {
		return &treeJSON{Kind: n.Tok.Kind.String(), Text: n.Tok.Text}
	}
	out := &treeJSON{Kind: n.Sub.Kind.String()}
	for _, c := range n.Sub.Children {
		out.Children = append(out.Children, nodeToJSON(c))
	}
	return out
}

func printTree(w io.Writer, tree *cst.Tree, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(nodeToJSON(cst.Interior(tree)))
	case "pretty":
		_, err := fmt.Fprintln(w, diagfmt.Stringify(tree))
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
