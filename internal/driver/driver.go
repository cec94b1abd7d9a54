// Package driver wires the lexer and parser to the filesystem: loading
// files into a shared FileSet, running Lex/Parse against them, and
// fanning a whole directory out across goroutines for the CLI's
// directory-mode commands.
package driver

import (
	"rue/internal/cst"
	"rue/internal/diag"
	"rue/internal/lexer"
	"rue/internal/parser"
	"rue/internal/rcache"
	"rue/internal/source"
	"rue/internal/token"
)

// TokenizeResult is one file's tokenization outcome.
type TokenizeResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Err    *diag.Diagnostic
}

// ParseResult is one file's parse outcome, tokens included so callers
// don't need to re-lex to inspect what was fed to the parser.
type ParseResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Tree   *cst.Tree
	Err    *diag.Diagnostic
}

// Tokenize loads path into fileSet and lexes it in full.
func Tokenize(fileSet *source.FileSet, path string) TokenizeResult {
	fileID, err := fileSet.Load(path)
	if err != nil {
		return TokenizeResult{
			Path: path,
			Err:  diag.NewIOError(path, err),
		}
	}
	toks, lexErr := lexer.LexAll(fileSet.Get(fileID), lexer.Options{})
	return TokenizeResult{Path: path, FileID: fileID, Tokens: toks, Err: lexErr}
}

// Parse loads path into fileSet, lexes it, and parses the resulting
// tokens. A lex failure short-circuits before parsing is attempted.
func Parse(fileSet *source.FileSet, path string) ParseResult {
	tok := Tokenize(fileSet, path)
	if tok.Err != nil {
		return ParseResult{Path: path, FileID: tok.FileID, Err: tok.Err}
	}
	tree, parseErr := parser.Parse(tok.Tokens)
	return ParseResult{Path: path, FileID: tok.FileID, Tokens: tok.Tokens, Tree: tree, Err: parseErr}
}

// ParseCached behaves like Parse, but consults cache first and populates
// it afterward, keyed by the file's own content hash so an edit to the
// file is always a cache miss regardless of path or mtime.
func ParseCached(fileSet *source.FileSet, path string, cache *rcache.Cache) ParseResult {
	fileID, loadErr := fileSet.Load(path)
	if loadErr != nil {
		return ParseResult{Path: path, Err: diag.NewIOError(path, loadErr)}
	}
	file := fileSet.Get(fileID)
	digest := rcache.Sum(file.Content)

	if payload, hit := cache.Get(path, digest); hit {
		return ParseResult{Path: path, FileID: fileID, Tokens: payload.Tokens, Tree: payload.Tree, Err: payload.Err}
	}

	toks, lexErr := lexer.LexAll(file, lexer.Options{})
	if lexErr != nil {
		cache.Put(path, digest, rcache.Payload{Err: lexErr})
		return ParseResult{Path: path, FileID: fileID, Err: lexErr}
	}
	tree, parseErr := parser.Parse(toks)
	cache.Put(path, digest, rcache.Payload{Tokens: toks, Tree: tree, Err: parseErr})
	return ParseResult{Path: path, FileID: fileID, Tokens: toks, Tree: tree, Err: parseErr}
}

// TokenizeReport collects every failing result into a Report sorted by
// path, then span start.
func TokenizeReport(results []TokenizeResult) *diag.Report {
	report := diag.NewReport()
	for _, r := range results {
		report.Add(r.FileID, r.Path, r.Err)
	}
	report.Sort()
	return report
}

// ParseReport collects every failing result into a sorted Report.
func ParseReport(results []ParseResult) *diag.Report {
	report := diag.NewReport()
	for _, r := range results {
		report.Add(r.FileID, r.Path, r.Err)
	}
	report.Sort()
	return report
}
