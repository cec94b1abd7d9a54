package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"rue/internal/diag"
	"rue/internal/lexer"
	"rue/internal/parser"
	"rue/internal/source"
)

// listRueFiles returns a sorted list of every *.rue file under dir, for a
// deterministic scan/report order regardless of directory traversal order.
func listRueFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".rue") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// preload sequentially loads every file into fileSet. FileSet.Load
// mutates shared state (its file slice), so all loading
// happens here, before any goroutine touches the FileSet — the parallel
// stage below only ever reads it.
func preload(fileSet *source.FileSet, files []string) (map[string]source.FileID, map[string]error) {
	ids := make(map[string]source.FileID, len(files))
	loadErrs := make(map[string]error, len(files))
	for _, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrs[path] = err
			continue
		}
		ids[path] = id
	}
	return ids, loadErrs
}

// TokenizeDir tokenizes every *.rue file under dir concurrently. jobs
// caps the number of files processed at once; jobs <= 0 defaults to
// GOMAXPROCS. Results are returned in the same order listRueFiles
// produced them, independent of completion order.
func TokenizeDir(ctx context.Context, dir string, jobs int) (*source.FileSet, []TokenizeResult, error) {
	files, err := listRueFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}
	ids, loadErrs := preload(fileSet, files)
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]TokenizeResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			if loadErr, failed := loadErrs[path]; failed {
				results[i] = TokenizeResult{Path: path, Err: diag.NewIOError(path, loadErr)}
				return nil
			}
			fileID := ids[path]
			toks, lexErr := lexer.LexAll(fileSet.Get(fileID), lexer.Options{})
			results[i] = TokenizeResult{Path: path, FileID: fileID, Tokens: toks, Err: lexErr}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// ParseDir parses every *.rue file under dir concurrently, same
// concurrency and ordering contract as TokenizeDir.
func ParseDir(ctx context.Context, dir string, jobs int) (*source.FileSet, []ParseResult, error) {
	files, err := listRueFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}
	ids, loadErrs := preload(fileSet, files)
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]ParseResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			if loadErr, failed := loadErrs[path]; failed {
				results[i] = ParseResult{Path: path, Err: diag.NewIOError(path, loadErr)}
				return nil
			}
			fileID := ids[path]
			toks, lexErr := lexer.LexAll(fileSet.Get(fileID), lexer.Options{})
			if lexErr != nil {
				results[i] = ParseResult{Path: path, FileID: fileID, Err: lexErr}
				return nil
			}
			tree, parseErr := parser.Parse(toks)
			results[i] = ParseResult{Path: path, FileID: fileID, Tokens: toks, Tree: tree, Err: parseErr}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
