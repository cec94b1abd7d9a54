package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"rue/internal/cst"
	"rue/internal/driver"
	"rue/internal/source"
)

func TestTokenizeSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.rue")
	if err := os.WriteFile(path, []byte("val x = 5;"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	fs := source.NewFileSet()
	res := driver.Tokenize(fs, path)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(res.Tokens) == 0 {
		t.Fatalf("expected tokens")
	}
}

func TestTokenizeMissingFileReportsIOError(t *testing.T) {
	fs := source.NewFileSet()
	res := driver.Tokenize(fs, filepath.Join(t.TempDir(), "missing.rue"))
	if res.Err == nil {
		t.Fatalf("expected an IO error")
	}
}

func TestParseSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.rue")
	if err := os.WriteFile(path, []byte("if (a) { x; }"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	fs := source.NewFileSet()
	res := driver.Parse(fs, path)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Tree == nil || res.Tree.Kind != cst.Body {
		t.Fatalf("expected a Body tree, got %+v", res.Tree)
	}
}

func TestParseDirCollectsAllFiles(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.rue": "val x = 1;",
		"b.rue": "val y = ;", // deliberately broken
	}
	for name, src := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	_, results, err := driver.ParseDir(context.Background(), dir, 2)
	if err != nil {
		t.Fatalf("ParseDir error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	report := driver.ParseReport(results)
	if report.Len() != 1 {
		t.Fatalf("expected exactly 1 failing file, got %d", report.Len())
	}
	if report.Items()[0].Path != filepath.Join(dir, "b.rue") {
		t.Fatalf("expected failure on b.rue, got %s", report.Items()[0].Path)
	}
}

func TestTokenizeDirEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	fs, results, err := driver.TokenizeDir(context.Background(), dir, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fs == nil {
		t.Fatalf("expected a FileSet even for an empty directory")
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}
