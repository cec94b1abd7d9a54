package source

import "testing"

func TestNormalizeCRLF(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\nc\r\n"))
	if !changed {
		t.Fatalf("expected changed=true")
	}
	if string(out) != "a\nb\nc\n" {
		t.Fatalf("got %q", out)
	}

	out, changed = normalizeCRLF([]byte("no crlf here"))
	if changed {
		t.Fatalf("expected changed=false")
	}
	if string(out) != "no crlf here" {
		t.Fatalf("got %q", out)
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := append([]byte{0xEF, 0xBB, 0xBF}, "hi"...)
	out, had := removeBOM(withBOM)
	if !had || string(out) != "hi" {
		t.Fatalf("removeBOM failed: had=%v out=%q", had, out)
	}

	out, had = removeBOM([]byte("no bom"))
	if had || string(out) != "no bom" {
		t.Fatalf("removeBOM changed content without a BOM: %q", out)
	}
}

func TestToLineCol(t *testing.T) {
	content := []byte("abc\ndef\nghi")
	idx := buildLineIndex(content)

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{2, LineCol{Line: 1, Col: 3}},
		{4, LineCol{Line: 2, Col: 1}},
		{8, LineCol{Line: 3, Col: 1}},
		{10, LineCol{Line: 3, Col: 3}},
	}
	for _, tt := range tests {
		if got := toLineCol(idx, tt.off); got != tt.want {
			t.Errorf("toLineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}

func TestToLineColEmptyIndex(t *testing.T) {
	if got := toLineCol(nil, 5); got != (LineCol{Line: 1, Col: 6}) {
		t.Errorf("toLineCol on single-line file = %+v", got)
	}
}
