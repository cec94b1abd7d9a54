package diag

import (
	"testing"

	"rue/internal/source"
)

func TestFurthestSlotRecordsLatestStart(t *testing.T) {
	var slot FurthestSlot
	slot.Record(NewParseError(SynExpectedStatement, source.Span{Start: 3, End: 4}, "a"))
	slot.Record(NewParseError(SynExpectedExpression, source.Span{Start: 1, End: 2}, "b"))
	if got := slot.Err().Message; got != "a" {
		t.Fatalf("expected furthest error to stay at start=3, got message %q", got)
	}

	slot.Record(NewParseError(SynUnexpectedToken, source.Span{Start: 3, End: 5}, "c"))
	if got := slot.Err().Message; got != "c" {
		t.Fatalf("expected tie at start=3 to prefer the later record, got %q", got)
	}
}

func TestFurthestSlotIgnoresNil(t *testing.T) {
	var slot FurthestSlot
	slot.Record(nil)
	if slot.Err() != nil {
		t.Fatalf("expected nil slot after recording nil")
	}
}

func TestDiagnosticError(t *testing.T) {
	d := NewLexError(LexUnterminatedString, source.Span{Start: 0, End: 1}, "unterminated string literal", "")
	if d.Error() != "Lex: unterminated string literal" {
		t.Fatalf("unexpected Error() = %q", d.Error())
	}
}

func TestReportSort(t *testing.T) {
	r := NewReport()
	r.Add(0, "b.rue", NewParseError(SynUnexpectedToken, source.Span{Start: 10}, "x"))
	r.Add(0, "a.rue", NewParseError(SynUnexpectedToken, source.Span{Start: 5}, "y"))
	r.Sort()
	items := r.Items()
	if items[0].Path != "a.rue" || items[1].Path != "b.rue" {
		t.Fatalf("report not sorted by path: %+v", items)
	}
}
