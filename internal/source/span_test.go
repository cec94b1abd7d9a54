package source

import "testing"

func TestSpan_ShiftLeft(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		shift    uint32
		expected Span
	}{
		{"shift normal span left by 5", Span{File: 1, Start: 10, End: 20}, 5, Span{File: 1, Start: 5, End: 15}},
		{"shift span left by 0", Span{File: 1, Start: 10, End: 20}, 0, Span{File: 1, Start: 10, End: 20}},
		{"shift equals start", Span{File: 1, Start: 10, End: 20}, 10, Span{File: 1, Start: 0, End: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.ShiftLeft(tt.shift); got != tt.expected {
				t.Errorf("ShiftLeft() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSpan_ShiftRight(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		shift    uint32
		expected Span
	}{
		{"shift normal span right by 5", Span{File: 1, Start: 10, End: 20}, 5, Span{File: 1, Start: 15, End: 25}},
		{"shift span right by 0", Span{File: 1, Start: 10, End: 20}, 0, Span{File: 1, Start: 10, End: 20}},
		{"shift large span", Span{File: 1, Start: 0, End: 1000}, 500, Span{File: 1, Start: 500, End: 1500}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.ShiftRight(tt.shift); got != tt.expected {
				t.Errorf("ShiftRight() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSpan_Collapsed(t *testing.T) {
	s := Span{File: 2, Start: 10, End: 20}
	got := s.Collapsed()
	want := Span{File: 2, Start: 10, End: 10}
	if got != want {
		t.Errorf("Collapsed() = %+v, want %+v", got, want)
	}
	if !got.Empty() {
		t.Errorf("Collapsed() result should be empty")
	}
}

func TestSpan_Cover(t *testing.T) {
	a := Span{File: 1, Start: 5, End: 10}
	b := Span{File: 1, Start: 8, End: 20}
	got := a.Cover(b)
	want := Span{File: 1, Start: 5, End: 20}
	if got != want {
		t.Errorf("Cover() = %+v, want %+v", got, want)
	}

	// mismatched files leave s unchanged
	c := Span{File: 2, Start: 0, End: 1}
	if got := a.Cover(c); got != a {
		t.Errorf("Cover() across files = %+v, want unchanged %+v", got, a)
	}
}

func TestSpan_Len(t *testing.T) {
	s := Span{Start: 3, End: 9}
	if s.Len() != 6 {
		t.Errorf("Len() = %d, want 6", s.Len())
	}
}
