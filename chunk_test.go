package htmltokenizer

import "testing"

func TestRangeLen(t *testing.T) {
	r := Range{Start: 3, End: 10}
	if got := r.Len(); got != 7 {
		t.Fatalf("Len() = %d, want 7", got)
	}
}

func TestChunkBasics(t *testing.T) {
	c := NewChunk([]byte("hello"), false)
	if c.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", c.Len())
	}
	if c.IsLast() {
		t.Fatalf("IsLast() should be false")
	}
	if got := string(c.Slice(Range{Start: 1, End: 4})); got != "ell" {
		t.Fatalf("Slice = %q, want %q", got, "ell")
	}
}

func TestChunkLast(t *testing.T) {
	c := NewChunk(nil, true)
	if !c.IsLast() {
		t.Fatalf("IsLast() should be true")
	}
}

func TestCursorAdvanceAndAtEnd(t *testing.T) {
	c := NewChunk([]byte("ab"), true)
	cur := NewCursor(0)
	if cur.AtEnd(&c) {
		t.Fatalf("cursor at 0 should not be at end of a 2-byte chunk")
	}
	cur.Advance()
	cur.Advance()
	if !cur.AtEnd(&c) {
		t.Fatalf("cursor at 2 should be at end of a 2-byte chunk")
	}
	if cur.Pos() != 2 {
		t.Fatalf("Pos() = %d, want 2", cur.Pos())
	}
}
