package htmltokenizer

import (
	"testing"

	"golang.org/x/text/encoding"
)

func TestLocalNameFromStringHashPath(t *testing.T) {
	n, err := LocalNameFromStringWithoutReplacements("div", encoding.Nop)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hash, isHash := n.Hash()
	if !isHash {
		t.Fatalf("expected a hash-backed LocalName for a standard tag name")
	}
	if !hash.EqualTag(FingerprintString("div")) {
		t.Fatalf("hash mismatch")
	}
}

func TestLocalNameFromStringBytesFallback(t *testing.T) {
	n, err := LocalNameFromStringWithoutReplacements("my-custom-element-name", encoding.Nop)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, isBytes := n.Bytes()
	if !isBytes {
		t.Fatalf("expected a bytes-backed LocalName for a non-standard name")
	}
	if string(b) != "my-custom-element-name" {
		t.Fatalf("got %q", b)
	}
}

func TestLocalNameEqual(t *testing.T) {
	a, _ := LocalNameFromStringWithoutReplacements("DIV", encoding.Nop)
	b, _ := LocalNameFromStringWithoutReplacements("div", encoding.Nop)
	if !a.Equal(b) {
		t.Fatalf("hash-backed names should compare case-insensitively")
	}

	x, _ := LocalNameFromStringWithoutReplacements("Custom-Element", encoding.Nop)
	y, _ := LocalNameFromStringWithoutReplacements("custom-element", encoding.Nop)
	if !x.Equal(y) {
		t.Fatalf("bytes-backed names should compare case-insensitively")
	}

	if a.Equal(x) {
		t.Fatalf("a hash-backed and a bytes-backed name must never compare equal")
	}
}

func TestNewLocalNameFromChunk(t *testing.T) {
	c := NewChunk([]byte("<div>"), true)
	n := NewLocalName(&c, Range{Start: 1, End: 4}, FingerprintString("div"))
	hash, isHash := n.Hash()
	if !isHash || !hash.EqualTag(TagDiv) {
		t.Fatalf("expected a hash-backed LocalName equal to TagDiv")
	}
}

func TestLocalNameIntoOwnedDetaches(t *testing.T) {
	backing := []byte("custom-element-name")
	n := LocalName{bytes: backing}
	owned := n.IntoOwned()
	b, _ := owned.Bytes()
	backing[0] = 'X'
	if b[0] == 'X' {
		t.Fatalf("IntoOwned must copy, not alias, the backing bytes")
	}
}
