package htmltokenizer

import (
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestCheckASCIICompatibleDefault(t *testing.T) {
	if err := CheckASCIICompatible(DefaultEncoding); err != nil {
		t.Fatalf("DefaultEncoding should be ASCII-compatible, got %v", err)
	}
}

func TestCheckASCIICompatibleLegacySingleByte(t *testing.T) {
	if err := CheckASCIICompatible(charmap.Windows1252); err != nil {
		t.Fatalf("windows-1252 should be ASCII-compatible, got %v", err)
	}
}

func TestCheckASCIICompatibleUTF16Rejected(t *testing.T) {
	if err := CheckASCIICompatible(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)); err == nil {
		t.Fatalf("UTF-16LE must be rejected as non-ASCII-compatible")
	}
	if err := CheckASCIICompatible(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)); err == nil {
		t.Fatalf("UTF-16BE must be rejected as non-ASCII-compatible")
	}
}

func TestCheckASCIICompatibleNil(t *testing.T) {
	if err := CheckASCIICompatible(nil); err == nil {
		t.Fatalf("nil encoding must be rejected")
	}
}
