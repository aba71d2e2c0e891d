package htmltokenizer

import "testing"

func TestLocalNameHashUpdate(t *testing.T) {
	got := FingerprintString("div")
	want := NewLocalNameHash()
	for _, ch := range []byte("div") {
		want.Update(ch)
	}
	if got != want {
		t.Fatalf("FingerprintString(%q) = %v, want %v", "div", got, want)
	}
}

func TestLocalNameHashCaseInsensitive(t *testing.T) {
	lower := FingerprintString("script")
	upper := FingerprintString("SCRIPT")
	mixed := FingerprintString("ScRiPt")
	if !lower.EqualTag(upper) || !lower.EqualTag(mixed) {
		t.Fatalf("expected case-insensitive equality, got %v %v %v", lower, upper, mixed)
	}
	if !lower.EqualTag(TagScript) {
		t.Fatalf("FingerprintString(script) should equal TagScript")
	}
}

func TestLocalNameHashInvalidatesOnBadByte(t *testing.T) {
	h := FingerprintString("di-v")
	if !h.IsEmpty() {
		t.Fatalf("expected hash to invalidate on '-', got %v", h)
	}
}

func TestLocalNameHashInvalidatesOnOverflow(t *testing.T) {
	h := FingerprintString("abcdefghijklm") // 13 letters, one past the 12-char budget
	if !h.IsEmpty() {
		t.Fatalf("expected hash to invalidate past 12 characters, got %v", h)
	}
}

func TestLocalNameHashDigitsOneToSix(t *testing.T) {
	h1 := FingerprintString("h1")
	h6 := FingerprintString("h6")
	if h1.IsEmpty() || h6.IsEmpty() {
		t.Fatalf("h1/h6 should be valid fingerprints")
	}
	if h1.EqualTag(h6) {
		t.Fatalf("h1 and h6 must not collide")
	}
}

func TestLocalNameHashDistinctFromPrefix(t *testing.T) {
	a := FingerprintString("a")
	aaa := FingerprintString("aaa")
	if a.EqualTag(aaa) {
		t.Fatalf("prefix names must not collide: reserving 0-5 for digits should prevent this")
	}
}

func TestLocalNameHashStringRoundTrip(t *testing.T) {
	for _, name := range []string{"div", "script", "h1", "iframe", "x1y2z3"} {
		h := FingerprintString(name)
		if got := h.String(); got != name {
			t.Fatalf("String() = %q, want %q", got, name)
		}
	}
}

func TestLocalNameHashEmptyString(t *testing.T) {
	h := FingerprintString("")
	if h.IsEmpty() {
		t.Fatalf("a zero-character hash must not report IsEmpty")
	}
}
