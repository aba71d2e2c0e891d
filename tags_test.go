package htmltokenizer

import "testing"

func TestTextParsingModeForTag(t *testing.T) {
	cases := []struct {
		name             string
		scriptingEnabled bool
		want             TextParsingMode
	}{
		{"script", true, ScriptData},
		{"style", true, RawText},
		{"xmp", true, RawText},
		{"iframe", true, RawText},
		{"noembed", true, RawText},
		{"noframes", true, RawText},
		{"noscript", true, RawText},
		{"noscript", false, Data},
		{"textarea", true, RCData},
		{"title", true, RCData},
		{"plaintext", true, PlainText},
		{"div", true, Data},
		{"", true, Data},
	}

	for _, c := range cases {
		hash := FingerprintString(c.name)
		got := TextParsingModeForTag(hash, c.scriptingEnabled)
		if got != c.want {
			t.Fatalf("TextParsingModeForTag(%q, scripting=%v) = %v, want %v", c.name, c.scriptingEnabled, got, c.want)
		}
	}
}

func TestTextParsingModeForTagEmptyHash(t *testing.T) {
	got := TextParsingModeForTag(FingerprintString("averylongtagnamethatoverflows"), true)
	if got != Data {
		t.Fatalf("an invalidated hash must fall back to Data, got %v", got)
	}
}
