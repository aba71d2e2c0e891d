package htmltokenizer

import "testing"

func TestIsAppropriateEndTag(t *testing.T) {
	m := &StateMachine{}
	m.currentToken = ShallowToken{Tag: TagToken{NameHash: FingerprintString("script")}}

	if m.isAppropriateEndTag() {
		t.Fatalf("no last start tag recorded: must not be appropriate")
	}

	m.hasLastStartTagNameHash = true
	m.lastStartTagNameHash = FingerprintString("script")
	if !m.isAppropriateEndTag() {
		t.Fatalf("matching fingerprints: should be appropriate")
	}

	m.lastStartTagNameHash = FingerprintString("style")
	if m.isAppropriateEndTag() {
		t.Fatalf("mismatched fingerprints: must not be appropriate")
	}
}

func TestCDataAllowed(t *testing.T) {
	m := &StateMachine{}
	if m.CDataAllowed() {
		t.Fatalf("default must be false")
	}
	m.SetCDataAllowed(true)
	if !m.CDataAllowed() {
		t.Fatalf("expected true after SetCDataAllowed(true)")
	}
}
