package htmltokenizer

import "testing"

func TestValidateCommentTextRejectsClosingSequence(t *testing.T) {
	err := ValidateCommentText([]byte("hello --> world"), DefaultEncoding)
	if err != ErrCommentClosingSequence {
		t.Fatalf("got %v, want ErrCommentClosingSequence", err)
	}
}

func TestValidateCommentTextAcceptsOrdinaryText(t *testing.T) {
	if err := ValidateCommentText([]byte("hello - world -- again"), DefaultEncoding); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateCommentTextEmpty(t *testing.T) {
	if err := ValidateCommentText(nil, DefaultEncoding); err != nil {
		t.Fatalf("unexpected error for empty text: %v", err)
	}
}
