package htmltokenizer

import (
	"bytes"

	"golang.org/x/text/encoding"
)

// ValidateCommentText reports whether text is valid standalone content for
// an HTML comment, for a consumer about to mutate one. This layer never
// constructs or mutates Comment tokens itself — it only exports the two
// failure modes a consumer setting comment text must guard against, so
// they don't need reimplementing at every call site:
//
//   - the text contains the comment closing sequence "-->", which would
//     prematurely terminate the comment; and
//   - the text can't be represented in the target encoding without
//     injecting a numeric character reference, which comments don't
//     support.
func ValidateCommentText(text []byte, enc encoding.Encoding) error {
	if bytes.Contains(text, []byte("-->")) {
		return ErrCommentClosingSequence
	}
	if enc == nil || enc == DefaultEncoding {
		return nil
	}
	if _, err := enc.NewEncoder().Bytes(text); err != nil {
		return ErrCommentUnencodableCharacter
	}
	return nil
}
