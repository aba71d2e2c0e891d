package htmltokenizer

// errorString is a trivial error type for package-level sentinels, following
// the same pattern the rest of the ambient stack uses for static errors
// (compare errors.New, but without an allocation at init time).
type errorString string

func (e errorString) Error() string { return string(e) }

const (
	// ErrAttrBufferCapacityExceeded is returned when a single start tag
	// accumulates more attributes than WithMaxAttrs allows. This is the only
	// internal-capacity failure mode the state machine has: everything
	// else about HTML tokenization is defined to always produce a token
	// stream, well-formed or not.
	ErrAttrBufferCapacityExceeded = errorString("htmltokenizer: attribute buffer capacity exceeded")

	// ErrEncodingNotASCIICompatible is returned by CheckASCIICompatible
	// (and by New/Reset when constructed WithEncoding of such a value)
	// for any encoding whose ASCII byte range does not retain its ASCII
	// meaning; only ASCII-compatible encodings are admissible here.
	ErrEncodingNotASCIICompatible = errorString("htmltokenizer: encoding is not ASCII-compatible")

	// ErrCommentClosingSequence is returned by ValidateCommentText when
	// the candidate text contains the comment closing sequence "-->".
	ErrCommentClosingSequence = errorString("htmltokenizer: comment text must not contain \"-->\"")

	// ErrCommentUnencodableCharacter is returned by ValidateCommentText
	// when the candidate text can't be represented in the target
	// encoding without injecting a numeric character reference (which
	// is not supported inside comments).
	ErrCommentUnencodableCharacter = errorString("htmltokenizer: comment text contains a character unencodable in the target encoding")

	// ErrHasReplacements is returned by LocalNameFromStringWithoutReplacements
	// when encoding the name would require a numeric character reference.
	ErrHasReplacements = errorString("htmltokenizer: name contains a character unencodable in the target encoding")
)
