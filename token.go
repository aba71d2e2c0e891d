package htmltokenizer

import "sync"

// TokenKind identifies which variant of ShallowToken is populated.
type TokenKind int

const (
	TokenCharacter TokenKind = iota
	TokenComment
	TokenDoctype
	TokenStartTag
	TokenEndTag
	TokenEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokenCharacter:
		return "Character"
	case TokenComment:
		return "Comment"
	case TokenDoctype:
		return "Doctype"
	case TokenStartTag:
		return "StartTag"
	case TokenEndTag:
		return "EndTag"
	case TokenEOF:
		return "Eof"
	default:
		return "Unknown"
	}
}

// CommentToken is the payload of a TokenComment ShallowToken.
type CommentToken struct {
	Text Range
}

// DoctypeToken is the payload of a TokenDoctype ShallowToken. A nil field
// represents the HTML "missing" state (e.g. a DOCTYPE with no system
// identifier), distinct from an empty-but-present identifier.
type DoctypeToken struct {
	Name        *Range
	PublicID    *Range
	SystemID    *Range
	ForceQuirks bool
}

// TagToken is the payload shared by TokenStartTag and TokenEndTag.
// Attributes is nil for end tags (end tags never carry attributes at this
// layer) and otherwise points at the machine's shared attribute buffer,
// which stays valid only until the next start tag is created — see
// AttrBuffer's doc comment.
type TagToken struct {
	Name        Range
	NameHash    LocalNameHash
	Attributes  *AttrBuffer
	SelfClosing bool
}

// ShallowToken is a shallow, range-based descriptor of one lexical token.
// Content is never copied out of the input buffer; every Range is
// chunk-relative and must be resolved against the Chunk that was current
// at emission time (passed alongside the token to the emission callback).
//
// Only the field matching Kind is meaningful; the others are left at their
// zero value. Character and Eof tokens carry no payload at all — a
// Character token's content is the accompanying raw Range itself, with no
// further substructure.
type ShallowToken struct {
	Kind    TokenKind
	Comment CommentToken
	Doctype DoctypeToken
	Tag     TagToken
}

// AttrBuffer is a growable, shared sequence of attributes owned by the
// state machine. It is conceptually shared (by reference) with the most
// recently emitted StartTag token; it is cleared the moment a new start
// tag is created, so "one live start tag at a time" is an invariant
// consumers of an emitted StartTag must honor — finish inspecting or copy
// out of Attrs before feeding the machine again.
//
// Duplicate attribute names are not deduplicated at this layer, and
// attributes appear in source order.
type AttrBuffer struct {
	Attrs []Attr
}

// Attr is one name/value pair of a start tag, each as a chunk-relative
// Range.
type Attr struct {
	Name  Range
	Value Range
}

func (b *AttrBuffer) clear() { b.Attrs = b.Attrs[:0] }

func (b *AttrBuffer) push(a Attr) { b.Attrs = append(b.Attrs, a) }

var attrBufferPool = sync.Pool{New: func() any { return new(AttrBuffer) }}

// GetAttrBuffer gets an AttrBuffer from the pool; pair with PutAttrBuffer.
func GetAttrBuffer() *AttrBuffer { return attrBufferPool.Get().(*AttrBuffer) }

// PutAttrBuffer returns buf to the pool after the caller is done with any
// StartTag token that referenced it.
func PutAttrBuffer(buf *AttrBuffer) {
	buf.clear()
	attrBufferPool.Put(buf)
}

// Bookmark captures the minimal state required to resume tokenization at
// an earlier byte position: it is always taken at a lexical boundary,
// where currentToken/currentAttr are empty, so it does not need to capture
// them.
type Bookmark struct {
	CDataAllowed            bool
	TextParsingMode         TextParsingMode
	LastStartTagNameHash    LocalNameHash
	HasLastStartTagNameHash bool
	Pos                     int
}
