package htmltokenizer

// stateFn is one state function: it consumes at most one byte (or performs
// a single zero-width "enter" step, when m.isStateEnter is true at entry)
// and returns a directive telling RunParsingLoop whether to keep looping
// or break with a termination reason.
//
// The state set and transitions mirror the HTML5 tokenization algorithm's
// state table, hand-written here as a set of named Go functions dispatched
// through the state field's function pointer.
type stateFn func(m *StateMachine, chunk *Chunk) (loopDirective, error)

// loopDirective is this package's rendering of ParsingLoopDirective: either
// "keep looping" (done == false) or "break with this reason" (done == true).
type loopDirective struct {
	done   bool
	reason TerminationReason
}

var loopContinue = loopDirective{}

// peek returns the byte at the cursor and true, or (0, false) if the
// cursor has reached the end of chunk — the caller must then decide
// between suspending for more input and running its EOF action,
// depending on chunk.IsLast().
func (m *StateMachine) peek(chunk *Chunk) (byte, bool) {
	if m.cur.AtEnd(chunk) {
		return 0, false
	}
	return chunk.Bytes()[m.cur.Pos()], true
}

// consume advances the cursor past the current byte.
func (m *StateMachine) consume() {
	m.cur.Advance()
	m.metrics.observeBytes(1)
}

// consumeEnter reports whether this invocation is the first since the
// current state was switched into, and clears the flag. State functions
// that have one-shot enter actions check this once at the top.
func (m *StateMachine) consumeEnter() bool {
	enter := m.isStateEnter
	m.isStateEnter = false
	return enter
}

// currentPartRange resolves the chunk-absolute range of the sub-part
// currently being scanned (tag name, attribute name/value, comment text,
// doctype identifier, ...): tokenPartStart is stored relative to rawStart
// to survive adjustForNextInput's rebasing, but every Range actually
// stored on a token is chunk-absolute.
func (m *StateMachine) currentPartRange() Range {
	return Range{Start: m.rawStart + m.tokenPartStart, End: m.cur.Pos()}
}

// --- emission -----------------------------------------------------------

func (m *StateMachine) emitChars(chunk *Chunk) error {
	if m.cur.Pos() <= m.rawStart {
		return nil
	}
	r := Range{Start: m.rawStart, End: m.cur.Pos()}
	m.rawStart = m.cur.Pos()
	return m.emitToken(ShallowToken{Kind: TokenCharacter}, r, chunk)
}

// emitCharsUpTo flushes pending input as a Character token ending at end
// rather than at the cursor, used by the CDataSection family
// (states_cdata.go) to exclude a confirmed "]]>" terminator from the
// emitted content.
func (m *StateMachine) emitCharsUpTo(end int, chunk *Chunk) error {
	if end <= m.rawStart {
		return nil
	}
	r := Range{Start: m.rawStart, End: end}
	m.rawStart = end
	return m.emitToken(ShallowToken{Kind: TokenCharacter}, r, chunk)
}

func (m *StateMachine) emitEOF(chunk *Chunk) error {
	m.finished = true
	return m.emitToken(ShallowToken{Kind: TokenEOF}, Range{Start: m.cur.Pos(), End: m.cur.Pos()}, chunk)
}

func (m *StateMachine) emitCurrentToken(chunk *Chunk) error {
	if !m.hasCurrentToken {
		panic("htmltokenizer: emitCurrentToken called with no current token")
	}
	tok := m.currentToken
	m.hasCurrentToken = false
	raw := Range{Start: m.rawStart, End: m.cur.Pos()}
	m.rawStart = m.cur.Pos()
	return m.emitToken(tok, raw, chunk)
}

// emitTagAndAdvance emits the just-completed start or end tag and decides
// how the loop proceeds. A start tag, if the consumer opted in via
// RequestAdjustmentAfterStartTags, suspends the loop with
// BreakLexUnitRequiredForAdjustment instead of resuming; otherwise the
// loop resumes in whichever mode is currently in effect, then breaks with
// BreakOutputTypeSwitch if RequestOutputTypeSwitch left one pending.
func (m *StateMachine) emitTagAndAdvance(chunk *Chunk) (loopDirective, error) {
	isStartTag := m.currentToken.Kind == TokenStartTag
	if err := m.emitCurrentToken(chunk); err != nil {
		return loopDirective{}, err
	}
	if isStartTag && m.adjustAfterStartTag {
		return m.breakLexUnitRequiredForAdjustment()
	}
	m.returnToCurrentMode()
	if m.outputTypeSwitchPending {
		next := m.pendingOutputType
		m.outputTypeSwitchPending = false
		return m.breakOutputTypeSwitch(next)
	}
	return loopContinue, nil
}

func (m *StateMachine) emitToken(tok ShallowToken, raw Range, chunk *Chunk) error {
	m.metrics.observeToken(tok.Kind)
	if m.emit == nil {
		return nil
	}
	return m.emit(tok, raw, m.options.encoding)
}

// --- token creation -------------------------------------------------------

func (m *StateMachine) commitRawStartFromTagMark() {
	if m.hasTagStartMark {
		m.rawStart = m.tagStartMark
		m.hasTagStartMark = false
	}
}

func (m *StateMachine) markTagStart() {
	m.tagStartMark = m.cur.Pos()
	m.hasTagStartMark = true
}

func (m *StateMachine) unmarkTagStart() { m.hasTagStartMark = false }

func (m *StateMachine) createStartTag() {
	m.commitRawStartFromTagMark()
	m.attrBuffer.clear()
	m.hasCurrentToken = true
	m.currentToken = ShallowToken{
		Kind: TokenStartTag,
		Tag: TagToken{
			NameHash:   NewLocalNameHash(),
			Attributes: m.attrBuffer,
		},
	}
}

func (m *StateMachine) createEndTag() {
	m.commitRawStartFromTagMark()
	m.hasCurrentToken = true
	m.currentToken = ShallowToken{
		Kind: TokenEndTag,
		Tag: TagToken{
			NameHash: NewLocalNameHash(),
		},
	}
}

// createTentativeEndTag sets up an end tag token the same way createEndTag
// does, but leaves rawStart and tagStartMark untouched: used by the raw-
// text-family end tag scan (states_text.go), where the candidate end tag
// may turn out not to be the appropriate one and its bytes must fold back
// into the surrounding, still-unflushed character run rather than being
// committed as their own token boundary.
func (m *StateMachine) createTentativeEndTag() {
	m.hasCurrentToken = true
	m.currentToken = ShallowToken{
		Kind: TokenEndTag,
		Tag: TagToken{
			NameHash: NewLocalNameHash(),
		},
	}
}

// commitPendingTextBeforeTag flushes any buffered character data up to the
// marked tag start as a Character token, then commits rawStart there —
// the deferred counterpart of commitRawStartFromTagMark for a tentative
// end tag once it is confirmed appropriate. tokenPartStart was recorded
// relative to the old rawStart (see startTokenPart), so it is shifted by
// the same amount rawStart moves to keep pointing at the tag name.
func (m *StateMachine) commitPendingTextBeforeTag(chunk *Chunk) error {
	if !m.hasTagStartMark {
		return nil
	}
	shift := m.tagStartMark - m.rawStart
	if err := m.emitCharsUpTo(m.tagStartMark, chunk); err != nil {
		return err
	}
	m.tokenPartStart -= shift
	m.hasTagStartMark = false
	return nil
}

func (m *StateMachine) createDoctype() {
	m.commitRawStartFromTagMark()
	m.hasCurrentToken = true
	m.currentToken = ShallowToken{Kind: TokenDoctype}
}

func (m *StateMachine) createComment() {
	m.commitRawStartFromTagMark()
	m.hasCurrentToken = true
	m.currentToken = ShallowToken{Kind: TokenComment}
}

func (m *StateMachine) startTokenPart() {
	m.tokenPartStart = m.cur.Pos() - m.rawStart
}

// --- comment parts --------------------------------------------------------

// markCommentTextEnd extends the comment token's text range to end at the
// cursor's current position. Idempotent and safe to call repeatedly: the
// comment-end state family (states_comment.go) calls it again whenever a
// tentative "--"/"--!" closing sequence turns out not to close the
// comment, to fold those bytes back into the comment's content.
func (m *StateMachine) markCommentTextEnd() {
	if !m.hasCurrentToken || m.currentToken.Kind != TokenComment {
		return
	}
	m.currentToken.Comment.Text = m.currentPartRange()
}

// --- doctype parts ----------------------------------------------------------

func (m *StateMachine) setForceQuirks() {
	if !m.hasCurrentToken || m.currentToken.Kind != TokenDoctype {
		return
	}
	m.currentToken.Doctype.ForceQuirks = true
}

func (m *StateMachine) finishDoctypeName() {
	if !m.hasCurrentToken || m.currentToken.Kind != TokenDoctype {
		return
	}
	r := m.currentPartRange()
	m.currentToken.Doctype.Name = &r
}

func (m *StateMachine) finishDoctypePublicID() {
	if !m.hasCurrentToken || m.currentToken.Kind != TokenDoctype {
		return
	}
	r := m.currentPartRange()
	m.currentToken.Doctype.PublicID = &r
}

func (m *StateMachine) finishDoctypeSystemID() {
	if !m.hasCurrentToken || m.currentToken.Kind != TokenDoctype {
		return
	}
	r := m.currentPartRange()
	m.currentToken.Doctype.SystemID = &r
}

// --- tag parts -----------------------------------------------------------

func (m *StateMachine) finishTagName() {
	if !m.hasCurrentToken {
		return
	}
	m.currentToken.Tag.Name = m.currentPartRange()
	if m.currentToken.Kind == TokenStartTag {
		m.lastStartTagNameHash = m.currentToken.Tag.NameHash
		m.hasLastStartTagNameHash = true
	}
}

func (m *StateMachine) updateTagNameHash(ch byte) {
	if !m.hasCurrentToken {
		return
	}
	m.currentToken.Tag.NameHash.Update(ch)
}

func (m *StateMachine) markAsSelfClosing() {
	if !m.hasCurrentToken || m.currentToken.Kind != TokenStartTag {
		return
	}
	m.currentToken.Tag.SelfClosing = true
}

// --- attributes ------------------------------------------------------------

func (m *StateMachine) startAttr() error {
	if !m.hasCurrentToken || m.currentToken.Kind != TokenStartTag {
		return nil
	}
	if len(m.attrBuffer.Attrs) >= m.options.maxAttrs {
		return ErrAttrBufferCapacityExceeded
	}
	m.hasCurrentAttr = true
	m.currentAttr = Attr{}
	m.startTokenPart()
	return nil
}

func (m *StateMachine) finishAttrName() {
	if !m.hasCurrentAttr {
		return
	}
	m.currentAttr.Name = m.currentPartRange()
}

func (m *StateMachine) finishAttrValue() {
	if !m.hasCurrentAttr {
		return
	}
	m.currentAttr.Value = m.currentPartRange()
}

func (m *StateMachine) finishAttr() {
	if !m.hasCurrentAttr {
		return
	}
	m.attrBuffer.push(m.currentAttr)
	m.hasCurrentAttr = false
}

// --- quotes ------------------------------------------------------------

func (m *StateMachine) setClosingQuoteToDouble() { m.closingQuote = '"' }
func (m *StateMachine) setClosingQuoteToSingle() { m.closingQuote = '\'' }
