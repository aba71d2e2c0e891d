package htmltokenizer

// markupDeclarationOpenState dispatches the three things "<!" can start:
// a comment ("<!--"), a doctype ("<!DOCTYPE", case-insensitive), or,
// inside foreign content, a CDATA section ("<![CDATA[", case-sensitive,
// only when m.CDataAllowed()). Anything else is an "incorrectly opened
// comment": the bytes scanned so far (and everything up to the next '>')
// become a bogus comment.

func markupDeclarationOpenState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		m.createComment()
		m.startTokenPart()
		m.switchState(bogusCommentState)
		return loopContinue, nil
	}

	switch {
	case ch == '-':
		m.consume()
		m.switchState(commentDashMatchState)
		return loopContinue, nil
	case ch == 'D' || ch == 'd':
		m.consume()
		m.switchState(doctypeKeywordState)
		return loopContinue, nil
	case ch == '[' && m.CDataAllowed():
		m.consume()
		m.switchState(cdataKeywordState)
		return loopContinue, nil
	default:
		m.createComment()
		m.startTokenPart()
		m.switchState(bogusCommentState)
		return loopContinue, nil
	}
}

// commentDashMatchState expects the second '-' of "<!--".
func commentDashMatchState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		m.createComment()
		m.startTokenPart()
		m.switchState(bogusCommentState)
		return loopContinue, nil
	}

	if ch == '-' {
		m.consume()
		m.createComment()
		m.startTokenPart()
		m.switchState(commentStartState)
		return loopContinue, nil
	}

	m.createComment()
	m.startTokenPart()
	m.switchState(bogusCommentState)
	return loopContinue, nil
}

const doctypeKeywordTail = "OCTYPE"

// doctypeKeywordState matches the case-insensitive tail "OCTYPE" after the
// 'D'/'d' already consumed by markupDeclarationOpenState.
func doctypeKeywordState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	if m.consumeEnter() {
		m.kwPos = 0
	}
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		m.createComment()
		m.startTokenPart()
		m.switchState(bogusCommentState)
		return loopContinue, nil
	}

	want := doctypeKeywordTail[m.kwPos]
	if ch == want || ch == want+('a'-'A') {
		m.consume()
		m.kwPos++
		if m.kwPos == len(doctypeKeywordTail) {
			m.createDoctype()
			m.switchState(beforeDoctypeNameState)
		}
		return loopContinue, nil
	}

	m.createComment()
	m.startTokenPart()
	m.switchState(bogusCommentState)
	return loopContinue, nil
}

const cdataKeywordTail = "CDATA["

// cdataKeywordState matches the case-sensitive tail "CDATA[" after the '['
// already consumed by markupDeclarationOpenState.
func cdataKeywordState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	if m.consumeEnter() {
		m.kwPos = 0
	}
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		m.createComment()
		m.startTokenPart()
		m.switchState(bogusCommentState)
		return loopContinue, nil
	}

	if ch == cdataKeywordTail[m.kwPos] {
		m.consume()
		m.kwPos++
		if m.kwPos == len(cdataKeywordTail) {
			m.switchState(cdataSectionState)
		}
		return loopContinue, nil
	}

	m.createComment()
	m.startTokenPart()
	m.switchState(bogusCommentState)
	return loopContinue, nil
}
