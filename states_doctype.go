package htmltokenizer

// Doctype token scanning, entered once createDoctype has already been
// called (by doctypeKeywordState, on a full case-insensitive "DOCTYPE"
// match). ForceQuirks defaults false and is set by setForceQuirks wherever
// the HTML5 spec marks a doctype malformed enough to force quirks mode in a
// consumer that builds a document tree from this token stream.

func beforeDoctypeNameState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		m.setForceQuirks()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		if err := m.emitEOF(chunk); err != nil {
			return loopDirective{}, err
		}
		return m.breakOnEndOfInput(chunk)
	}

	switch {
	case isASCIIWhitespace(ch):
		m.consume()
		return loopContinue, nil
	case ch == '>':
		m.setForceQuirks()
		m.consume()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		m.returnToCurrentMode()
		return loopContinue, nil
	default:
		m.startTokenPart()
		m.consume()
		m.switchState(doctypeNameState)
		return loopContinue, nil
	}
}

func doctypeNameState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		m.finishDoctypeName()
		m.setForceQuirks()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		if err := m.emitEOF(chunk); err != nil {
			return loopDirective{}, err
		}
		return m.breakOnEndOfInput(chunk)
	}

	switch {
	case isASCIIWhitespace(ch):
		m.finishDoctypeName()
		m.consume()
		m.switchState(afterDoctypeNameState)
		return loopContinue, nil
	case ch == '>':
		m.finishDoctypeName()
		m.consume()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		m.returnToCurrentMode()
		return loopContinue, nil
	default:
		m.consume()
		return loopContinue, nil
	}
}

func afterDoctypeNameState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		m.setForceQuirks()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		if err := m.emitEOF(chunk); err != nil {
			return loopDirective{}, err
		}
		return m.breakOnEndOfInput(chunk)
	}

	switch {
	case isASCIIWhitespace(ch):
		m.consume()
		return loopContinue, nil
	case ch == '>':
		m.consume()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		m.returnToCurrentMode()
		return loopContinue, nil
	case ch == 'P' || ch == 'p':
		m.consume()
		m.kwPos = 1
		m.switchState(afterDoctypeNamePublicKeywordState)
		return loopContinue, nil
	case ch == 'S' || ch == 's':
		m.consume()
		m.kwPos = 1
		m.switchState(afterDoctypeNameSystemKeywordState)
		return loopContinue, nil
	default:
		m.setForceQuirks()
		m.switchState(bogusDoctypeState)
		return loopContinue, nil
	}
}

const afterDoctypeNamePublicTail = "UBLIC"
const afterDoctypeNameSystemTail = "YSTEM"

func afterDoctypeNamePublicKeywordState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		m.setForceQuirks()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		if err := m.emitEOF(chunk); err != nil {
			return loopDirective{}, err
		}
		return m.breakOnEndOfInput(chunk)
	}

	want := afterDoctypeNamePublicTail[m.kwPos-1]
	if ch == want || ch == want+('a'-'A') {
		m.consume()
		m.kwPos++
		if m.kwPos-1 == len(afterDoctypeNamePublicTail) {
			m.switchState(beforeDoctypePublicIDState)
		}
		return loopContinue, nil
	}

	m.setForceQuirks()
	m.switchState(bogusDoctypeState)
	return loopContinue, nil
}

func afterDoctypeNameSystemKeywordState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		m.setForceQuirks()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		if err := m.emitEOF(chunk); err != nil {
			return loopDirective{}, err
		}
		return m.breakOnEndOfInput(chunk)
	}

	want := afterDoctypeNameSystemTail[m.kwPos-1]
	if ch == want || ch == want+('a'-'A') {
		m.consume()
		m.kwPos++
		if m.kwPos-1 == len(afterDoctypeNameSystemTail) {
			m.switchState(beforeDoctypeSystemIDState)
		}
		return loopContinue, nil
	}

	m.setForceQuirks()
	m.switchState(bogusDoctypeState)
	return loopContinue, nil
}

func beforeDoctypePublicIDState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		m.setForceQuirks()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		if err := m.emitEOF(chunk); err != nil {
			return loopDirective{}, err
		}
		return m.breakOnEndOfInput(chunk)
	}

	switch ch {
	case ' ', '\t', '\n', '\f', '\r':
		m.consume()
		return loopContinue, nil
	case '"':
		m.consume()
		m.startTokenPart()
		m.switchState(doctypePublicIDDoubleQuotedState)
		return loopContinue, nil
	case '\'':
		m.consume()
		m.startTokenPart()
		m.switchState(doctypePublicIDSingleQuotedState)
		return loopContinue, nil
	case '>':
		m.setForceQuirks()
		m.consume()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		m.returnToCurrentMode()
		return loopContinue, nil
	default:
		m.setForceQuirks()
		m.switchState(bogusDoctypeState)
		return loopContinue, nil
	}
}

func doctypePublicIDDoubleQuotedState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	return doctypePublicIDQuotedState(m, chunk, '"')
}

func doctypePublicIDSingleQuotedState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	return doctypePublicIDQuotedState(m, chunk, '\'')
}

func doctypePublicIDQuotedState(m *StateMachine, chunk *Chunk, quote byte) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		m.finishDoctypePublicID()
		m.setForceQuirks()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		if err := m.emitEOF(chunk); err != nil {
			return loopDirective{}, err
		}
		return m.breakOnEndOfInput(chunk)
	}

	switch ch {
	case quote:
		m.finishDoctypePublicID()
		m.consume()
		m.switchState(afterDoctypePublicIDState)
		return loopContinue, nil
	case '>':
		m.finishDoctypePublicID()
		m.setForceQuirks()
		m.consume()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		m.returnToCurrentMode()
		return loopContinue, nil
	default:
		m.consume()
		return loopContinue, nil
	}
}

func afterDoctypePublicIDState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		m.setForceQuirks()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		if err := m.emitEOF(chunk); err != nil {
			return loopDirective{}, err
		}
		return m.breakOnEndOfInput(chunk)
	}

	switch ch {
	case ' ', '\t', '\n', '\f', '\r':
		m.consume()
		m.switchState(betweenDoctypePublicAndSystemIDState)
		return loopContinue, nil
	case '>':
		m.consume()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		m.returnToCurrentMode()
		return loopContinue, nil
	case '"':
		m.consume()
		m.startTokenPart()
		m.switchState(doctypeSystemIDDoubleQuotedState)
		return loopContinue, nil
	case '\'':
		m.consume()
		m.startTokenPart()
		m.switchState(doctypeSystemIDSingleQuotedState)
		return loopContinue, nil
	default:
		m.setForceQuirks()
		m.switchState(bogusDoctypeState)
		return loopContinue, nil
	}
}

func betweenDoctypePublicAndSystemIDState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		m.setForceQuirks()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		if err := m.emitEOF(chunk); err != nil {
			return loopDirective{}, err
		}
		return m.breakOnEndOfInput(chunk)
	}

	switch ch {
	case ' ', '\t', '\n', '\f', '\r':
		m.consume()
		return loopContinue, nil
	case '>':
		m.consume()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		m.returnToCurrentMode()
		return loopContinue, nil
	case '"':
		m.consume()
		m.startTokenPart()
		m.switchState(doctypeSystemIDDoubleQuotedState)
		return loopContinue, nil
	case '\'':
		m.consume()
		m.startTokenPart()
		m.switchState(doctypeSystemIDSingleQuotedState)
		return loopContinue, nil
	default:
		m.setForceQuirks()
		m.switchState(bogusDoctypeState)
		return loopContinue, nil
	}
}

func beforeDoctypeSystemIDState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		m.setForceQuirks()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		if err := m.emitEOF(chunk); err != nil {
			return loopDirective{}, err
		}
		return m.breakOnEndOfInput(chunk)
	}

	switch ch {
	case ' ', '\t', '\n', '\f', '\r':
		m.consume()
		return loopContinue, nil
	case '"':
		m.consume()
		m.startTokenPart()
		m.switchState(doctypeSystemIDDoubleQuotedState)
		return loopContinue, nil
	case '\'':
		m.consume()
		m.startTokenPart()
		m.switchState(doctypeSystemIDSingleQuotedState)
		return loopContinue, nil
	case '>':
		m.setForceQuirks()
		m.consume()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		m.returnToCurrentMode()
		return loopContinue, nil
	default:
		m.setForceQuirks()
		m.switchState(bogusDoctypeState)
		return loopContinue, nil
	}
}

func doctypeSystemIDDoubleQuotedState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	return doctypeSystemIDQuotedState(m, chunk, '"')
}

func doctypeSystemIDSingleQuotedState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	return doctypeSystemIDQuotedState(m, chunk, '\'')
}

func doctypeSystemIDQuotedState(m *StateMachine, chunk *Chunk, quote byte) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		m.finishDoctypeSystemID()
		m.setForceQuirks()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		if err := m.emitEOF(chunk); err != nil {
			return loopDirective{}, err
		}
		return m.breakOnEndOfInput(chunk)
	}

	switch ch {
	case quote:
		m.finishDoctypeSystemID()
		m.consume()
		m.switchState(afterDoctypeSystemIDState)
		return loopContinue, nil
	case '>':
		m.finishDoctypeSystemID()
		m.setForceQuirks()
		m.consume()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		m.returnToCurrentMode()
		return loopContinue, nil
	default:
		m.consume()
		return loopContinue, nil
	}
}

func afterDoctypeSystemIDState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		m.setForceQuirks()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		if err := m.emitEOF(chunk); err != nil {
			return loopDirective{}, err
		}
		return m.breakOnEndOfInput(chunk)
	}

	switch ch {
	case ' ', '\t', '\n', '\f', '\r':
		m.consume()
		return loopContinue, nil
	case '>':
		m.consume()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		m.returnToCurrentMode()
		return loopContinue, nil
	default:
		m.switchState(bogusDoctypeState)
		return loopContinue, nil
	}
}

func bogusDoctypeState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		if err := m.emitEOF(chunk); err != nil {
			return loopDirective{}, err
		}
		return m.breakOnEndOfInput(chunk)
	}

	switch ch {
	case '>':
		m.consume()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		m.returnToCurrentMode()
		return loopContinue, nil
	default:
		m.consume()
		return loopContinue, nil
	}
}
