package htmltokenizer

// CDataSection has no token of its own: its content is Character data,
// terminated by the literal byte sequence "]]>" rather than by '<' (the
// terminator RCData/RawText/ScriptData use). Reachable either via
// markupDeclarationOpenState's "[CDATA[" match inside foreign content, or
// directly via StateMachine.SetTextParsingMode(CDataSection).

func cdataSectionState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		if err := m.emitChars(chunk); err != nil {
			return loopDirective{}, err
		}
		if err := m.emitEOF(chunk); err != nil {
			return loopDirective{}, err
		}
		return m.breakOnEndOfInput(chunk)
	}

	switch ch {
	case ']':
		m.cdataBracketMark = m.cur.Pos() - m.rawStart
		m.consume()
		m.switchState(cdataSectionBracketState)
		return loopContinue, nil
	default:
		m.consume()
		return loopContinue, nil
	}
}

func cdataSectionBracketState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		if err := m.emitChars(chunk); err != nil {
			return loopDirective{}, err
		}
		if err := m.emitEOF(chunk); err != nil {
			return loopDirective{}, err
		}
		return m.breakOnEndOfInput(chunk)
	}

	switch ch {
	case ']':
		m.consume()
		m.switchState(cdataSectionEndState)
		return loopContinue, nil
	default:
		m.switchState(cdataSectionState)
		return loopContinue, nil
	}
}

func cdataSectionEndState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		if err := m.emitChars(chunk); err != nil {
			return loopDirective{}, err
		}
		if err := m.emitEOF(chunk); err != nil {
			return loopDirective{}, err
		}
		return m.breakOnEndOfInput(chunk)
	}

	switch ch {
	case '>':
		if err := m.emitCharsUpTo(m.rawStart+m.cdataBracketMark, chunk); err != nil {
			return loopDirective{}, err
		}
		m.consume()
		m.rawStart = m.cur.Pos()
		m.switchTextParsingMode(Data)
		return loopContinue, nil
	case ']':
		// A third (or later) ']': the earliest bracket in the run is
		// ordinary content after all; slide the tentative pair forward.
		m.cdataBracketMark++
		m.consume()
		return loopContinue, nil
	default:
		m.switchState(cdataSectionState)
		return loopContinue, nil
	}
}
