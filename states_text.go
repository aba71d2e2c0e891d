package htmltokenizer

// This file holds five of the six text-parsing-mode entry states (Data,
// PlainText, RCData, RawText, ScriptData — CDataSection lives in
// states_cdata.go since its exit condition, "]]>", is unrelated to tag
// matching) plus the character-sequence matcher shared by the RCData/
// RawText/ScriptData family: the less-than-sign/end-tag-open/end-tag-name
// trio that decides whether a "</" run is the appropriate end tag for the
// element that switched into that mode.

func isASCIIWhitespace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	default:
		return false
	}
}

func isASCIILetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func dataState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
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
	case '<':
		if err := m.emitChars(chunk); err != nil {
			return loopDirective{}, err
		}
		m.markTagStart()
		m.consume()
		m.switchState(dataTagOpenState)
		return loopContinue, nil
	default:
		m.consume()
		return loopContinue, nil
	}
}

func plainTextState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	_, ok := m.peek(chunk)
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
	// PlainText has no markup at all, not even '<': every byte is data.
	m.consume()
	return loopContinue, nil
}

func rcdataState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	return rawTextFamilyTextState(m, chunk)
}

func rawTextState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	return rawTextFamilyTextState(m, chunk)
}

func scriptDataState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	return rawTextFamilyTextState(m, chunk)
}

// rawTextFamilyTextState implements the shared body of rcdataState,
// rawTextState and scriptDataState: m.lastTextParsingMode records which of
// the three is active, which only matters once a "</" run starts (see
// rawTextFamilyEndTagNameState's fallback).
//
// Unlike dataState, a "<" seen here is not flushed as a character boundary
// immediately: it may turn out to be an end tag that isn't the appropriate
// one, in which case its bytes are just more character data. The run is
// only flushed once a "</" is confirmed appropriate (commitPendingTextBeforeTag)
// or input ends, so "a<b</script>" and "x</b>y</script>" each yield one
// Character token for their text, not one per rejected "</" attempt.
func rawTextFamilyTextState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
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
	case '<':
		m.markTagStart()
		m.consume()
		m.switchState(rawTextFamilyLessThanSignState)
		return loopContinue, nil
	default:
		m.consume()
		return loopContinue, nil
	}
}

// textFamilyReentryState returns the top-level state to fall back into
// once a tentative "</" run turns out not to be the appropriate end tag.
func (m *StateMachine) textFamilyReentryState() stateFn {
	switch m.lastTextParsingMode {
	case RCData:
		return rcdataState
	case ScriptData:
		return scriptDataState
	default:
		return rawTextState
	}
}

func rawTextFamilyLessThanSignState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		m.unmarkTagStart()
		if err := m.emitChars(chunk); err != nil {
			return loopDirective{}, err
		}
		if err := m.emitEOF(chunk); err != nil {
			return loopDirective{}, err
		}
		return m.breakOnEndOfInput(chunk)
	}

	switch ch {
	case '/':
		m.consume()
		m.switchState(rawTextFamilyEndTagOpenState)
		return loopContinue, nil
	default:
		m.unmarkTagStart()
		m.switchState(m.textFamilyReentryState())
		return loopContinue, nil
	}
}

func rawTextFamilyEndTagOpenState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		m.unmarkTagStart()
		if err := m.emitChars(chunk); err != nil {
			return loopDirective{}, err
		}
		if err := m.emitEOF(chunk); err != nil {
			return loopDirective{}, err
		}
		return m.breakOnEndOfInput(chunk)
	}

	if isASCIILetter(ch) {
		m.createTentativeEndTag()
		m.startTokenPart()
		m.updateTagNameHash(ch)
		m.consume()
		m.switchState(rawTextFamilyEndTagNameState)
		return loopContinue, nil
	}

	m.unmarkTagStart()
	m.switchState(m.textFamilyReentryState())
	return loopContinue, nil
}

// rawTextFamilyFallback discards the tentatively-built end tag and
// reconsumes the current byte in the enclosing text-family state, leaving
// the scanned "</name" run unflushed — it folds back into the character
// run in progress since rawStart was never committed past it, used
// whenever the scanned end tag turns out not to be the appropriate one.
func (m *StateMachine) rawTextFamilyFallback() (loopDirective, error) {
	m.hasCurrentToken = false
	m.unmarkTagStart()
	m.switchState(m.textFamilyReentryState())
	return loopContinue, nil
}

func rawTextFamilyEndTagNameState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		m.hasCurrentToken = false
		if err := m.emitChars(chunk); err != nil {
			return loopDirective{}, err
		}
		if err := m.emitEOF(chunk); err != nil {
			return loopDirective{}, err
		}
		return m.breakOnEndOfInput(chunk)
	}

	switch {
	case isASCIIWhitespace(ch):
		if m.isAppropriateEndTag() {
			if err := m.commitPendingTextBeforeTag(chunk); err != nil {
				return loopDirective{}, err
			}
			m.finishTagName()
			m.consume()
			// The tag completes later via emitTagAndAdvance, which
			// re-enters lastTextParsingMode: make that Data.
			m.lastTextParsingMode = Data
			m.switchState(beforeAttrNameState)
			return loopContinue, nil
		}
		return m.rawTextFamilyFallback()
	case ch == '/':
		if m.isAppropriateEndTag() {
			if err := m.commitPendingTextBeforeTag(chunk); err != nil {
				return loopDirective{}, err
			}
			m.finishTagName()
			m.consume()
			m.lastTextParsingMode = Data
			m.switchState(selfClosingStartTagState)
			return loopContinue, nil
		}
		return m.rawTextFamilyFallback()
	case ch == '>':
		if m.isAppropriateEndTag() {
			if err := m.commitPendingTextBeforeTag(chunk); err != nil {
				return loopDirective{}, err
			}
			m.finishTagName()
			m.consume()
			if err := m.emitCurrentToken(chunk); err != nil {
				return loopDirective{}, err
			}
			// An appropriate end tag always returns to Data, even if a
			// different raw mode was active (see DESIGN.md).
			m.switchTextParsingMode(Data)
			return loopContinue, nil
		}
		return m.rawTextFamilyFallback()
	case isASCIILetter(ch):
		m.updateTagNameHash(ch)
		m.consume()
		return loopContinue, nil
	default:
		return m.rawTextFamilyFallback()
	}
}
