package htmltokenizer

// Data's own tag-open handling (TagOpen, EndTagOpen — no appropriate-end-tag
// ambiguity here, every "</" in Data mode commits to an end tag or bogus
// comment) plus the shared TagName/attribute state family used by every
// start and end tag scanned from Data mode.

func dataTagOpenState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
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

	switch {
	case ch == '!':
		m.consume()
		m.switchState(markupDeclarationOpenState)
		return loopContinue, nil
	case ch == '/':
		m.consume()
		m.switchState(dataEndTagOpenState)
		return loopContinue, nil
	case ch == '?':
		m.createComment()
		m.startTokenPart()
		m.switchState(bogusCommentState)
		return loopContinue, nil
	case isASCIILetter(ch):
		m.createStartTag()
		m.startTokenPart()
		m.updateTagNameHash(ch)
		m.consume()
		m.switchState(tagNameState)
		return loopContinue, nil
	default:
		m.unmarkTagStart()
		m.switchState(dataState)
		return loopContinue, nil
	}
}

func dataEndTagOpenState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
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

	switch {
	case isASCIILetter(ch):
		m.createEndTag()
		m.startTokenPart()
		m.updateTagNameHash(ch)
		m.consume()
		m.switchState(tagNameState)
		return loopContinue, nil
	case ch == '>':
		// Missing end tag name ("</>"): no token is produced by a
		// standard HTML5 tokenizer here. Flushing it as characters keeps
		// this package's byte-for-byte accounting exact while matching
		// "no tag is emitted" for this corner case.
		m.consume()
		if err := m.emitChars(chunk); err != nil {
			return loopDirective{}, err
		}
		m.switchState(dataState)
		return loopContinue, nil
	default:
		m.createComment()
		m.startTokenPart()
		m.switchState(bogusCommentState)
		return loopContinue, nil
	}
}

func tagNameState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
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
		m.finishTagName()
		m.consume()
		m.switchState(beforeAttrNameState)
		return loopContinue, nil
	case ch == '/':
		m.finishTagName()
		m.consume()
		m.switchState(selfClosingStartTagState)
		return loopContinue, nil
	case ch == '>':
		m.finishTagName()
		m.consume()
		return m.emitTagAndAdvance(chunk)
	default:
		m.updateTagNameHash(ch)
		m.consume()
		return loopContinue, nil
	}
}

func beforeAttrNameState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
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
		m.consume()
		return loopContinue, nil
	case ch == '/' || ch == '>':
		m.switchState(afterAttrNameState)
		return loopContinue, nil
	case ch == '=':
		// Leading '=' before any attribute name is a parse error; HTML5
		// still starts an attribute whose name begins with the '='.
		if err := m.startAttr(); err != nil {
			return loopDirective{}, err
		}
		m.consume()
		m.switchState(attrNameState)
		return loopContinue, nil
	default:
		if err := m.startAttr(); err != nil {
			return loopDirective{}, err
		}
		m.switchState(attrNameState)
		return loopContinue, nil
	}
}

func attrNameState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
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
	case isASCIIWhitespace(ch) || ch == '/' || ch == '>':
		m.finishAttrName()
		m.switchState(afterAttrNameState)
		return loopContinue, nil
	case ch == '=':
		m.finishAttrName()
		m.consume()
		m.switchState(beforeAttrValueState)
		return loopContinue, nil
	default:
		m.consume()
		return loopContinue, nil
	}
}

func afterAttrNameState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
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
		m.consume()
		return loopContinue, nil
	case ch == '/':
		m.finishAttr()
		m.consume()
		m.switchState(selfClosingStartTagState)
		return loopContinue, nil
	case ch == '=':
		m.consume()
		m.switchState(beforeAttrValueState)
		return loopContinue, nil
	case ch == '>':
		m.finishAttr()
		m.consume()
		return m.emitTagAndAdvance(chunk)
	default:
		m.finishAttr()
		if err := m.startAttr(); err != nil {
			return loopDirective{}, err
		}
		m.switchState(attrNameState)
		return loopContinue, nil
	}
}

func beforeAttrValueState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
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

	switch ch {
	case ' ', '\t', '\n', '\f', '\r':
		m.consume()
		return loopContinue, nil
	case '"':
		m.consume()
		m.startTokenPart()
		m.switchState(attrValueDoubleQuotedState)
		return loopContinue, nil
	case '\'':
		m.consume()
		m.startTokenPart()
		m.switchState(attrValueSingleQuotedState)
		return loopContinue, nil
	case '>':
		m.finishAttrValue()
		m.finishAttr()
		m.consume()
		return m.emitTagAndAdvance(chunk)
	default:
		m.startTokenPart()
		m.switchState(attrValueUnquotedState)
		return loopContinue, nil
	}
}

func attrValueDoubleQuotedState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	return attrValueQuotedState(m, chunk, '"')
}

func attrValueSingleQuotedState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	return attrValueQuotedState(m, chunk, '\'')
}

func attrValueQuotedState(m *StateMachine, chunk *Chunk, quote byte) (loopDirective, error) {
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

	switch ch {
	case quote:
		m.finishAttrValue()
		m.consume()
		if quote == '"' {
			m.setClosingQuoteToDouble()
		} else {
			m.setClosingQuoteToSingle()
		}
		m.switchState(afterAttrValueQuotedState)
		return loopContinue, nil
	default:
		m.consume()
		return loopContinue, nil
	}
}

func attrValueUnquotedState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
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
		m.finishAttrValue()
		m.finishAttr()
		m.consume()
		m.switchState(beforeAttrNameState)
		return loopContinue, nil
	case ch == '>':
		m.finishAttrValue()
		m.finishAttr()
		m.consume()
		return m.emitTagAndAdvance(chunk)
	default:
		m.consume()
		return loopContinue, nil
	}
}

func afterAttrValueQuotedState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
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
		m.finishAttr()
		m.consume()
		m.switchState(beforeAttrNameState)
		return loopContinue, nil
	case ch == '/':
		m.finishAttr()
		m.consume()
		m.switchState(selfClosingStartTagState)
		return loopContinue, nil
	case ch == '>':
		m.finishAttr()
		m.consume()
		return m.emitTagAndAdvance(chunk)
	default:
		// Missing whitespace between attributes: reconsume in
		// beforeAttrNameState, same as the HTML5 spec directs.
		m.switchState(beforeAttrNameState)
		return loopContinue, nil
	}
}

func selfClosingStartTagState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
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

	switch ch {
	case '>':
		m.markAsSelfClosing()
		m.consume()
		return m.emitTagAndAdvance(chunk)
	default:
		// Unexpected-solidus-in-tag: ignore the '/' and reconsume in
		// beforeAttrNameState.
		m.switchState(beforeAttrNameState)
		return loopContinue, nil
	}
}
