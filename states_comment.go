package htmltokenizer

// Comment scanning, entered once createComment/startTokenPart have already
// been called by the caller (markupDeclarationOpenState, the dash-match
// states, or one of the bogus-comment entry points in states_tag.go).
//
// The running comment token's Text range is kept up to date via
// markCommentTextEnd, called every time the cursor sits at a position that
// might be the comment's true end; if a tentative "--"/"--!" turns out not
// to be followed by '>', the next markCommentTextEnd call simply advances
// the boundary again to fold those bytes back into the content.

func commentStartState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		m.switchState(commentState)
		return loopContinue, nil
	}

	switch ch {
	case '-':
		m.consume()
		m.switchState(commentStartDashState)
		return loopContinue, nil
	case '>':
		m.consume()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		m.returnToCurrentMode()
		return loopContinue, nil
	default:
		m.switchState(commentState)
		return loopContinue, nil
	}
}

func commentStartDashState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		m.switchState(commentState)
		return loopContinue, nil
	}

	switch ch {
	case '-':
		m.consume()
		m.switchState(commentEndState)
		return loopContinue, nil
	case '>':
		m.consume()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		m.returnToCurrentMode()
		return loopContinue, nil
	default:
		m.switchState(commentState)
		return loopContinue, nil
	}
}

func commentState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		m.markCommentTextEnd()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		if err := m.emitEOF(chunk); err != nil {
			return loopDirective{}, err
		}
		return m.breakOnEndOfInput(chunk)
	}

	switch ch {
	case '-':
		m.markCommentTextEnd()
		m.consume()
		m.switchState(commentEndDashState)
		return loopContinue, nil
	default:
		m.consume()
		return loopContinue, nil
	}
}

func commentEndDashState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		m.markCommentTextEnd()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		if err := m.emitEOF(chunk); err != nil {
			return loopDirective{}, err
		}
		return m.breakOnEndOfInput(chunk)
	}

	switch ch {
	case '-':
		m.consume()
		m.switchState(commentEndState)
		return loopContinue, nil
	default:
		m.markCommentTextEnd()
		m.switchState(commentState)
		return loopContinue, nil
	}
}

func commentEndState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		m.markCommentTextEnd()
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
	case '!':
		m.consume()
		m.switchState(commentEndBangState)
		return loopContinue, nil
	case '-':
		// An extra '-' beyond the pair already scanned is itself
		// content, sliding the pending-close window forward by one.
		m.markCommentTextEnd()
		m.consume()
		return loopContinue, nil
	default:
		m.markCommentTextEnd()
		m.switchState(commentState)
		return loopContinue, nil
	}
}

func commentEndBangState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		m.markCommentTextEnd()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		if err := m.emitEOF(chunk); err != nil {
			return loopDirective{}, err
		}
		return m.breakOnEndOfInput(chunk)
	}

	switch ch {
	case '-':
		m.markCommentTextEnd()
		m.consume()
		m.switchState(commentEndDashState)
		return loopContinue, nil
	case '>':
		m.consume()
		if err := m.emitCurrentToken(chunk); err != nil {
			return loopDirective{}, err
		}
		m.returnToCurrentMode()
		return loopContinue, nil
	default:
		m.markCommentTextEnd()
		m.switchState(commentState)
		return loopContinue, nil
	}
}

func bogusCommentState(m *StateMachine, chunk *Chunk) (loopDirective, error) {
	ch, ok := m.peek(chunk)
	if !ok {
		if !chunk.IsLast() {
			return m.breakOnEndOfInput(chunk)
		}
		m.markCommentTextEnd()
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
		m.markCommentTextEnd()
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
