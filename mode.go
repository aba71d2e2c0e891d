package htmltokenizer

// TextParsingMode is one of the six content models the tokenizer can be
// in. It governs which state is entered and how '<' is interpreted.
// Selection is the consumer's responsibility (see StateMachine.SetTextParsingMode),
// typically driven by the last emitted start tag's name via
// TextParsingModeForTag.
type TextParsingMode int

const (
	Data TextParsingMode = iota
	PlainText
	RCData
	RawText
	ScriptData
	CDataSection
)

func (m TextParsingMode) String() string {
	switch m {
	case Data:
		return "Data"
	case PlainText:
		return "PlainText"
	case RCData:
		return "RCData"
	case RawText:
		return "RawText"
	case ScriptData:
		return "ScriptData"
	case CDataSection:
		return "CDataSection"
	default:
		return "Unknown"
	}
}

// NextOutputType is the token granularity an upstream layer has requested
// via a BreakOutputTypeSwitch termination.
type NextOutputType int

const (
	NextOutputLexUnits NextOutputType = iota
	NextOutputTagsOnly
)

// BreakKind identifies why RunParsingLoop returned.
type BreakKind int

const (
	// BreakOutputTypeSwitch: upstream asked for a different token
	// granularity; the machine surrenders with a bookmark taken at the
	// current boundary.
	BreakOutputTypeSwitch BreakKind = iota
	// BreakLexUnitRequiredForAdjustment: the machine needs the consumer
	// to materialize (and possibly mutate) a lex unit before it can
	// continue, because the consumer's decision affects subsequent
	// tokenization (e.g. inserting a raw-text-equivalent mode).
	BreakLexUnitRequiredForAdjustment
	// BreakEndOfInput: the current chunk is exhausted.
	BreakEndOfInput
)

func (k BreakKind) String() string {
	switch k {
	case BreakOutputTypeSwitch:
		return "OutputTypeSwitch"
	case BreakLexUnitRequiredForAdjustment:
		return "LexUnitRequiredForAdjustment"
	case BreakEndOfInput:
		return "EndOfInput"
	default:
		return "Unknown"
	}
}

// TerminationReason is why RunParsingLoop (or ResumeFrom)
// returned control to the caller.
type TerminationReason struct {
	Kind BreakKind

	// Valid when Kind == BreakOutputTypeSwitch.
	NextOutputType NextOutputType

	// Valid when Kind == BreakOutputTypeSwitch or BreakLexUnitRequiredForAdjustment.
	Bookmark Bookmark

	// Valid when Kind == BreakEndOfInput: the number of trailing bytes
	// the consumer must retain and re-present at the start of the next
	// chunk: every byte from the end of the last emitted token on, which
	// covers both a token still being built and character data not yet
	// flushed. Zero only when nothing is pending.
	BlockedByteCount int
}
