package htmltokenizer

import (
	"golang.org/x/text/encoding"

	"github.com/sirupsen/logrus"
)

const defaultMaxAttrs = 4096

// EmitFunc is invoked once per lexically-complete token, with the token
// itself, its raw byte range (exclusive end; the full lexical extent
// including delimiters for every kind but Character, whose range is the
// text run bounded only by the next lexical structure — see ShallowToken),
// and the encoding handle currently in effect. An error
// returned here aborts the parsing loop and is bubbled to the caller of
// Feed/ResumeFrom unchanged: consumer-level errors are not recovered
// locally.
type EmitFunc func(tok ShallowToken, raw Range, enc encoding.Encoding) error

type options struct {
	initialMode TextParsingMode
	maxAttrs    int
	encoding    encoding.Encoding
	logger      Logger
	metrics     *Metrics
}

func defaultOptions() options {
	return options{
		initialMode: Data,
		maxAttrs:    defaultMaxAttrs,
		encoding:    DefaultEncoding,
		logger:      disabledLogger,
		metrics:     nil,
	}
}

// Option configures a StateMachine using the usual functional-options
// pattern (Option func(*options), With* constructors, defaultOptions()).
type Option func(o *options)

// WithInitialTextParsingMode sets the mode the machine starts in. Default: Data.
func WithInitialTextParsingMode(mode TextParsingMode) Option {
	return func(o *options) { o.initialMode = mode }
}

// WithMaxAttrs bounds how many attributes a single start tag may
// accumulate before ErrAttrBufferCapacityExceeded is returned. size <= 0
// resets to the default. Default: 4096.
func WithMaxAttrs(size int) Option {
	if size <= 0 {
		size = defaultMaxAttrs
	}
	return func(o *options) { o.maxAttrs = size }
}

// WithEncoding sets the encoding handle attached to every emission and
// checked for ASCII-compatibility at construction time. Default: UTF-8
// passthrough (DefaultEncoding).
func WithEncoding(enc encoding.Encoding) Option {
	return func(o *options) { o.encoding = enc }
}

// WithLogger sets the optional trace logger. Default: disabled.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l == nil {
			l = disabledLogger
		}
		o.logger = l
	}
}

// WithMetrics sets the optional Prometheus metrics sink. Default: nil
// (no-op).
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// StateMachine is a streaming HTML tokenizer state machine: single-
// threaded, synchronous, suspendable only at state-function boundaries,
// re-entrant via Bookmark but not reentrant within one RunParsingLoop
// call.
type StateMachine struct {
	emit EmitFunc

	options options

	state        stateFn
	isStateEnter bool
	cur          Cursor

	// adjustAfterStartTag, when set via RequestAdjustmentAfterStartTags,
	// makes every completed start tag suspend the loop with
	// BreakLexUnitRequiredForAdjustment instead of resuming immediately,
	// for a consumer that must materialize the tag name out-of-band before
	// deciding the next text-parsing mode.
	adjustAfterStartTag bool

	// outputTypeSwitchPending/pendingOutputType back RequestOutputTypeSwitch:
	// the next lexical boundary the loop reaches breaks with
	// BreakOutputTypeSwitch(pendingOutputType) and clears the flag.
	outputTypeSwitchPending bool
	pendingOutputType       NextOutputType

	hasCurrentToken bool
	currentToken    ShallowToken

	hasCurrentAttr bool
	currentAttr    Attr

	attrBuffer *AttrBuffer

	rawStart       int
	tokenPartStart int
	hasTagStartMark bool
	tagStartMark    int

	closingQuote byte

	hasLastStartTagNameHash bool
	lastStartTagNameHash    LocalNameHash

	lastTextParsingMode TextParsingMode
	cdataAllowed        bool
	finished            bool

	// kwPos tracks progress through a multi-byte literal match (the
	// "DOCTYPE" and "[CDATA[" keywords recognized by
	// markupDeclarationOpenState, and the "PUBLIC"/"SYSTEM" keywords
	// recognized by the doctype states). doctypeKeywordState and
	// cdataKeywordState reset it to 0 via consumeEnter() the first time
	// they run after being switched into; the "PUBLIC"/"SYSTEM" matchers
	// instead seed it to 1 at their single call site, since that state is
	// only ever entered right after the first letter is consumed.
	kwPos int

	// cdataBracketMark records the position of the first ']' of a
	// tentative "]]>" CDATA-section terminator (states_cdata.go), stored
	// relative to rawStart like tokenPartStart so it survives
	// adjustForNextInput's rebasing.
	cdataBracketMark int

	logger  Logger
	metrics *Metrics
}

// New creates a StateMachine that calls emit for every lexically-complete
// token. This layer owns no io.Reader and no byte buffer of its own — the
// consumer owns chunk buffering and drives the machine by calling
// Feed/ResumeFrom directly.
func New(emit EmitFunc, opts ...Option) (*StateMachine, error) {
	m := new(StateMachine)
	if err := m.Reset(emit, opts...); err != nil {
		return nil, err
	}
	return m, nil
}

// Reset reinitializes m for reuse.
func (m *StateMachine) Reset(emit EmitFunc, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := CheckASCIICompatible(o.encoding); err != nil {
		return err
	}

	*m = StateMachine{
		emit:       emit,
		options:    o,
		cur:        NewCursor(0),
		attrBuffer: GetAttrBuffer(),
		logger:     o.logger,
		metrics:    o.metrics,
	}
	m.switchTextParsingMode(o.initialMode)
	return nil
}

// Feed presents the next chunk of input to the machine and runs the
// parsing loop until it suspends. isLast must be true iff chunk is the
// final chunk of the whole input.
func (m *StateMachine) Feed(b []byte, isLast bool) (TerminationReason, error) {
	chunk := NewChunk(b, isLast)
	return m.RunParsingLoop(&chunk)
}

// RunParsingLoop repeatedly invokes the current state function against
// chunk until it returns one of the three break reasons.
func (m *StateMachine) RunParsingLoop(chunk *Chunk) (TerminationReason, error) {
	for {
		d, err := m.state(m, chunk)
		if err != nil {
			return TerminationReason{}, err
		}
		if d.done {
			return d.reason, nil
		}
	}
}

// ResumeFrom restores state captured in b and resumes tokenization against
// chunk at b.Pos.
func (m *StateMachine) ResumeFrom(b Bookmark, chunk *Chunk) (TerminationReason, error) {
	m.SetCDataAllowed(b.CDataAllowed)
	m.switchTextParsingMode(b.TextParsingMode)
	m.hasLastStartTagNameHash = b.HasLastStartTagNameHash
	m.lastStartTagNameHash = b.LastStartTagNameHash
	m.adjustToBookmark(b.Pos)
	m.cur = NewCursor(b.Pos)

	return m.RunParsingLoop(chunk)
}

// SetTextParsingMode is the consumer-facing mode-setting entry point. It
// takes effect immediately: the machine switches to the corresponding
// entry state.
func (m *StateMachine) SetTextParsingMode(mode TextParsingMode) { m.switchTextParsingMode(mode) }

// SetCDataAllowed sets whether CDATA sections are recognized in Data mode.
func (m *StateMachine) SetCDataAllowed(allowed bool) { m.cdataAllowed = allowed }

// SetLastStartTagNameHash overrides the fingerprint used for the
// appropriate-end-tag test. Passing hasHash=false clears it (as if no
// start tag had ever been seen).
func (m *StateMachine) SetLastStartTagNameHash(hash LocalNameHash, hasHash bool) {
	m.lastStartTagNameHash = hash
	m.hasLastStartTagNameHash = hasHash
}

// AttrBuffer returns the machine's shared attribute buffer, the same one
// referenced by the most recently emitted StartTag token.
func (m *StateMachine) AttrBuffer() *AttrBuffer { return m.attrBuffer }

// RequestAdjustmentAfterStartTags toggles whether a completed start tag
// suspends RunParsingLoop with BreakLexUnitRequiredForAdjustment. A
// consumer that decides the next text-parsing mode synchronously inside
// EmitFunc (via SetTextParsingMode) never needs this; one that must
// materialize the tag name in a separate layer before deciding enables it
// and resumes with ResumeFrom once the mode is set.
func (m *StateMachine) RequestAdjustmentAfterStartTags(enabled bool) {
	m.adjustAfterStartTag = enabled
}

// RequestOutputTypeSwitch asks the loop to surrender control with
// BreakOutputTypeSwitch(next) at the next tag boundary it reaches, rather
// than continuing to tokenize at lex-unit granularity.
func (m *StateMachine) RequestOutputTypeSwitch(next NextOutputType) {
	m.outputTypeSwitchPending = true
	m.pendingOutputType = next
}

func (m *StateMachine) switchState(fn stateFn) {
	m.state = fn
	m.isStateEnter = true
}

// returnToCurrentMode re-enters whichever TextParsingMode is currently in
// effect. Called after a start or end tag has just been emitted: if the
// consumer called SetTextParsingMode synchronously from within the emit
// callback (the usual way to react to e.g. a <script> start tag), this
// picks up that new mode; otherwise it's a harmless re-entry of the mode
// that was already active.
func (m *StateMachine) returnToCurrentMode() { m.switchTextParsingMode(m.lastTextParsingMode) }

func (m *StateMachine) switchTextParsingMode(mode TextParsingMode) {
	m.lastTextParsingMode = mode
	switch mode {
	case Data:
		m.switchState(dataState)
	case PlainText:
		m.switchState(plainTextState)
	case RCData:
		m.switchState(rcdataState)
	case RawText:
		m.switchState(rawTextState)
	case ScriptData:
		m.switchState(scriptDataState)
	case CDataSection:
		m.switchState(cdataSectionState)
	}
}

func (m *StateMachine) createBookmark(pos int) Bookmark {
	return Bookmark{
		CDataAllowed:            m.cdataAllowed,
		TextParsingMode:         m.lastTextParsingMode,
		LastStartTagNameHash:    m.lastStartTagNameHash,
		HasLastStartTagNameHash: m.hasLastStartTagNameHash,
		Pos:                     pos,
	}
}

// adjustForNextInput shifts chunk-relative bookkeeping so that the earliest
// not-yet-flushed byte (rawStart) becomes position 0, matching the tail
// the consumer is expected to re-present at the start of the next chunk.
func (m *StateMachine) adjustForNextInput() {
	shift := m.rawStart
	if shift == 0 {
		return
	}
	m.cur = NewCursor(m.cur.Pos() - shift)
	if m.hasTagStartMark {
		m.tagStartMark -= shift
	}
	m.rawStart = 0
}

// adjustToBookmark is the ResumeFrom-side counterpart: a bookmark is only
// ever taken at a lexical boundary (current_token and currentAttr both
// empty), so resuming just means starting a fresh pending span at pos.
func (m *StateMachine) adjustToBookmark(pos int) {
	m.rawStart = pos
	m.tokenPartStart = 0
	m.hasTagStartMark = false
	m.hasCurrentToken = false
	m.hasCurrentAttr = false
}

func (m *StateMachine) breakOnEndOfInput(chunk *Chunk) (loopDirective, error) {
	blocked := chunk.Len() - m.rawStart
	if blocked < 0 {
		blocked = 0
	}
	if !chunk.IsLast() {
		m.adjustForNextInput()
	}
	m.metrics.observeSuspension(BreakEndOfInput)
	m.trace("end_of_input", logrus.Fields{"blocked_byte_count": blocked, "is_last": chunk.IsLast()})
	return loopDirective{done: true, reason: TerminationReason{
		Kind:             BreakEndOfInput,
		BlockedByteCount: blocked,
	}}, nil
}

// breakOutputTypeSwitch surrenders control because an upstream layer asked
// for a different token granularity. The bookmark is taken at the current
// cursor position, which must be a lexical boundary.
func (m *StateMachine) breakOutputTypeSwitch(next NextOutputType) (loopDirective, error) {
	bm := m.createBookmark(m.cur.Pos())
	m.metrics.observeSuspension(BreakOutputTypeSwitch)
	return loopDirective{done: true, reason: TerminationReason{
		Kind:           BreakOutputTypeSwitch,
		NextOutputType: next,
		Bookmark:       bm,
	}}, nil
}

// breakLexUnitRequiredForAdjustment surrenders control because the
// consumer must materialize (and possibly mutate) a lex unit before
// tokenization can continue correctly.
func (m *StateMachine) breakLexUnitRequiredForAdjustment() (loopDirective, error) {
	bm := m.createBookmark(m.cur.Pos())
	m.metrics.observeSuspension(BreakLexUnitRequiredForAdjustment)
	return loopDirective{done: true, reason: TerminationReason{
		Kind:     BreakLexUnitRequiredForAdjustment,
		Bookmark: bm,
	}}, nil
}
