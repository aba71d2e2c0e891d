package htmltokenizer

// Range is a byte-offset span, relative to the current Chunk's buffer.
// End is exclusive.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes the range covers.
func (r Range) Len() int { return r.End - r.Start }

// Chunk is a contiguous, caller-owned byte span presented to the state
// machine, plus a flag recording whether it is the last chunk of the
// input. The tokenizer never copies or retains chunk bytes itself beyond
// the lifetime of the current Feed/ResumeFrom call, except via bookmarked
// positions the caller is expected to re-present (see Bookmark).
type Chunk struct {
	b    []byte
	last bool
}

// NewChunk wraps b as a Chunk. last must be true iff no further bytes will
// ever follow b (i.e. the caller has reached its own end of input and has
// already prepended any bytes retained from a prior EndOfInput's
// BlockedByteCount).
func NewChunk(b []byte, last bool) Chunk {
	return Chunk{b: b, last: last}
}

// Bytes returns the chunk's underlying buffer. The slice is only valid
// until the next call that mutates the chunk's owner; callers that need to
// retain bytes across calls must copy them.
func (c *Chunk) Bytes() []byte { return c.b }

// Len returns the number of bytes in the chunk.
func (c *Chunk) Len() int { return len(c.b) }

// IsLast reports whether this is the final chunk of the input.
func (c *Chunk) IsLast() bool { return c.last }

// Slice returns the bytes covered by r. The caller must ensure r lies
// within [0, Len()]; out-of-range ranges are a programming error in the
// state machine, not a recoverable runtime condition, so Slice panics via
// the normal slice-bounds mechanism rather than returning an error.
func (c *Chunk) Slice(r Range) []byte { return c.b[r.Start:r.End] }

// Cursor holds the state machine's current byte position within a Chunk.
type Cursor struct {
	pos int
}

// NewCursor returns a cursor positioned at pos.
func NewCursor(pos int) Cursor { return Cursor{pos: pos} }

// Pos returns the current byte offset.
func (c Cursor) Pos() int { return c.pos }

// Advance moves the cursor one byte forward, consuming the byte at the
// current position.
func (c *Cursor) Advance() { c.pos++ }

// AtEnd reports whether the cursor has reached the end of chunk, i.e. no
// more bytes are available without a new Chunk. The state machine must
// check this before reading chunk.Bytes()[cursor.Pos()] and enter
// end-of-input handling instead of reading past the end.
func (c Cursor) AtEnd(chunk *Chunk) bool { return c.pos >= chunk.Len() }
