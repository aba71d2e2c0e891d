package htmltokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
)

func TestCDataSectionEmitsCharactersExcludingTerminator(t *testing.T) {
	var toks []recordedToken
	var curChunk *Chunk
	m, err := New(func(tok ShallowToken, raw Range, _ encoding.Encoding) error {
		toks = append(toks, decodeToken(tok, raw, curChunk))
		return nil
	}, WithInitialTextParsingMode(CDataSection))
	require.NoError(t, err)

	input := "abc]]>def"
	chunk := NewChunk([]byte(input), true)
	curChunk = &chunk
	_, err = m.Feed([]byte(input), true)
	require.NoError(t, err)

	require.Equal(t, TokenCharacter, toks[0].Kind)
	require.Equal(t, "abc", toks[0].Raw)
}

func TestCDataSectionBracketRunNotFollowedByGTIsContent(t *testing.T) {
	var out []recordedToken
	var curChunk *Chunk
	m, err := New(func(tok ShallowToken, raw Range, _ encoding.Encoding) error {
		out = append(out, decodeToken(tok, raw, curChunk))
		return nil
	}, WithInitialTextParsingMode(CDataSection))
	require.NoError(t, err)

	input := "a]]]>b"
	chunk := NewChunk([]byte(input), true)
	curChunk = &chunk
	_, err = m.Feed([]byte(input), true)
	require.NoError(t, err)

	require.Equal(t, TokenCharacter, out[0].Kind)
	require.Equal(t, "a]", out[0].Raw)
}

// TestCDataSectionTerminatorSplitAcrossChunkBoundary exercises
// cdataBracketMark surviving adjustForNextInput's rebasing when a chunk
// boundary falls between the first ']' of "]]>" and the closing '>', with
// rawStart already nonzero (advanced past an earlier start tag) so the
// rebase actually shifts the cursor instead of being a no-op.
func TestCDataSectionTerminatorSplitAcrossChunkBoundary(t *testing.T) {
	var toks []recordedToken
	var curChunk *Chunk
	var m *StateMachine

	m, err := New(func(tok ShallowToken, raw Range, _ encoding.Encoding) error {
		rt := decodeToken(tok, raw, curChunk)
		toks = append(toks, rt)
		if tok.Kind == TokenStartTag {
			m.SetTextParsingMode(CDataSection)
		}
		return nil
	})
	require.NoError(t, err)

	first := NewChunk([]byte("<x>abc]"), false)
	curChunk = &first
	reason, err := m.RunParsingLoop(&first)
	require.NoError(t, err)
	require.Equal(t, BreakEndOfInput, reason.Kind)
	require.GreaterOrEqual(t, reason.BlockedByteCount, 4)

	second := NewChunk([]byte("abc]]>def"), true)
	curChunk = &second
	reason, err = m.RunParsingLoop(&second)
	require.NoError(t, err)
	require.Equal(t, BreakEndOfInput, reason.Kind)

	require.Len(t, toks, 4)
	require.Equal(t, TokenStartTag, toks[0].Kind)
	require.Equal(t, "x", toks[0].Name)
	require.Equal(t, TokenCharacter, toks[1].Kind)
	require.Equal(t, "abc", toks[1].Raw)
	require.Equal(t, TokenCharacter, toks[2].Kind)
	require.Equal(t, "def", toks[2].Raw)
	require.Equal(t, TokenEOF, toks[3].Kind)
}
