package htmltokenizer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
)

// recordedAttr and recordedToken decode a ShallowToken against the Chunk
// that was live at emission time, so assertions can compare against plain
// strings instead of chunk-relative Ranges.
type recordedAttr struct {
	Name, Value string
}

type recordedToken struct {
	Kind        TokenKind
	Raw         string
	Name        string
	NameHash    LocalNameHash
	Attrs       []recordedAttr
	SelfClosing bool
	CommentText string
	ForceQuirks bool
	HasName     bool
}

func decodeToken(tok ShallowToken, raw Range, chunk *Chunk) recordedToken {
	rt := recordedToken{
		Kind: tok.Kind,
		Raw:  string(chunk.Slice(raw)),
	}
	switch tok.Kind {
	case TokenStartTag, TokenEndTag:
		rt.Name = string(chunk.Slice(tok.Tag.Name))
		rt.NameHash = tok.Tag.NameHash
		rt.SelfClosing = tok.Tag.SelfClosing
		if tok.Tag.Attributes != nil {
			for _, a := range tok.Tag.Attributes.Attrs {
				rt.Attrs = append(rt.Attrs, recordedAttr{
					Name:  string(chunk.Slice(a.Name)),
					Value: string(chunk.Slice(a.Value)),
				})
			}
		}
	case TokenComment:
		rt.CommentText = string(chunk.Slice(tok.Comment.Text))
	case TokenDoctype:
		rt.ForceQuirks = tok.Doctype.ForceQuirks
		if tok.Doctype.Name != nil {
			rt.HasName = true
			rt.Name = string(chunk.Slice(*tok.Doctype.Name))
		}
	}
	return rt
}

// tokenize feeds the whole input in one non-chunked call and returns every
// emitted token decoded to plain strings.
func tokenize(t *testing.T, input string, opts ...Option) []recordedToken {
	t.Helper()
	var out []recordedToken
	var curChunk *Chunk
	m, err := New(func(tok ShallowToken, raw Range, _ encoding.Encoding) error {
		out = append(out, decodeToken(tok, raw, curChunk))
		return nil
	}, opts...)
	require.NoError(t, err)

	chunk := NewChunk([]byte(input), true)
	curChunk = &chunk
	_, err = m.Feed([]byte(input), true)
	require.NoError(t, err)
	return out
}

func TestScenario1SimpleStartCharEnd(t *testing.T) {
	toks := tokenize(t, `<div id="x">hi</div>`)
	require.Len(t, toks, 4)

	require.Equal(t, TokenStartTag, toks[0].Kind)
	require.Equal(t, "div", toks[0].Name)
	require.True(t, toks[0].NameHash.EqualTag(TagDiv))
	require.Equal(t, []recordedAttr{{Name: "id", Value: "x"}}, toks[0].Attrs)

	require.Equal(t, TokenCharacter, toks[1].Kind)
	require.Equal(t, "hi", toks[1].Raw)

	require.Equal(t, TokenEndTag, toks[2].Kind)
	require.Equal(t, "div", toks[2].Name)

	require.Equal(t, TokenEOF, toks[3].Kind)
}

func TestScenario2ScriptDataRawText(t *testing.T) {
	var toks []recordedToken
	var curChunk *Chunk
	var m *StateMachine

	m, err := New(func(tok ShallowToken, raw Range, _ encoding.Encoding) error {
		rt := decodeToken(tok, raw, curChunk)
		toks = append(toks, rt)
		if tok.Kind == TokenStartTag && rt.NameHash.EqualTag(TagScript) {
			m.SetTextParsingMode(ScriptData)
		}
		return nil
	})
	require.NoError(t, err)

	input := "<script>a<b</script>"
	chunk := NewChunk([]byte(input), true)
	curChunk = &chunk
	_, err = m.Feed([]byte(input), true)
	require.NoError(t, err)

	require.Len(t, toks, 4)
	require.Equal(t, TokenStartTag, toks[0].Kind)
	require.Equal(t, "script", toks[0].Name)
	require.Equal(t, TokenCharacter, toks[1].Kind)
	require.Equal(t, "a<b", toks[1].Raw)
	require.Equal(t, TokenEndTag, toks[2].Kind)
	require.Equal(t, "script", toks[2].Name)
	require.Equal(t, TokenEOF, toks[3].Kind)
}

func TestScenario3Comment(t *testing.T) {
	toks := tokenize(t, `<!-- x --> y`)
	require.Len(t, toks, 3)
	require.Equal(t, TokenComment, toks[0].Kind)
	require.Equal(t, " x ", toks[0].CommentText)
	require.Equal(t, TokenCharacter, toks[1].Kind)
	require.Equal(t, " y", toks[1].Raw)
	require.Equal(t, TokenEOF, toks[2].Kind)
}

func TestScenario4CaseInsensitiveTagMatch(t *testing.T) {
	toks := tokenize(t, `<h1></H1>`)
	require.Len(t, toks, 3)
	require.Equal(t, TokenStartTag, toks[0].Kind)
	require.Equal(t, TokenEndTag, toks[1].Kind)
	require.True(t, toks[0].NameHash.EqualTag(toks[1].NameHash))
}

func TestScenario5ChunkBoundarySuspendsAndResumes(t *testing.T) {
	var toks []recordedToken
	var curChunk *Chunk
	m, err := New(func(tok ShallowToken, raw Range, _ encoding.Encoding) error {
		toks = append(toks, decodeToken(tok, raw, curChunk))
		return nil
	})
	require.NoError(t, err)

	first := NewChunk([]byte("<di"), false)
	curChunk = &first
	reason, err := m.RunParsingLoop(&first)
	require.NoError(t, err)
	require.Equal(t, BreakEndOfInput, reason.Kind)
	require.GreaterOrEqual(t, reason.BlockedByteCount, 3)
	require.Empty(t, toks)

	second := NewChunk([]byte("<div>"), true)
	curChunk = &second
	reason, err = m.RunParsingLoop(&second)
	require.NoError(t, err)
	require.Equal(t, BreakEndOfInput, reason.Kind)

	require.NotEmpty(t, toks)
	require.Equal(t, TokenStartTag, toks[0].Kind)
	require.Equal(t, "div", toks[0].Name)
}

func TestScenario6LongTagNameHashInvalidates(t *testing.T) {
	toks := tokenize(t, `<verylongtagnameindeed>`)
	require.Len(t, toks, 2)
	require.Equal(t, TokenStartTag, toks[0].Kind)
	require.True(t, toks[0].NameHash.IsEmpty())
	require.False(t, toks[0].NameHash.EqualTag(TagDiv))
}

func TestSelfClosingSetOnlyWhenSlashImmediatelyPrecedesGT(t *testing.T) {
	toks := tokenize(t, `<br/><hr >`)
	require.Len(t, toks, 3)
	require.True(t, toks[0].SelfClosing)
	require.False(t, toks[1].SelfClosing)
}

func TestForceQuirksOnMissingDoctypeName(t *testing.T) {
	toks := tokenize(t, `<!DOCTYPE>`)
	require.Len(t, toks, 2)
	require.Equal(t, TokenDoctype, toks[0].Kind)
	require.True(t, toks[0].ForceQuirks)
	require.False(t, toks[0].HasName)
}

func TestDoctypeWellFormedNotForceQuirks(t *testing.T) {
	toks := tokenize(t, `<!DOCTYPE html>`)
	require.Len(t, toks, 2)
	require.False(t, toks[0].ForceQuirks)
	require.True(t, toks[0].HasName)
	require.Equal(t, "html", toks[0].Name)
}

func TestAppropriateEndTagOnlyMatchingFingerprintExitsRawText(t *testing.T) {
	// </b> does not match the last start tag (script), so the whole run
	// stays character data inside ScriptData; only </script> exits.
	var toks []recordedToken
	var curChunk *Chunk
	var m *StateMachine
	m, err := New(func(tok ShallowToken, raw Range, _ encoding.Encoding) error {
		rt := decodeToken(tok, raw, curChunk)
		toks = append(toks, rt)
		if tok.Kind == TokenStartTag && rt.NameHash.EqualTag(TagScript) {
			m.SetTextParsingMode(ScriptData)
		}
		return nil
	})
	require.NoError(t, err)

	input := `<script>x</b>y</script>`
	chunk := NewChunk([]byte(input), true)
	curChunk = &chunk
	_, err = m.Feed([]byte(input), true)
	require.NoError(t, err)

	var sawCharWithEndB bool
	for _, tok := range toks {
		if tok.Kind == TokenCharacter && tok.Raw == "x</b>y" {
			sawCharWithEndB = true
		}
	}
	require.True(t, sawCharWithEndB, "expected </b> to be swallowed as character data: %+v", toks)
}

func TestByteForByteRoundTrip(t *testing.T) {
	input := `<div class="a b"><!-- c -->text<br/></div>`
	var pieces []string
	var curChunk *Chunk
	m, err := New(func(tok ShallowToken, raw Range, _ encoding.Encoding) error {
		pieces = append(pieces, string(curChunk.Slice(raw)))
		return nil
	})
	require.NoError(t, err)
	chunk := NewChunk([]byte(input), true)
	curChunk = &chunk
	_, err = m.Feed([]byte(input), true)
	require.NoError(t, err)

	got := ""
	for _, p := range pieces {
		got += p
	}
	require.Equal(t, input, got)
}

func TestEmissionOrderMatchesLexicalOrder(t *testing.T) {
	toks := tokenize(t, `a<b>c</b>d`)
	var order []TokenKind
	for _, tok := range toks {
		order = append(order, tok.Kind)
	}
	want := []TokenKind{TokenCharacter, TokenStartTag, TokenCharacter, TokenEndTag, TokenCharacter, TokenEOF}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Fatalf("emission order mismatch (-want +got):\n%s", diff)
	}
}

func TestChunkBoundaryInvarianceAgainstWhole(t *testing.T) {
	input := `<div id="x" class='y'>hello <b>world</b></div><!--note-->`

	whole := tokenize(t, input)

	var chunked []recordedToken
	var curChunk *Chunk
	m, err := New(func(tok ShallowToken, raw Range, _ encoding.Encoding) error {
		chunked = append(chunked, decodeToken(tok, raw, curChunk))
		return nil
	})
	require.NoError(t, err)

	var pending []byte
	for i := 0; i < len(input); i++ {
		pending = append(pending, input[i])
		last := i == len(input)-1
		chunk := NewChunk(pending, last)
		curChunk = &chunk
		reason, err := m.RunParsingLoop(&chunk)
		require.NoError(t, err)
		if reason.Kind == BreakEndOfInput {
			if reason.BlockedByteCount > 0 {
				pending = pending[len(pending)-reason.BlockedByteCount:]
			} else {
				pending = nil
			}
		}
	}

	require.Equal(t, len(whole), len(chunked))
	for i := range whole {
		require.Equal(t, whole[i].Kind, chunked[i].Kind, "token %d kind", i)
		require.Equal(t, whole[i].Raw, chunked[i].Raw, "token %d raw", i)
	}
}
