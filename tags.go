package htmltokenizer

// Standard tag-name fingerprints a consumer's mode-selection policy is
// likely to need. Declared as package vars rather than untyped consts so
// they read naturally as LocalNameHash values at call sites (e.g.
// hash.EqualTag(TagScript)); they are still computed once, at init, and
// never mutated afterwards.
var (
	TagScript     = FingerprintString("script")
	TagStyle      = FingerprintString("style")
	TagTextarea   = FingerprintString("textarea")
	TagTitle      = FingerprintString("title")
	TagXmp        = FingerprintString("xmp")
	TagIframe     = FingerprintString("iframe")
	TagNoembed    = FingerprintString("noembed")
	TagNoframes   = FingerprintString("noframes")
	TagNoscript   = FingerprintString("noscript")
	TagPlaintext  = FingerprintString("plaintext")
	TagDiv        = FingerprintString("div")
)

// TextParsingModeForTag returns the text parsing mode a standard HTML5
// tokenizer would switch to after starting the given tag, using the
// standard content-model-switch table. scriptingEnabled mirrors the HTML5
// "scripting flag": when it is false, <noscript> content is parsed as Data
// rather than RawText (browsers show <noscript> contents in that case, so
// its content model reverts to ordinary markup).
//
// This is a pure, optional helper: mode selection is the consumer's
// responsibility (see StateMachine.SetTextParsingMode), and this function
// changes nothing about the machine itself. It exists so a consumer that
// wants the standard HTML5 behavior doesn't have to rebuild this table.
func TextParsingModeForTag(hash LocalNameHash, scriptingEnabled bool) TextParsingMode {
	if hash.IsEmpty() {
		return Data
	}
	switch {
	case hash.EqualTag(TagScript):
		return ScriptData
	case hash.EqualTag(TagStyle), hash.EqualTag(TagXmp), hash.EqualTag(TagIframe),
		hash.EqualTag(TagNoembed), hash.EqualTag(TagNoframes):
		return RawText
	case hash.EqualTag(TagNoscript) && scriptingEnabled:
		return RawText
	case hash.EqualTag(TagTextarea), hash.EqualTag(TagTitle):
		return RCData
	case hash.EqualTag(TagPlaintext):
		return PlainText
	default:
		return Data
	}
}
