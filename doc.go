// Package htmltokenizer is the core of a streaming HTML tokenizer: a
// byte-at-a-time lexical state machine that consumes potentially-chunked
// input and produces a stream of shallow tokens (characters, comments,
// doctypes, start tags, end tags, EOF) whose content is expressed as
// byte-range slices into the input buffer.
//
// The package never decodes text and never produces a DOM. It is the lowest
// layer of a larger rewriting pipeline; tree construction, selector
// matching, mutation/serialization and chunk-buffering policy all live in
// layers above this one and are not implemented here.
package htmltokenizer
