package htmltokenizer

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultEncoding is the encoding handle used when a consumer does not
// supply one via WithEncoding.
var DefaultEncoding encoding.Encoding = encoding.Nop

// nonASCIICompatibleEncodingNames lists the htmlindex canonical names of
// encodings whose byte representation does NOT retain ASCII's meaning for
// the ASCII byte range — UTF-16 in either byte order reassigns every byte
// value, so the tokenizer's byte-level lexical scanning (matching '<',
// '>', '"', etc. as single bytes) would silently misparse. This mirrors
// the harness's ASCII_COMPATIBLE_ENCODINGS allow-list
// (tests/harness/mod.rs) read as its complement.
var nonASCIICompatibleEncodingNames = map[string]bool{
	"utf-16le": true,
	"utf-16be": true,
}

// CheckASCIICompatible returns ErrEncodingNotASCIICompatible if enc's ASCII
// byte range does not retain its ASCII meaning. UTF-8 and every
// single-byte/variable-width legacy encoding exposed by
// golang.org/x/text/encoding/htmlindex (Big5, the EUC/GBK/GB18030/Shift_JIS
// CJK encodings, the ISO-8859 family, KOI8-R/U, macintosh, the Windows code
// pages, x-user-defined, ...) qualify; UTF-16LE/UTF-16BE do not.
func CheckASCIICompatible(enc encoding.Encoding) error {
	if enc == nil {
		return ErrEncodingNotASCIICompatible
	}
	if enc == DefaultEncoding {
		// The Nop (UTF-8 passthrough) default is always ASCII-compatible.
		return nil
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		// Encoding isn't in htmlindex's table at all (e.g. a bespoke
		// encoding.Encoding); we can't prove it's ASCII-compatible, so
		// conservatively reject it rather than risk silent misparsing.
		return ErrEncodingNotASCIICompatible
	}
	if nonASCIICompatibleEncodingNames[name] {
		return ErrEncodingNotASCIICompatible
	}
	return nil
}
