package htmltokenizer

import (
	"bytes"

	"golang.org/x/text/encoding"
)

// LocalName is used for comparison of tag names. In the common case it is
// represented as a LocalNameHash; for long or non-standard tag names it
// falls back to a case-insensitively-compared byte slice.
//
// The zero value is not a valid LocalName; always construct one via
// NewLocalName or LocalNameFromStringWithoutReplacements.
type LocalName struct {
	hash   LocalNameHash
	bytes  []byte
	isHash bool
}

// NewLocalName builds a LocalName from a chunk-relative range, choosing the
// cheaper hash representation whenever the hash is valid and falling back
// to a borrowed byte slice otherwise.
func NewLocalName(chunk *Chunk, r Range, hash LocalNameHash) LocalName {
	if hash.IsEmpty() {
		return LocalName{bytes: chunk.Slice(r)}
	}
	return LocalName{hash: hash, isHash: true}
}

// LocalNameFromStringWithoutReplacements builds a LocalName from a decoded
// string for a given target encoding. It fails if the string contains
// characters the encoding can't represent without replacement — no numeric
// character references are injected, unlike text content where
// replacement is acceptable.
func LocalNameFromStringWithoutReplacements(s string, enc encoding.Encoding) (LocalName, error) {
	hash := FingerprintString(s)
	if !hash.IsEmpty() {
		return LocalName{hash: hash, isHash: true}, nil
	}

	b, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return LocalName{}, ErrHasReplacements
	}
	return LocalName{bytes: b}, nil
}

// IntoOwned detaches any borrowed byte slice so the LocalName remains valid
// across chunk boundaries (e.g. when tracked as the last start tag name
// across Feed calls).
func (n LocalName) IntoOwned() LocalName {
	if n.isHash || n.bytes == nil {
		return n
	}
	owned := make([]byte, len(n.bytes))
	copy(owned, n.bytes)
	return LocalName{bytes: owned}
}

// Equal implements LocalName<->LocalName comparison: Hash against Hash is
// integer equality, Bytes against Bytes is ASCII-case-insensitive, and any
// Hash/Bytes mix is always unequal (a name is Bytes-represented only when
// its hash is invalid, and names that match case-insensitively have the
// same hash validity, so this cannot be a false negative).
func (n LocalName) Equal(other LocalName) bool {
	switch {
	case n.isHash && other.isHash:
		return n.hash == other.hash
	case !n.isHash && !other.isHash:
		return bytes.EqualFold(n.bytes, other.bytes)
	default:
		return false
	}
}

// EqualTag reports whether this name is the standard tag identified by
// hash. A Bytes-represented name is, by construction, never equal to a
// valid tag constant.
func (n LocalName) EqualTag(tag LocalNameHash) bool {
	return n.isHash && n.hash.EqualTag(tag)
}

// Hash returns the underlying fingerprint and whether it is meaningful
// (false for a Bytes-represented name).
func (n LocalName) Hash() (LocalNameHash, bool) {
	return n.hash, n.isHash
}

// Bytes returns the underlying byte slice and whether it is meaningful
// (false for a Hash-represented name).
func (n LocalName) Bytes() ([]byte, bool) {
	return n.bytes, !n.isHash
}
