package glif

import (
	"github.com/emirpasic/gods/sets/hashset"
)

// Identifier is an opaque token identifying an element within one glyph.
// Identifiers are a format V2 feature; the UFO spec restricts them to
// 1..100 bytes of printable ASCII.
type Identifier struct {
	value string
}

// NewIdentifier validates candidate and returns it as an Identifier.
func NewIdentifier(candidate string) (Identifier, error) {
	if !validIdentifier(candidate) {
		return Identifier{}, errParse(BadIdentifier)
	}
	return Identifier{value: candidate}, nil
}

func (id Identifier) String() string {
	return id.value
}

func validIdentifier(s string) bool {
	if len(s) == 0 || len(s) > 100 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

// identifierRegistry tracks every identifier accepted so far in the current
// document. It lives for one Parse call and is discarded afterwards, so
// concurrent parses never interfere.
type identifierRegistry struct {
	seen *hashset.Set
}

func newIdentifierRegistry() *identifierRegistry {
	return &identifierRegistry{seen: hashset.New()}
}

// register validates candidate against the format version and the running
// uniqueness set. Identifiers are forbidden under V1; a syntactically bad
// candidate is BadIdentifier; a re-occurring one is DuplicateIdentifier.
func (r *identifierRegistry) register(candidate string, format GlifVersion) (*Identifier, error) {
	if format == V1 {
		return nil, errParse(UnexpectedAttribute)
	}
	id, err := NewIdentifier(candidate)
	if err != nil {
		return nil, err
	}
	if r.seen.Contains(id.value) {
		return nil, errParse(DuplicateIdentifier)
	}
	r.seen.Add(id.value)
	return &id, nil
}
