package domain

import "strings"

// Kind discriminates identifier variants.
type Kind string

const (
	// KindPerson tags stable handles to social profiles.
	KindPerson Kind = "person"
	// KindKey tags handles derived from a public-key fingerprint.
	KindKey Kind = "ec_key"
)

// Identifier is an immutable, typed handle to a stored entity.
//
// Every identifier round-trips through its canonical "kind:value" string, and
// two identifiers are equal iff their canonical strings are equal. The string
// form is what the storage engine keys and indexes on; everything above the
// storage boundary works with the concrete variant types.
type Identifier interface {
	Kind() Kind
	// String returns the canonical form used as a storage key.
	String() string
}

// PersonID is a stable handle to a social profile.
type PersonID struct {
	handle string
}

// NewPersonID returns the person identifier for handle.
func NewPersonID(handle string) PersonID { return PersonID{handle: handle} }

func (p PersonID) Kind() Kind     { return KindPerson }
func (p PersonID) String() string { return string(KindPerson) + ":" + p.handle }

// Handle returns the raw profile handle without the type tag.
func (p PersonID) Handle() string { return p.handle }

// IsZero reports whether p is the empty identifier.
func (p PersonID) IsZero() bool { return p.handle == "" }

// KeyID is a stable handle derived from a public-key fingerprint.
type KeyID struct {
	fingerprint string
}

// NewKeyID returns the key-based identifier for fingerprint.
func NewKeyID(fingerprint string) KeyID { return KeyID{fingerprint: fingerprint} }

func (k KeyID) Kind() Kind     { return KindKey }
func (k KeyID) String() string { return string(KindKey) + ":" + k.fingerprint }

// Fingerprint returns the public-key fingerprint without the type tag.
func (k KeyID) Fingerprint() string { return k.fingerprint }

// IsZero reports whether k is the empty identifier.
func (k KeyID) IsZero() bool { return k.fingerprint == "" }

// Parse decodes a canonical identifier string into its concrete variant. An
// unrecognised type tag yields a *DecodeError.
func Parse(s string) (Identifier, error) {
	tag, value, ok := strings.Cut(s, ":")
	if !ok {
		return nil, &DecodeError{Tag: s}
	}
	switch Kind(tag) {
	case KindPerson:
		return NewPersonID(value), nil
	case KindKey:
		return NewKeyID(value), nil
	default:
		return nil, &DecodeError{Tag: tag}
	}
}

// ParsePersonID decodes s and requires the person variant.
func ParsePersonID(s string) (PersonID, error) {
	id, err := Parse(s)
	if err != nil {
		return PersonID{}, err
	}
	p, ok := id.(PersonID)
	if !ok {
		return PersonID{}, &DecodeError{Tag: string(id.Kind()), Want: KindPerson}
	}
	return p, nil
}

// ParseKeyID decodes s and requires the key-based variant.
func ParseKeyID(s string) (KeyID, error) {
	id, err := Parse(s)
	if err != nil {
		return KeyID{}, err
	}
	k, ok := id.(KeyID)
	if !ok {
		return KeyID{}, &DecodeError{Tag: string(id.Kind()), Want: KindKey}
	}
	return k, nil
}
