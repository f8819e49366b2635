package domain

import "time"

// CryptoID is a cryptographic identity record.
//
// Records carrying private key material live exclusively in the "self"
// partition; all others live in "others". A record's identifier is unique
// across the union of both partitions.
type CryptoID struct {
	ID         KeyID
	PublicKey  PublicKey
	PrivateKey *PrivateKey
	LocalKey   *LocalKey
	Nickname   string
	// Profiles is the set of attached person identifiers (unique, unordered).
	Profiles  []PersonID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsSelf reports whether the record carries private key material, which
// determines its partition.
func (c CryptoID) IsSelf() bool { return c.PrivateKey != nil }

// Profile is a social profile record.
type Profile struct {
	ID       PersonID
	Nickname string
	// Network names the service the profile belongs to; profiles are
	// secondarily indexed by it.
	Network  string
	LocalKey *LocalKey
	// Linked points at the CryptoID this profile belongs to, if any. Links
	// are not enforced at write time; a dangling link is resolved lazily by
	// the caller.
	Linked    *KeyID
	CreatedAt time.Time
	UpdatedAt time.Time
}
