package domain

// MergeMode selects how a partial update combines with the stored record.
type MergeMode int

const (
	// MergeOverwrite replaces every field present in the patch; absent fields
	// keep their stored values.
	MergeOverwrite MergeMode = iota
	// MergeAppend unions set-valued fields (the attached-profiles set) and
	// replaces scalars.
	MergeAppend
)

// CryptoIDPatch is a partial CryptoID update. Nil fields are left untouched.
//
// Setting PrivateKey on a record stored in "others" changes its partition: the
// update moves the record into "self" as a side effect.
type CryptoIDPatch struct {
	ID         KeyID
	PublicKey  *PublicKey
	PrivateKey *PrivateKey
	LocalKey   *LocalKey
	Nickname   *string
	Profiles   []PersonID
}

// ProfilePatch is a partial Profile update. Nil fields are left untouched;
// Unlink clears the linked identity.
type ProfilePatch struct {
	ID       PersonID
	Nickname *string
	Network  *string
	LocalKey *LocalKey
	Linked   *KeyID
	Unlink   bool
}
