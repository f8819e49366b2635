package domain

import "context"

// CryptoIDStore persists cryptographic identity records across the
// self/others partitions.
type CryptoIDStore interface {
	// Create writes rec into the partition matching its key material,
	// overwriting any existing record with the same identifier.
	Create(ctx context.Context, rec CryptoID) error

	// Get looks the identifier up in "self" first, then "others".
	Get(ctx context.Context, id KeyID) (CryptoID, bool, error)

	// Find returns the first decoded record satisfying match.
	Find(ctx context.Context, match func(CryptoID) bool) (CryptoID, bool, error)

	// FindAll returns every decoded record satisfying match; a nil match
	// selects everything.
	FindAll(ctx context.Context, match func(CryptoID) bool) ([]CryptoID, error)

	// Update merges patch into the stored record, moving it between
	// partitions when the merge adds or removes private key material.
	// A missing record yields ErrNotFound.
	Update(ctx context.Context, patch CryptoIDPatch, mode MergeMode) (CryptoID, error)

	// Delete removes the record from whichever partition holds it; deleting
	// a missing identifier is a no-op.
	Delete(ctx context.Context, id KeyID) error
}

// ProfileStore persists social profile records.
type ProfileStore interface {
	Create(ctx context.Context, rec Profile) error
	Get(ctx context.Context, id PersonID) (Profile, bool, error)
	Find(ctx context.Context, match func(Profile) bool) (Profile, bool, error)
	FindAll(ctx context.Context, match func(Profile) bool) ([]Profile, error)

	// FindByNetwork uses the secondary index; it never scans the partition.
	FindByNetwork(ctx context.Context, network string) ([]Profile, error)

	// Update always merges in overwrite mode. A missing record yields
	// ErrNotFound.
	Update(ctx context.Context, patch ProfilePatch) (Profile, error)

	Delete(ctx context.Context, id PersonID) error
}
