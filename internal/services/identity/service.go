package identity

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"idvault/internal/crypto"
	"idvault/internal/domain"
	"idvault/internal/util/memzero"
)

// ErrKeyMismatch is returned when a private key does not match the public key
// the record's identifier was derived from.
var ErrKeyMismatch = errors.New("private key does not match the stored public key")

// Service manages cryptographic identity records using a backing store.
type Service struct {
	store domain.CryptoIDStore
}

// New returns an identity service backed by the given store.
func New(s domain.CryptoIDStore) *Service { return &Service{store: s} }

// Generate creates a fresh identity with private key material and stores it;
// the record lands in "self". The identifier is the fingerprint of the new
// public key.
func (s *Service) Generate(ctx context.Context, nickname string) (domain.CryptoID, error) {
	priv, pub, err := crypto.GenerateX25519()
	if err != nil {
		return domain.CryptoID{}, err
	}
	now := time.Now().UTC()
	rec := domain.CryptoID{
		ID:         crypto.KeyIDFor(pub),
		PublicKey:  pub,
		PrivateKey: &priv,
		Nickname:   nickname,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.store.Create(ctx, rec); err != nil {
		memzero.Zero(priv[:])
		return domain.CryptoID{}, err
	}
	return rec, nil
}

// Import records a peer's public key without private material; the record
// lands in "others".
func (s *Service) Import(ctx context.Context, pub domain.PublicKey, nickname string) (domain.CryptoID, error) {
	now := time.Now().UTC()
	rec := domain.CryptoID{
		ID:        crypto.KeyIDFor(pub),
		PublicKey: pub,
		Nickname:  nickname,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(ctx, rec); err != nil {
		return domain.CryptoID{}, err
	}
	return rec, nil
}

// Adopt attaches private key material to an existing record, moving it into
// "self". The key must match the record's public key.
func (s *Service) Adopt(ctx context.Context, id domain.KeyID, priv domain.PrivateKey) (domain.CryptoID, error) {
	rec, ok, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.CryptoID{}, err
	}
	if !ok {
		return domain.CryptoID{}, domain.ErrNotFound
	}
	pub := crypto.PublicKeyOf(priv)
	if subtle.ConstantTimeCompare(pub.Slice(), rec.PublicKey.Slice()) != 1 {
		memzero.Zero(priv[:])
		return domain.CryptoID{}, ErrKeyMismatch
	}
	return s.store.Update(ctx, domain.CryptoIDPatch{ID: id, PrivateKey: &priv}, domain.MergeOverwrite)
}

// Rename sets the record's display nickname.
func (s *Service) Rename(ctx context.Context, id domain.KeyID, nickname string) (domain.CryptoID, error) {
	return s.store.Update(ctx, domain.CryptoIDPatch{ID: id, Nickname: &nickname}, domain.MergeOverwrite)
}

// AttachProfile adds a person identifier to the record's attached-profiles
// set.
func (s *Service) AttachProfile(ctx context.Context, id domain.KeyID, p domain.PersonID) (domain.CryptoID, error) {
	return s.store.Update(ctx, domain.CryptoIDPatch{ID: id, Profiles: []domain.PersonID{p}}, domain.MergeAppend)
}

// Get returns the record stored under id.
func (s *Service) Get(ctx context.Context, id domain.KeyID) (domain.CryptoID, bool, error) {
	return s.store.Get(ctx, id)
}

// List returns every stored identity record.
func (s *Service) List(ctx context.Context) ([]domain.CryptoID, error) {
	return s.store.FindAll(ctx, nil)
}

// Remove deletes the record; removing a missing identifier is a no-op.
func (s *Service) Remove(ctx context.Context, id domain.KeyID) error {
	return s.store.Delete(ctx, id)
}
