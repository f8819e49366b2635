package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"idvault/internal/domain"
)

// Service manages social profile records using backing stores for profiles
// and identities.
type Service struct {
	profiles  domain.ProfileStore
	cryptoIDs domain.CryptoIDStore
}

// New returns a profile service backed by the given stores.
func New(profiles domain.ProfileStore, cryptoIDs domain.CryptoIDStore) *Service {
	return &Service{profiles: profiles, cryptoIDs: cryptoIDs}
}

// Create mints a fresh person identifier and stores the profile.
func (s *Service) Create(ctx context.Context, nickname, network string) (domain.Profile, error) {
	now := time.Now().UTC()
	rec := domain.Profile{
		ID:        domain.NewPersonID(uuid.NewString()),
		Nickname:  nickname,
		Network:   network,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.profiles.Create(ctx, rec); err != nil {
		return domain.Profile{}, err
	}
	return rec, nil
}

// Link points profile p at identity k and attaches p to k's profile set. The
// link is written even when the identity does not exist yet; attachment to
// the identity side happens only when it does.
func (s *Service) Link(ctx context.Context, p domain.PersonID, k domain.KeyID) (domain.Profile, error) {
	rec, err := s.profiles.Update(ctx, domain.ProfilePatch{ID: p, Linked: &k})
	if err != nil {
		return domain.Profile{}, err
	}
	if _, err := s.cryptoIDs.Update(ctx, domain.CryptoIDPatch{ID: k, Profiles: []domain.PersonID{p}}, domain.MergeAppend); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.Profile{}, err
	}
	return rec, nil
}

// Unlink clears the profile's identity link. The identity's attached-profiles
// set is left alone; stale members are tolerated the same way dangling links
// are.
func (s *Service) Unlink(ctx context.Context, p domain.PersonID) (domain.Profile, error) {
	return s.profiles.Update(ctx, domain.ProfilePatch{ID: p, Unlink: true})
}

// Rename sets the profile's display nickname.
func (s *Service) Rename(ctx context.Context, p domain.PersonID, nickname string) (domain.Profile, error) {
	return s.profiles.Update(ctx, domain.ProfilePatch{ID: p, Nickname: &nickname})
}

// Get returns the profile stored under p.
func (s *Service) Get(ctx context.Context, p domain.PersonID) (domain.Profile, bool, error) {
	return s.profiles.Get(ctx, p)
}

// List returns every stored profile.
func (s *Service) List(ctx context.Context) ([]domain.Profile, error) {
	return s.profiles.FindAll(ctx, nil)
}

// ByNetwork lists profiles on the named network via the secondary index.
func (s *Service) ByNetwork(ctx context.Context, network string) ([]domain.Profile, error) {
	return s.profiles.FindByNetwork(ctx, network)
}

// Remove deletes the profile; removing a missing identifier is a no-op.
func (s *Service) Remove(ctx context.Context, p domain.PersonID) error {
	return s.profiles.Delete(ctx, p)
}
