package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idvault/internal/domain"
	"idvault/internal/store"
)

func newProfiles(t *testing.T) (*store.Manager, *store.Profiles) {
	t.Helper()
	m := store.NewManager(filepath.Join(t.TempDir(), "idvault.db"), nil)
	t.Cleanup(func() { _ = m.Close() })
	return m, store.NewProfiles(m)
}

func makeProfile(t *testing.T, handle, network string) domain.Profile {
	t.Helper()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return domain.Profile{
		ID:        domain.NewPersonID(handle),
		Nickname:  "n-" + handle,
		Network:   network,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestProfileCreateGetDelete(t *testing.T) {
	ctx := context.Background()
	_, s := newProfiles(t)

	rec := makeProfile(t, "alice", "matrix")
	require.NoError(t, s.Create(ctx, rec))

	got, ok, err := s.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, rec, got)

	require.NoError(t, s.Delete(ctx, rec.ID))
	require.NoError(t, s.Delete(ctx, rec.ID)) // missing is a no-op

	_, ok, err = s.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindByNetworkUsesIndex(t *testing.T) {
	ctx := context.Background()
	_, s := newProfiles(t)

	require.NoError(t, s.Create(ctx, makeProfile(t, "alice", "matrix")))
	require.NoError(t, s.Create(ctx, makeProfile(t, "bob", "matrix")))
	require.NoError(t, s.Create(ctx, makeProfile(t, "carol", "irc")))

	matrix, err := s.FindByNetwork(ctx, "matrix")
	require.NoError(t, err)
	require.Len(t, matrix, 2)
	for _, rec := range matrix {
		assert.Equal(t, "matrix", rec.Network)
	}

	none, err := s.FindByNetwork(ctx, "xmpp")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdateMovesIndexEntry(t *testing.T) {
	ctx := context.Background()
	_, s := newProfiles(t)

	rec := makeProfile(t, "alice", "matrix")
	require.NoError(t, s.Create(ctx, rec))

	network := "irc"
	_, err := s.Update(ctx, domain.ProfilePatch{ID: rec.ID, Network: &network})
	require.NoError(t, err)

	matrix, err := s.FindByNetwork(ctx, "matrix")
	require.NoError(t, err)
	assert.Empty(t, matrix)

	irc, err := s.FindByNetwork(ctx, "irc")
	require.NoError(t, err)
	require.Len(t, irc, 1)
	assert.Equal(t, rec.ID, irc[0].ID)
}

func TestDeleteRemovesIndexEntry(t *testing.T) {
	ctx := context.Background()
	_, s := newProfiles(t)

	rec := makeProfile(t, "alice", "matrix")
	require.NoError(t, s.Create(ctx, rec))
	require.NoError(t, s.Delete(ctx, rec.ID))

	matrix, err := s.FindByNetwork(ctx, "matrix")
	require.NoError(t, err)
	assert.Empty(t, matrix)
}

func TestUpdateLinkAndUnlink(t *testing.T) {
	ctx := context.Background()
	_, s := newProfiles(t)

	rec := makeProfile(t, "alice", "matrix")
	require.NoError(t, s.Create(ctx, rec))

	linked := domain.NewKeyID("0xABCD")
	updated, err := s.Update(ctx, domain.ProfilePatch{ID: rec.ID, Linked: &linked})
	require.NoError(t, err)
	require.NotNil(t, updated.Linked)
	assert.Equal(t, linked, *updated.Linked)
	assert.Equal(t, "n-alice", updated.Nickname)

	updated, err = s.Update(ctx, domain.ProfilePatch{ID: rec.ID, Unlink: true})
	require.NoError(t, err)
	assert.Nil(t, updated.Linked)
}

func TestProfileUpdateMissingRecord(t *testing.T) {
	ctx := context.Background()
	_, s := newProfiles(t)

	nickname := "B"
	_, err := s.Update(ctx, domain.ProfilePatch{ID: domain.NewPersonID("missing"), Nickname: &nickname})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestLinkScenario walks the full cross-store flow: a profile and a peer
// identity are created independently, the identity gains private key material
// and moves into "self", and the profile's link decodes back to the same
// key-based identifier.
func TestLinkScenario(t *testing.T) {
	ctx := context.Background()
	m, profiles := newProfiles(t)
	cryptoIDs := store.NewCryptoIDs(m)

	alice := makeProfile(t, "alice", "matrix")
	require.NoError(t, profiles.Create(ctx, alice))

	k := makeCryptoID(t, "0xABCD", false)
	require.NoError(t, cryptoIDs.Create(ctx, k))
	assert.True(t, inPartition(t, m, store.PartitionOthers, k.ID))

	priv := domain.PrivateKey{7}
	_, err := cryptoIDs.Update(ctx, domain.CryptoIDPatch{ID: k.ID, PrivateKey: &priv}, domain.MergeOverwrite)
	require.NoError(t, err)
	assert.True(t, inPartition(t, m, store.PartitionSelf, k.ID))
	assert.False(t, inPartition(t, m, store.PartitionOthers, k.ID))

	_, err = profiles.Update(ctx, domain.ProfilePatch{ID: alice.ID, Linked: &k.ID})
	require.NoError(t, err)

	got, ok, err := profiles.Get(ctx, alice.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, got.Linked)
	assert.Equal(t, domain.KindKey, got.Linked.Kind())
	assert.Equal(t, k.ID.String(), got.Linked.String())
}
