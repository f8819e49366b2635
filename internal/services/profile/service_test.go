package profile_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idvault/internal/domain"
	identitysvc "idvault/internal/services/identity"
	profilesvc "idvault/internal/services/profile"
	"idvault/internal/store"
)

func newServices(t *testing.T) (*profilesvc.Service, *identitysvc.Service) {
	t.Helper()
	m := store.NewManager(filepath.Join(t.TempDir(), "idvault.db"), nil)
	t.Cleanup(func() { _ = m.Close() })
	cryptoIDs := store.NewCryptoIDs(m)
	return profilesvc.New(store.NewProfiles(m), cryptoIDs), identitysvc.New(cryptoIDs)
}

func TestCreateMintsPersonID(t *testing.T) {
	ctx := context.Background()
	profiles, _ := newServices(t)

	rec, err := profiles.Create(ctx, "Alice", "matrix")
	require.NoError(t, err)

	assert.Equal(t, domain.KindPerson, rec.ID.Kind())
	assert.NotEmpty(t, rec.ID.Handle())
	assert.Equal(t, "matrix", rec.Network)

	other, err := profiles.Create(ctx, "Alice", "matrix")
	require.NoError(t, err)
	assert.NotEqual(t, rec.ID, other.ID)
}

func TestLinkAttachesBothSides(t *testing.T) {
	ctx := context.Background()
	profiles, identities := newServices(t)

	prof, err := profiles.Create(ctx, "Alice", "matrix")
	require.NoError(t, err)
	id, err := identities.Generate(ctx, "me")
	require.NoError(t, err)

	linked, err := profiles.Link(ctx, prof.ID, id.ID)
	require.NoError(t, err)
	require.NotNil(t, linked.Linked)
	assert.Equal(t, id.ID, *linked.Linked)

	got, ok, err := identities.Get(ctx, id.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, got.Profiles, prof.ID)
}

func TestLinkToMissingIdentityDangles(t *testing.T) {
	ctx := context.Background()
	profiles, _ := newServices(t)

	prof, err := profiles.Create(ctx, "Alice", "matrix")
	require.NoError(t, err)

	ghost := domain.NewKeyID("missing")
	linked, err := profiles.Link(ctx, prof.ID, ghost)
	require.NoError(t, err)
	require.NotNil(t, linked.Linked)
	assert.Equal(t, ghost, *linked.Linked)
}

func TestUnlink(t *testing.T) {
	ctx := context.Background()
	profiles, identities := newServices(t)

	prof, err := profiles.Create(ctx, "Alice", "matrix")
	require.NoError(t, err)
	id, err := identities.Generate(ctx, "me")
	require.NoError(t, err)

	_, err = profiles.Link(ctx, prof.ID, id.ID)
	require.NoError(t, err)

	unlinked, err := profiles.Unlink(ctx, prof.ID)
	require.NoError(t, err)
	assert.Nil(t, unlinked.Linked)
}

func TestByNetwork(t *testing.T) {
	ctx := context.Background()
	profiles, _ := newServices(t)

	_, err := profiles.Create(ctx, "Alice", "matrix")
	require.NoError(t, err)
	_, err = profiles.Create(ctx, "Bob", "irc")
	require.NoError(t, err)

	matrix, err := profiles.ByNetwork(ctx, "matrix")
	require.NoError(t, err)
	require.Len(t, matrix, 1)
	assert.Equal(t, "Alice", matrix[0].Nickname)

	all, err := profiles.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
