package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idvault/internal/domain"
)

func TestParseRoundTrip(t *testing.T) {
	ids := []domain.Identifier{
		domain.NewPersonID("alice"),
		domain.NewPersonID("b7c9d1e3-55aa-4f00-9c7e-2d57e01fa9c2"),
		domain.NewKeyID("0xABCD"),
		domain.NewKeyID("9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"),
	}
	for _, id := range ids {
		decoded, err := domain.Parse(id.String())
		require.NoError(t, err, id.String())

		assert.Equal(t, id.String(), decoded.String())
		assert.Equal(t, id.Kind(), decoded.Kind())
		assert.Equal(t, id, decoded)
	}
}

func TestParseRestoresVariant(t *testing.T) {
	decoded, err := domain.Parse("ec_key:0xABCD")
	require.NoError(t, err)

	k, ok := decoded.(domain.KeyID)
	require.True(t, ok, "want KeyID, got %T", decoded)
	assert.Equal(t, "0xABCD", k.Fingerprint())

	decoded, err = domain.Parse("person:alice")
	require.NoError(t, err)

	p, ok := decoded.(domain.PersonID)
	require.True(t, ok, "want PersonID, got %T", decoded)
	assert.Equal(t, "alice", p.Handle())
}

func TestParseUnknownTag(t *testing.T) {
	for _, s := range []string{"mailbox:alice", "no-separator", ""} {
		_, err := domain.Parse(s)
		require.Error(t, err, s)

		var decodeErr *domain.DecodeError
		assert.ErrorAs(t, err, &decodeErr, s)
	}
}

func TestParseVariantMismatch(t *testing.T) {
	_, err := domain.ParseKeyID("person:alice")
	var decodeErr *domain.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, domain.KindKey, decodeErr.Want)

	_, err = domain.ParsePersonID("ec_key:0xABCD")
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, domain.KindPerson, decodeErr.Want)
}

func TestValueWithColonRoundTrips(t *testing.T) {
	id := domain.NewPersonID("net:alice")
	decoded, err := domain.ParsePersonID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, decoded)
}
