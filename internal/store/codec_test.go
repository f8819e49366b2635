package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idvault/internal/domain"
)

func TestCryptoIDRowRoundTrip(t *testing.T) {
	priv := domain.PrivateKey{1, 2, 3}
	local := domain.LocalKey{9}
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rec := domain.CryptoID{
		ID:         domain.NewKeyID("0xABCD"),
		PublicKey:  domain.PublicKey{4, 5, 6},
		PrivateKey: &priv,
		LocalKey:   &local,
		Nickname:   "me",
		Profiles:   []domain.PersonID{domain.NewPersonID("alice"), domain.NewPersonID("bob")},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	raw, err := encodeCryptoID(rec)
	require.NoError(t, err)

	got, err := decodeCryptoID(raw)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestCryptoIDRowFlattensIdentifiers(t *testing.T) {
	rec := domain.CryptoID{
		ID:       domain.NewKeyID("0xABCD"),
		Profiles: []domain.PersonID{domain.NewPersonID("alice")},
	}
	raw, err := encodeCryptoID(rec)
	require.NoError(t, err)

	var row map[string]any
	require.NoError(t, json.Unmarshal(raw, &row))
	assert.Equal(t, "ec_key:0xABCD", row["id"])
	assert.Equal(t, []any{"person:alice"}, row["profiles"])
}

func TestProfileRowRoundTrip(t *testing.T) {
	linked := domain.NewKeyID("0xABCD")
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rec := domain.Profile{
		ID:        domain.NewPersonID("alice"),
		Nickname:  "Alice",
		Network:   "matrix",
		Linked:    &linked,
		CreatedAt: now,
		UpdatedAt: now,
	}

	raw, err := encodeProfile(rec)
	require.NoError(t, err)

	got, err := decodeProfile(raw)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
	require.NotNil(t, got.Linked)
	assert.Equal(t, "0xABCD", got.Linked.Fingerprint())
}

func TestDecodeProfileRejectsWrongLinkedVariant(t *testing.T) {
	raw := []byte(`{"id":"person:alice","linked_crypto_id":"person:bob"}`)

	_, err := decodeProfile(raw)
	var decodeErr *domain.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, domain.KindKey, decodeErr.Want)
}

func TestDecodeCryptoIDRejectsUnknownTag(t *testing.T) {
	raw := []byte(`{"id":"mailbox:0xABCD"}`)

	_, err := decodeCryptoID(raw)
	var decodeErr *domain.DecodeError
	require.ErrorAs(t, err, &decodeErr)
}
