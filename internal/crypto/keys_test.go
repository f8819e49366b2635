package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idvault/internal/crypto"
	"idvault/internal/domain"
)

func TestGenerateX25519(t *testing.T) {
	priv, pub, err := crypto.GenerateX25519()
	require.NoError(t, err)

	assert.NotEqual(t, domain.PrivateKey{}, priv)
	assert.Equal(t, pub, crypto.PublicKeyOf(priv))

	// Clamping per RFC 7748.
	assert.Zero(t, priv[0]&7)
	assert.Zero(t, priv[31]&128)
	assert.NotZero(t, priv[31]&64)
}

func TestFingerprintIsStable(t *testing.T) {
	pub := domain.PublicKey{1, 2, 3}

	fp := crypto.Fingerprint(pub)
	assert.Len(t, fp, 64)
	assert.Equal(t, fp, crypto.Fingerprint(pub))
	assert.NotEqual(t, fp, crypto.Fingerprint(domain.PublicKey{3, 2, 1}))
}

func TestKeyIDForRoundTrips(t *testing.T) {
	_, pub, err := crypto.GenerateX25519()
	require.NoError(t, err)

	id := crypto.KeyIDFor(pub)
	assert.Equal(t, domain.KindKey, id.Kind())
	assert.Equal(t, crypto.Fingerprint(pub), id.Fingerprint())

	decoded, err := domain.ParseKeyID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, decoded)
}

func TestNewLocalKey(t *testing.T) {
	a, err := crypto.NewLocalKey()
	require.NoError(t, err)
	b, err := crypto.NewLocalKey()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
