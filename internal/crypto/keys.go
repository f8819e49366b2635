package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/curve25519"

	"idvault/internal/domain"
)

// GenerateX25519 returns a fresh clamped private key and its public key.
func GenerateX25519() (domain.PrivateKey, domain.PublicKey, error) {
	var priv [32]byte
	if _, err := rand.Read(priv[:]); err != nil {
		return domain.PrivateKey{}, domain.PublicKey{}, err
	}
	priv[0] &= 248
	priv[31] &= 127
	priv[31] |= 64

	var pub [32]byte
	curve25519.ScalarBaseMult(&pub, &priv)
	return domain.PrivateKey(priv), domain.PublicKey(pub), nil
}

// PublicKeyOf derives the public key matching priv.
func PublicKeyOf(priv domain.PrivateKey) domain.PublicKey {
	var pub [32]byte
	p := [32]byte(priv)
	curve25519.ScalarBaseMult(&pub, &p)
	return pub
}

// NewLocalKey returns a fresh symmetric key sized for chacha20poly1305.
func NewLocalKey() (domain.LocalKey, error) {
	var k [chacha20poly1305.KeySize]byte
	if _, err := rand.Read(k[:]); err != nil {
		return domain.LocalKey{}, err
	}
	return domain.LocalKey(k), nil
}

// Fingerprint returns the SHA-256 hex digest of a public key.
func Fingerprint(pub domain.PublicKey) string {
	sum := sha256.Sum256(pub.Slice())
	return hex.EncodeToString(sum[:])
}

// KeyIDFor derives the key-based identifier for pub.
func KeyIDFor(pub domain.PublicKey) domain.KeyID {
	return domain.NewKeyID(Fingerprint(pub))
}
