package domain

import "fmt"

// Key handles are opaque to this layer: the store never inspects or derives
// from them, it only carries them alongside the record.

// PublicKey is an X25519 public key handle.
type PublicKey [32]byte

// PrivateKey is an X25519 private key handle.
type PrivateKey [32]byte

// LocalKey is a locally held symmetric key handle.
type LocalKey [32]byte

func (k PublicKey) Slice() []byte  { return k[:] }
func (k PrivateKey) Slice() []byte { return k[:] }
func (k LocalKey) Slice() []byte   { return k[:] }

// MustPublicKey copies b into a PublicKey, panicking on bad length.
func MustPublicKey(b []byte) PublicKey {
	if len(b) != 32 {
		panic(fmt.Errorf("public key: want 32 bytes, got %d", len(b)))
	}
	var out PublicKey
	copy(out[:], b)
	return out
}

// MustPrivateKey copies b into a PrivateKey, panicking on bad length.
func MustPrivateKey(b []byte) PrivateKey {
	if len(b) != 32 {
		panic(fmt.Errorf("private key: want 32 bytes, got %d", len(b)))
	}
	var out PrivateKey
	copy(out[:], b)
	return out
}
