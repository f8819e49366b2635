// Package identity mints and manages cryptographic identity records.
//
// It generates X25519 key pairs, derives key-based identifiers from public
// key fingerprints, and persists the records via domain.CryptoIDStore.
// Identities with private key material land in the "self" partition; imported
// peer keys land in "others".
package identity
