// Package crypto generates key material and derives the fingerprints that
// key-based identifiers are built from.
package crypto
