// Package profile manages social profile records and their links to
// cryptographic identities.
package profile
