// Package store persists identity and profile records in an embedded bbolt
// database.
//
// The Manager owns the process-wide database handle: it opens the file on
// first use (concurrent first calls are coalesced) and runs any pending
// schema migrations before handing the database out. Records are kept as JSON
// rows keyed by the canonical string form of their identifier, across three
// partitions:
//
//   - "self"      CryptoID records holding private key material
//   - "others"    CryptoID records without private key material
//   - "profiles"  social profile records, secondarily indexed by network
//
// CryptoIDs and Profiles implement the domain store interfaces on top of the
// Manager. Storage-engine failures propagate to the caller unmodified; this
// layer performs no retries.
package store
