// Package commands defines the idvault CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - init     Create the store and bring its schema up to date
//   - keygen   Generate a new identity (lands in "self")
//   - import   Record a peer's public key (lands in "others")
//   - adopt    Attach a private key to an imported identity
//   - list     List stored identities and profiles
//   - show     Print one record in detail
//   - profile  Create, link, and list social profiles
//   - rm       Delete a record by identifier
//
// The root command reads configuration from the environment, applies flag
// overrides, and builds the dependency graph (store manager, record stores,
// services) before any subcommand runs.
package commands
