// Package app wires application dependencies for the CLI.
//
// It reads Config from the environment, builds the store manager and
// high-level services, and exposes them via the Wire struct for commands to
// use.
package app
