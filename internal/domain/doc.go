// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (identifiers, key handles, records) and contracts
// (store interfaces) only.
package domain
