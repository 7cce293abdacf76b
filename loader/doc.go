// Package loader ingests relationship graphs from YAML documents.
//
// A graph document is a flat list of entity specs. Every spec is validated
// and every reference parsed before anything is applied, so a malformed
// document never leaves the store in a half-loaded state.
package loader
