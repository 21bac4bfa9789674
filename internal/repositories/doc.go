// Package repositories implements SQLite persistence for the showcase.
//
// Storage mirrors the browser's localStorage: a single key/value table where each value is an opaque string.
//
// Key Implementations:
//   - [KeyValueRepository] : Get/Set/Delete of string values by key in the local_storage table
//   - [WebsiteStore] : the website list serialized as one JSON array under a single key
//
// Loading a key that was never written is not an error; it reports the value as absent so callers can fall back to seed data.
package repositories
