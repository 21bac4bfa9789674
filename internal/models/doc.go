// Package models defines the domain entities for the participant showcase.
//
// The package contains two types:
//   - [Website] : a participant entry, uniquely identified by its numeric ID
//   - [Draft] : a Website as submitted by the admin form, before an ID has been assigned
//
// [SeedDocument] is the wire shape of the bundled seed file.
package models
