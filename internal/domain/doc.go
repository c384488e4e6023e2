// Package domain contains the core domain model for Marina.
//
// The domain is persistence- and UI-agnostic: it does not know about the
// delimited file format, the filesystem, or the terminal. Infra/adapters map
// into/from these types.
package domain
