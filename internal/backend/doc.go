// Package backend keeps the catalogue of key-value storage backends a Yokan
// provider can host, and records which of them keep their data on disk.
//
// Disk-backed backends need a filesystem location for every database, so the
// generator consults this registry before deriving database paths.
package backend
