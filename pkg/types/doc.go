// Package types defines the interfaces shared across packlink packages.
// FS is the filesystem abstraction the catalog, host and link packages
// work against.
package types
