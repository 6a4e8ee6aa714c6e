// Package catalog reads FTB App instances (the Catalog) from disk.
//
// Each instance lives in its own directory below the Catalog root and is
// described by an instance.json manifest. Enumeration is forgiving: any
// entry that cannot be read or parsed is skipped so that one broken
// instance never hides the rest of the Catalog. Nothing is cached; every
// call re-reads the manifests.
package catalog
