// Package link creates, inspects and removes links between Catalog
// instances and the Host launcher.
//
// A link has no record of its own. It is the filesystem state below the
// Host instance directory:
//
//	{instance_dir}/{id}/instance.cfg     Host instance metadata
//	{instance_dir}/{id}/mmc-pack.json    Host component list
//	{instance_dir}/{id}/.minecraft  ->   {catalog_root}/{id}
//
// and an optional icon copied to {icon_dir}/{id}.jpg. Status is re-derived
// from the alias on every query.
//
// Create writes the metadata before the alias, so an interrupted Create
// never leaves an alias without Host metadata. Neither Create nor Remove
// rolls back completed steps on failure. A partially created folder is
// later reported as not linked, and Create refuses to reuse it; cleaning
// it up is left to the user.
package link
