// Package config loads packlink's configuration: the Catalog root and the
// Host root, plus a few presentation defaults.
//
// Sources are layered with koanf, later ones winning:
//
//  1. embedded defaults.toml
//  2. conventional locations, used only when they exist on disk
//  3. the user file at $XDG_CONFIG_HOME/packlink/config.toml
//  4. PACKLINK_CATALOG_ROOT and PACKLINK_HOST_ROOT
//  5. command-line flags
//
// Empty values never override a lower layer.
package config
