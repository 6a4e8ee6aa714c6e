// Package paths provides centralized path handling for packlink.
//
// It resolves packlink's own XDG directories (configuration and state) and
// the conventional default locations of the two launcher roots packlink
// works between:
//
//   - Catalog: ~/.ftba/instances (FTB App instances)
//   - Host: $XDG_DATA_HOME/PrismLauncher (Prism Launcher data root)
//
// # Environment Variables
//
//   - PACKLINK_CONFIG_DIR: Override the config directory (default: $XDG_CONFIG_HOME/packlink)
//   - PACKLINK_STATE_DIR: Override the state directory (default: $XDG_STATE_HOME/packlink)
//
// Paths are computed on every call so that environment changes made by the
// caller (or by tests) are always honored.
package paths
