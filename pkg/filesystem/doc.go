// Package filesystem provides filesystem implementations for packlink.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem and an afero-backed filesystem. Directory aliases
// (symbolic links) only work on filesystems that support them; afero
// backends without link support report afero.ErrNoSymlink and
// afero.ErrNoReadlink rather than simulating links.
package filesystem
