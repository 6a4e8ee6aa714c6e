// Package testutil provides utilities for testing packlink components.
//
// Key components:
//   - TestEnvironment: a Catalog root and a Host root with isolation and cleanup
//   - InstanceConfig: declarative Catalog instance setup
//   - HostConfig: declarative Host configuration setup
//
// Usage guidelines:
//   - Catalog parsing tests can use EnvMemoryOnly for speed and isolation
//   - Anything touching directory aliases must use EnvIsolated, since only
//     the OS filesystem supports symbolic links
//   - All test data should be defined inline, not in external files
package testutil
