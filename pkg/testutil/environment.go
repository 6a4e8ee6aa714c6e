// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Orchestrate test environments with Catalog and Host roots

package testutil

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/arthur-debert/packlink/pkg/filesystem"
	"github.com/arthur-debert/packlink/pkg/types"
	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a Catalog root and a Host root on one filesystem
type TestEnvironment struct {
	CatalogRoot string
	HostRoot    string
	HomeDir     string

	FS types.FS

	Type EnvType

	t *testing.T
}

// InstanceConfig describes a Catalog instance to create
type InstanceConfig struct {
	ID        string
	Name      string
	Version   string
	MCVersion string
	ModLoader string
	WithIcon  bool
	// Raw replaces the generated manifest when set
	Raw string
}

// HostConfig describes a Host configuration file to create
type HostConfig struct {
	// FileName defaults to prismlauncher.cfg
	FileName string
	// Entries are written as sorted key=value lines
	Entries map[string]string
	// CreateDirs creates the directories named by InstanceDir and IconsDir
	CreateDirs bool
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		t:    t,
		Type: envType,
	}

	var base string
	switch envType {
	case EnvMemoryOnly:
		base = "/virtual"
		env.FS = filesystem.NewAferoFS(afero.NewMemMapFs())
	case EnvIsolated:
		// Symlink comparisons are path-exact, so resolve any symlinked temp dir
		base = resolvedTempDir(t)
		env.FS = filesystem.NewOS()
	}

	env.CatalogRoot = filepath.Join(base, "ftba", "instances")
	env.HostRoot = filepath.Join(base, "PrismLauncher")
	env.HomeDir = filepath.Join(base, "home")

	for _, dir := range []string{env.CatalogRoot, env.HostRoot, env.HomeDir} {
		if err := env.FS.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	return env
}

// SetupInstance writes an instance manifest (and icon) below the Catalog root
func (env *TestEnvironment) SetupInstance(cfg InstanceConfig) string {
	env.t.Helper()

	dir := filepath.Join(env.CatalogRoot, cfg.ID)
	if err := env.FS.MkdirAll(dir, 0755); err != nil {
		env.t.Fatalf("Failed to create instance directory: %v", err)
	}

	manifest := cfg.Raw
	if manifest == "" {
		manifest = string(ManifestJSON(cfg))
	}
	env.WriteFile(filepath.Join(dir, "instance.json"), manifest)

	if cfg.WithIcon {
		env.WriteFile(filepath.Join(dir, "folder.jpg"), "JPEG:"+cfg.ID)
	}

	return dir
}

// SetupHost writes a Host configuration file below the Host root
func (env *TestEnvironment) SetupHost(cfg HostConfig) string {
	env.t.Helper()

	name := cfg.FileName
	if name == "" {
		name = "prismlauncher.cfg"
	}

	keys := make([]string, 0, len(cfg.Entries))
	for k := range cfg.Entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("[General]\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%s\n", k, cfg.Entries[k])
	}

	path := filepath.Join(env.HostRoot, name)
	env.WriteFile(path, b.String())

	if cfg.CreateDirs {
		for _, key := range []string{"InstanceDir", "IconsDir"} {
			if rel, ok := cfg.Entries[key]; ok {
				if err := env.FS.MkdirAll(filepath.Join(env.HostRoot, rel), 0755); err != nil {
					env.t.Fatalf("Failed to create %s: %v", key, err)
				}
			}
		}
	}

	return path
}

// SetupDefaultHost writes InstanceDir=instances and IconsDir=icons and
// creates both directories
func (env *TestEnvironment) SetupDefaultHost() {
	env.t.Helper()
	env.SetupHost(HostConfig{
		Entries: map[string]string{
			"InstanceDir": "instances",
			"IconsDir":    "icons",
		},
		CreateDirs: true,
	})
}

// WriteFile writes content, creating parent directories
func (env *TestEnvironment) WriteFile(path, content string) {
	env.t.Helper()

	if err := env.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := env.FS.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write file %s: %v", path, err)
	}
}

// ManifestJSON renders a Catalog manifest for the given instance
func ManifestJSON(cfg InstanceConfig) []byte {
	doc := map[string]interface{}{
		"uuid":      cfg.ID,
		"name":      cfg.Name,
		"version":   cfg.Version,
		"mcVersion": cfg.MCVersion,
		"modLoader": cfg.ModLoader,
		// Extra fields the FTB App writes are ignored by packlink
		"memory":   4096,
		"jvmArgs":  "",
		"embedded": false,
	}
	data, _ := json.MarshalIndent(doc, "", "  ")
	return data
}
