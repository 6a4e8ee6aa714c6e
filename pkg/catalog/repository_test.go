package catalog_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/packlink/pkg/catalog"
	"github.com/arthur-debert/packlink/pkg/errors"
	"github.com/arthur-debert/packlink/pkg/filesystem"
	"github.com/arthur-debert/packlink/pkg/loader"
	"github.com/arthur-debert/packlink/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerate_SkipsUnknownLoader(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	env.SetupInstance(testutil.InstanceConfig{
		ID: "abc123", Name: "All the Mods", Version: "1.0.0",
		MCVersion: "1.20.1", ModLoader: "1.20.1-forge-47.2.0",
	})
	env.SetupInstance(testutil.InstanceConfig{
		ID: "def456", Name: "Quilted", Version: "2.0.0",
		MCVersion: "1.20.1", ModLoader: "quilt-loader-0.19.0",
	})

	instances := catalog.Enumerate(env.FS, env.CatalogRoot)

	require.Len(t, instances, 1)
	assert.Equal(t, catalog.Instance{
		ID:          "abc123",
		Name:        "All the Mods",
		PackVersion: "1.0.0",
		GameVersion: "1.20.1",
		Loader:      loader.ModLoader{Kind: loader.Forge, Version: "47.2.0"},
	}, instances[0])
}

func TestEnumerate_SkipsBrokenEntries(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	env.SetupInstance(testutil.InstanceConfig{
		ID: "good", Name: "Good", Version: "1", MCVersion: "1.19.2",
		ModLoader: "fabric-loader-1.19.2-0.14.21",
	})
	env.SetupInstance(testutil.InstanceConfig{ID: "garbage", Raw: "{not json"})
	env.SetupInstance(testutil.InstanceConfig{ID: "missing-field", Raw: `{"uuid":"missing-field","name":"x","version":"1","modLoader":"1.20.1-forge-47.2.0"}`})
	env.SetupInstance(testutil.InstanceConfig{ID: "wrong-type", Raw: `{"uuid":"wrong-type","name":"x","version":1,"mcVersion":"1.20.1","modLoader":"1.20.1-forge-47.2.0"}`})
	require.NoError(t, env.FS.MkdirAll(filepath.Join(env.CatalogRoot, "empty-dir"), 0755))
	env.WriteFile(filepath.Join(env.CatalogRoot, "stray-file.txt"), "hello")

	instances := catalog.Enumerate(env.FS, env.CatalogRoot)

	require.Len(t, instances, 1)
	assert.Equal(t, "good", instances[0].ID)
	assert.Equal(t, loader.Fabric, instances[0].Loader.Kind)
}

func TestEnumerate_UnreadableRoot(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	assert.Empty(t, catalog.Enumerate(env.FS, filepath.Join(env.CatalogRoot, "does-not-exist")))
	assert.Empty(t, catalog.Enumerate(env.FS, ""))
}

func TestEnumerate_OSFilesystem(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	env.SetupInstance(testutil.InstanceConfig{
		ID: "abc123", Name: "Pack", Version: "1", MCVersion: "1.20.1",
		ModLoader: "1.20.1-forge-47.2.0",
	})

	instances := catalog.Enumerate(filesystem.NewOS(), env.CatalogRoot)
	require.Len(t, instances, 1)
	assert.Equal(t, "abc123", instances[0].ID)
}

func TestParseManifest(t *testing.T) {
	t.Run("unknown loader surfaces parse error", func(t *testing.T) {
		raw := `{"uuid":"a","name":"b","version":"1","mcVersion":"1.20.1","modLoader":"vanilla"}`
		_, err := catalog.ParseManifest([]byte(raw))
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownLoader))
	})

	t.Run("missing field names the field", func(t *testing.T) {
		raw := `{"uuid":"a","version":"1","mcVersion":"1.20.1","modLoader":"1.20.1-forge-47.2.0"}`
		_, err := catalog.ParseManifest([]byte(raw))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		assert.Equal(t, "name", errors.GetErrorDetails(err)["field"])
	})

	t.Run("uuid must be a plain directory name", func(t *testing.T) {
		for _, id := range []string{"", ".", "..", "../x", "a/b", `a\b`, "/abs"} {
			raw := fmt.Sprintf(`{"uuid":%q,"name":"b","version":"1","mcVersion":"1.20.1","modLoader":"1.20.1-forge-47.2.0"}`, id)
			_, err := catalog.ParseManifest([]byte(raw))
			require.Error(t, err, "uuid %q", id)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "uuid %q", id)
			assert.Equal(t, "uuid", errors.GetErrorDetails(err)["field"], "uuid %q", id)
		}
	})
}

func TestEnumerate_SkipsEscapingIDs(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	env.SetupInstance(testutil.InstanceConfig{
		ID: "good", Name: "Good", Version: "1", MCVersion: "1.19.2",
		ModLoader: "fabric-loader-1.19.2-0.14.21",
	})
	env.SetupInstance(testutil.InstanceConfig{ID: "escape", Raw: `{"uuid":"../x","name":"x","version":"1","mcVersion":"1.20.1","modLoader":"1.20.1-forge-47.2.0"}`})
	env.SetupInstance(testutil.InstanceConfig{ID: "blank", Raw: `{"uuid":"","name":"x","version":"1","mcVersion":"1.20.1","modLoader":"1.20.1-forge-47.2.0"}`})

	instances := catalog.Enumerate(env.FS, env.CatalogRoot)

	require.Len(t, instances, 1)
	assert.Equal(t, "good", instances[0].ID)
}

func TestDisplayNameAndPaths(t *testing.T) {
	inst := catalog.Instance{ID: "4f2a1c3e-9b7d-4e2a-8c1f-0a9b8c7d6e5f", Name: "Direwolf20"}
	assert.Equal(t, "Direwolf20 [4f2a1c3e...]", inst.DisplayName())

	plain := catalog.Instance{ID: "abc123", Name: "Pack"}
	assert.Equal(t, "Pack [abc123...]", plain.DisplayName())

	assert.Equal(t, filepath.Join("/c", "abc123"), catalog.Dir("/c", plain))
	assert.Equal(t, filepath.Join("/c", "abc123", "folder.jpg"), catalog.IconPath("/c", plain))
}

func TestFind(t *testing.T) {
	instances := []catalog.Instance{
		{ID: "4f2a1c3e-0001", Name: "Direwolf20"},
		{ID: "4f2a9999-0002", Name: "Stoneblock"},
		{ID: "77aa0000-0003", Name: "Stoneblock"},
	}

	tests := []struct {
		name    string
		query   string
		wantID  string
		wantErr errors.ErrorCode
	}{
		{"exact id", "77aa0000-0003", "77aa0000-0003", ""},
		{"unique name", "Direwolf20", "4f2a1c3e-0001", ""},
		{"unique prefix", "4f2a1", "4f2a1c3e-0001", ""},
		{"ambiguous name", "Stoneblock", "", errors.ErrInvalidInput},
		{"ambiguous prefix", "4f2a", "", errors.ErrInvalidInput},
		{"no match", "zzz", "", errors.ErrInstanceNotFound},
		{"empty", "", "", errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.Find(instances, tt.query)
			if tt.wantErr != "" {
				assert.True(t, errors.IsErrorCode(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestSorting(t *testing.T) {
	instances := []catalog.Instance{
		{ID: "3", Name: "beta", GameVersion: "1.12.2"},
		{ID: "1", Name: "Alpha", GameVersion: "1.20.1"},
		{ID: "4", Name: "delta", GameVersion: "snapshot"},
		{ID: "2", Name: "Gamma", GameVersion: "1.19.2"},
	}

	byName := append([]catalog.Instance(nil), instances...)
	catalog.SortByName(byName)
	assert.Equal(t, []string{"1", "3", "4", "2"}, ids(byName))

	byVersion := append([]catalog.Instance(nil), instances...)
	catalog.SortByGameVersion(byVersion)
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(byVersion))
}

func ids(instances []catalog.Instance) []string {
	out := make([]string, len(instances))
	for i, inst := range instances {
		out[i] = inst.ID
	}
	return out
}
