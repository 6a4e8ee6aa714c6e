package config

import (
	"os"
	"path/filepath"
	"testing"

	plerrors "github.com/arthur-debert/packlink/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dirs struct {
	home    string
	data    string
	config  string
	catalog string
	host    string
}

// isolate points every location packlink reads at fresh temp dirs
func isolate(t *testing.T) dirs {
	t.Helper()

	base := t.TempDir()
	d := dirs{
		home:   filepath.Join(base, "home"),
		data:   filepath.Join(base, "data"),
		config: filepath.Join(base, "config"),
	}
	d.catalog = filepath.Join(d.home, ".ftba", "instances")
	d.host = filepath.Join(d.data, "PrismLauncher")

	for _, dir := range []string{d.home, d.data, d.config} {
		require.NoError(t, os.MkdirAll(dir, 0755))
	}

	t.Setenv("HOME", d.home)
	t.Setenv("XDG_DATA_HOME", d.data)
	t.Setenv("PACKLINK_CONFIG_DIR", d.config)
	t.Setenv("PACKLINK_CATALOG_ROOT", "")
	t.Setenv("PACKLINK_HOST_ROOT", "")
	return d
}

func writeConfig(t *testing.T, d dirs, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(d.config, "config.toml"), []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	d := isolate(t)

	cfg, err := Load(Overrides{})
	require.NoError(t, err)

	assert.Empty(t, cfg.Catalog.Root, "conventional roots are only used when present")
	assert.Empty(t, cfg.Host.Root)
	assert.Equal(t, SortByName, cfg.List.Sort)
	assert.Equal(t, filepath.Join(d.config, "config.toml"), cfg.File)
}

func TestLoad_ConventionalRoots(t *testing.T) {
	d := isolate(t)
	require.NoError(t, os.MkdirAll(d.catalog, 0755))
	require.NoError(t, os.MkdirAll(d.host, 0755))

	cfg, err := Load(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, d.catalog, cfg.Catalog.Root)
	assert.Equal(t, d.host, cfg.Host.Root)
}

func TestLoad_Precedence(t *testing.T) {
	d := isolate(t)
	require.NoError(t, os.MkdirAll(d.catalog, 0755))

	fileCatalog := filepath.Join(d.home, "file-catalog")
	writeConfig(t, d, `
[catalog]
root = "`+fileCatalog+`"

[host]
root = "~/prism"

[list]
sort = "Version"
`)

	t.Run("user file wins over conventional", func(t *testing.T) {
		cfg, err := Load(Overrides{})
		require.NoError(t, err)
		assert.Equal(t, fileCatalog, cfg.Catalog.Root)
		assert.Equal(t, filepath.Join(d.home, "prism"), cfg.Host.Root, "~ is expanded")
		assert.Equal(t, SortByVersion, cfg.List.Sort)
	})

	t.Run("environment wins over file", func(t *testing.T) {
		t.Setenv("PACKLINK_HOST_ROOT", "/env/host")
		cfg, err := Load(Overrides{})
		require.NoError(t, err)
		assert.Equal(t, "/env/host", cfg.Host.Root)
		assert.Equal(t, fileCatalog, cfg.Catalog.Root)
	})

	t.Run("flags win over environment", func(t *testing.T) {
		t.Setenv("PACKLINK_HOST_ROOT", "/env/host")
		cfg, err := Load(Overrides{HostRoot: "/flag/host", Sort: "name"})
		require.NoError(t, err)
		assert.Equal(t, "/flag/host", cfg.Host.Root)
		assert.Equal(t, SortByName, cfg.List.Sort)
	})
}

func TestLoad_EmptyValuesDoNotOverride(t *testing.T) {
	d := isolate(t)
	require.NoError(t, os.MkdirAll(d.catalog, 0755))
	writeConfig(t, d, "[catalog]\nroot = \"\"\n")
	t.Setenv("PACKLINK_CATALOG_ROOT", "  ")

	cfg, err := Load(Overrides{CatalogRoot: ""})
	require.NoError(t, err)
	assert.Equal(t, d.catalog, cfg.Catalog.Root)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("malformed file", func(t *testing.T) {
		d := isolate(t)
		writeConfig(t, d, "[catalog\nroot = ")

		_, err := Load(Overrides{})
		require.Error(t, err)
		assert.True(t, plerrors.IsErrorCode(err, plerrors.ErrConfigLoad))
	})

	t.Run("unknown sort", func(t *testing.T) {
		isolate(t)
		_, err := Load(Overrides{Sort: "size"})
		assert.True(t, plerrors.IsErrorCode(err, plerrors.ErrInvalidInput))
	})
}

func TestSave_RoundTrip(t *testing.T) {
	d := isolate(t)
	catalog := filepath.Join(d.home, "catalog")
	require.NoError(t, os.MkdirAll(catalog, 0755))

	cfg, err := Load(Overrides{})
	require.NoError(t, err)

	require.NoError(t, cfg.Set("catalog", catalog))
	cfg.Host.Root = filepath.Join(d.home, "missing")

	path, err := Save(cfg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(d.config, "config.toml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), catalog)
	assert.NotContains(t, string(data), "missing", "roots that do not exist are not persisted")

	reloaded, err := Load(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, catalog, reloaded.Catalog.Root)
	assert.Empty(t, reloaded.Host.Root)
}

func TestSet(t *testing.T) {
	d := isolate(t)
	cfg := &Config{}

	err := cfg.Set("host", filepath.Join(d.home, "nope"))
	assert.True(t, plerrors.IsErrorCode(err, plerrors.ErrInvalidInput))

	err = cfg.Set("launcher", d.home)
	assert.True(t, plerrors.IsErrorCode(err, plerrors.ErrInvalidInput))
	assert.Equal(t, "launcher", plerrors.GetErrorDetails(err)["key"])

	require.NoError(t, cfg.Set("host", d.home))
	assert.Equal(t, d.home, cfg.Host.Root)
}
