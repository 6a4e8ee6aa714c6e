package config

import (
	_ "embed"
	"errors"
	"os"
	"strings"

	plerrors "github.com/arthur-debert/packlink/pkg/errors"
	"github.com/arthur-debert/packlink/pkg/logging"
	"github.com/arthur-debert/packlink/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	delim = "."

	// EnvPrefix is the prefix of the environment overrides
	EnvPrefix = "PACKLINK_"

	// Sort orders accepted by list.sort
	SortByName    = "name"
	SortByVersion = "version"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config is packlink's resolved configuration
type Config struct {
	Catalog Location `koanf:"catalog"`
	Host    Location `koanf:"host"`
	List    List     `koanf:"list"`

	// File is the user configuration file, whether or not it exists
	File string `koanf:"-"`
}

// Location is a configured root directory
type Location struct {
	Root string `koanf:"root"`
}

// List holds defaults for the list command
type List struct {
	Sort string `koanf:"sort"`
}

// Overrides are the command-line values; empty fields are ignored
type Overrides struct {
	CatalogRoot string
	HostRoot    string
	Sort        string
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// envKeys maps the supported environment variables to config keys
var envKeys = map[string]string{
	EnvPrefix + "CATALOG_ROOT": "catalog.root",
	EnvPrefix + "HOST_ROOT":    "host.root",
}

// Load resolves the configuration from every layer
func Load(overrides Overrides) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(delim)

	// 1. Embedded defaults
	if err := mergeLayer(k, &rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, plerrors.Wrap(err, plerrors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Conventional locations, only when present
	if err := mergeLayer(k, confmap.Provider(conventionalRoots(), delim), nil); err != nil {
		return nil, plerrors.Wrap(err, plerrors.ErrConfigLoad, "failed to load computed defaults")
	}

	// 3. User file
	configFile := paths.ConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		if err := mergeLayer(k, file.Provider(configFile), toml.Parser()); err != nil {
			return nil, plerrors.Wrapf(err, plerrors.ErrConfigLoad, "failed to load config from %s", configFile).
				WithDetail("path", configFile)
		}
		logger.Debug().Str("path", configFile).Msg("Loaded user config")
	}

	// 4. Environment
	envProvider := env.ProviderWithValue(EnvPrefix, delim, func(key, value string) (string, interface{}) {
		return envKeys[key], value
	})
	if err := mergeLayer(k, envProvider, nil); err != nil {
		return nil, plerrors.Wrap(err, plerrors.ErrConfigLoad, "failed to load environment")
	}

	// 5. Flags
	flags := map[string]interface{}{
		"catalog.root": overrides.CatalogRoot,
		"host.root":    overrides.HostRoot,
		"list.sort":    overrides.Sort,
	}
	if err := mergeLayer(k, confmap.Provider(flags, delim), nil); err != nil {
		return nil, plerrors.Wrap(err, plerrors.ErrConfigLoad, "failed to load flags")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, plerrors.Wrap(err, plerrors.ErrConfigLoad, "failed to unmarshal configuration")
	}
	cfg.File = configFile

	if err := postProcess(&cfg); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("catalog", cfg.Catalog.Root).
		Str("host", cfg.Host.Root).
		Msg("Configuration resolved")
	return &cfg, nil
}

// mergeLayer loads a provider on its own and merges its non-empty values
func mergeLayer(k *koanf.Koanf, p koanf.Provider, pa koanf.Parser) error {
	layer := koanf.New(delim)
	if err := layer.Load(p, pa); err != nil {
		return err
	}
	return k.Load(confmap.Provider(nonEmpty(layer.All()), delim), nil)
}

func nonEmpty(flat map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(flat))
	for key, value := range flat {
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		out[key] = value
	}
	return out
}

func conventionalRoots() map[string]interface{} {
	roots := make(map[string]interface{})
	if dir := paths.DefaultCatalogRoot(); isDir(dir) {
		roots["catalog.root"] = dir
	}
	if dir := paths.DefaultHostRoot(); isDir(dir) {
		roots["host.root"] = dir
	}
	return roots
}

func postProcess(cfg *Config) error {
	for _, loc := range []*Location{&cfg.Catalog, &cfg.Host} {
		root, err := paths.Normalize(strings.TrimSpace(loc.Root))
		if err != nil {
			return plerrors.Wrapf(err, plerrors.ErrConfigLoad, "invalid path %q", loc.Root)
		}
		loc.Root = root
	}

	cfg.List.Sort = strings.ToLower(strings.TrimSpace(cfg.List.Sort))
	switch cfg.List.Sort {
	case "":
		cfg.List.Sort = SortByName
	case SortByName, SortByVersion:
	default:
		return plerrors.Newf(plerrors.ErrInvalidInput, "unknown sort order %q (want %s or %s)",
			cfg.List.Sort, SortByName, SortByVersion).
			WithDetail("sort", cfg.List.Sort)
	}
	return nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
