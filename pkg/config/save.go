package config

import (
	"os"
	"path/filepath"

	plerrors "github.com/arthur-debert/packlink/pkg/errors"
	"github.com/arthur-debert/packlink/pkg/logging"
	"github.com/arthur-debert/packlink/pkg/paths"
	"github.com/pelletier/go-toml/v2"
)

// Save writes cfg to the user configuration file and returns its path.
// Roots that do not name an existing directory are left out of the file.
func Save(cfg *Config) (string, error) {
	logger := logging.GetLogger("config")

	doc := make(map[string]map[string]string)
	for section, root := range map[string]string{
		"catalog": cfg.Catalog.Root,
		"host":    cfg.Host.Root,
	} {
		if root == "" {
			continue
		}
		if !isDir(root) {
			logger.Warn().Str("path", root).Msgf("Not saving %s root: directory does not exist", section)
			continue
		}
		doc[section] = map[string]string{"root": root}
	}
	if cfg.List.Sort != "" {
		doc["list"] = map[string]string{"sort": cfg.List.Sort}
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return "", plerrors.Wrap(err, plerrors.ErrConfigSave, "failed to encode configuration")
	}

	path := cfg.File
	if path == "" {
		path = paths.ConfigFilePath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", plerrors.Wrapf(err, plerrors.ErrConfigSave, "failed to create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", plerrors.Wrapf(err, plerrors.ErrConfigSave, "failed to write %s", path).
			WithDetail("path", path)
	}

	logger.Info().Str("path", path).Msg("Configuration saved")
	return path, nil
}

// Set validates and assigns a root by name ("catalog" or "host")
func (c *Config) Set(key, value string) error {
	root, err := paths.Normalize(value)
	if err != nil || root == "" {
		return plerrors.Newf(plerrors.ErrInvalidInput, "invalid path %q", value)
	}
	if !isDir(root) {
		return plerrors.Newf(plerrors.ErrInvalidInput, "%s is not a directory", root).
			WithDetail("path", root)
	}

	switch key {
	case "catalog":
		c.Catalog.Root = root
	case "host":
		c.Host.Root = root
	default:
		return plerrors.Newf(plerrors.ErrInvalidInput, "unknown config key %q (want catalog or host)", key).
			WithDetail("key", key)
	}
	return nil
}
