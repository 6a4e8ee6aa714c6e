// Package host resolves the directories of the Host launcher (Prism
// Launcher or MultiMC) from its own configuration file.
//
// Resolution is a plain function of the Host root and the filesystem. It is
// repeated before every status, create and remove operation because the
// user may retarget the root (or edit the Host config) at any time.
package host

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	plerrors "github.com/arthur-debert/packlink/pkg/errors"
	"github.com/arthur-debert/packlink/pkg/logging"
	"github.com/arthur-debert/packlink/pkg/types"
)

const (
	// PrimaryConfigFile is the Prism Launcher configuration file
	PrimaryConfigFile = "prismlauncher.cfg"

	// LegacyConfigFile is the MultiMC configuration file
	LegacyConfigFile = "multimc.cfg"

	// KeyInstanceDir names the directory holding per-instance folders
	KeyInstanceDir = "InstanceDir"

	// KeyIconsDir names the directory holding instance icons
	KeyIconsDir = "IconsDir"
)

// Paths are the Host locations packlink writes to. InstanceDir and IconDir
// are empty when the Host config does not set them.
type Paths struct {
	Root        string `json:"root"`
	ConfigFile  string `json:"configFile"`
	InstanceDir string `json:"instanceDir"`
	IconDir     string `json:"iconDir"`
}

// Resolve validates root, finds its config file and extracts the instance
// and icon directories
func Resolve(fsys types.FS, root string) (Paths, error) {
	logger := logging.GetLogger("host")

	if root == "" {
		return Paths{}, plerrors.New(plerrors.ErrInvalidHostRoot, "host root is not set")
	}
	if !isDir(fsys, root) {
		return Paths{}, plerrors.Newf(plerrors.ErrInvalidHostRoot, "invalid host root %q", root).
			WithDetail("path", root)
	}

	cfgPath, err := findConfig(fsys, root)
	if err != nil {
		return Paths{}, err
	}

	data, err := fsys.ReadFile(cfgPath)
	if err != nil {
		return Paths{}, plerrors.Wrapf(err, plerrors.ErrIO, "failed to read host config %s", cfgPath)
	}

	paths := Paths{Root: root, ConfigFile: cfgPath}
	for key, value := range parseConfig(string(data)) {
		switch key {
		case KeyInstanceDir:
			paths.InstanceDir = joinRoot(root, value)
		case KeyIconsDir:
			paths.IconDir = joinRoot(root, value)
		}
	}

	for key, dir := range map[string]string{KeyInstanceDir: paths.InstanceDir, KeyIconsDir: paths.IconDir} {
		if dir != "" && !isDir(fsys, dir) {
			return Paths{}, plerrors.Newf(plerrors.ErrInvalidHostRoot, "host %s %q is not a directory", key, dir).
				WithDetail("path", dir).
				WithDetail("key", key)
		}
	}

	logger.Debug().
		Str("config", cfgPath).
		Str("instanceDir", paths.InstanceDir).
		Str("iconDir", paths.IconDir).
		Msg("Host paths resolved")

	return paths, nil
}

// RequireInstanceDir returns the instance directory or HOST_PATH_UNSET
func (p Paths) RequireInstanceDir() (string, error) {
	if p.InstanceDir == "" {
		return "", plerrors.Newf(plerrors.ErrHostPathUnset, "%s is not set in the host config", KeyInstanceDir).
			WithDetail("key", KeyInstanceDir)
	}
	return p.InstanceDir, nil
}

// RequireIconDir returns the icon directory or HOST_PATH_UNSET
func (p Paths) RequireIconDir() (string, error) {
	if p.IconDir == "" {
		return "", plerrors.Newf(plerrors.ErrHostPathUnset, "%s is not set in the host config", KeyIconsDir).
			WithDetail("key", KeyIconsDir)
	}
	return p.IconDir, nil
}

func findConfig(fsys types.FS, root string) (string, error) {
	for _, name := range []string{PrimaryConfigFile, LegacyConfigFile} {
		path := filepath.Join(root, name)
		_, err := fsys.Stat(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", plerrors.Wrapf(err, plerrors.ErrIO, "failed to stat %s", path)
		}
	}
	return "", plerrors.Newf(plerrors.ErrHostConfigNotFound, "no %s or %s in %q", PrimaryConfigFile, LegacyConfigFile, root).
		WithDetail("path", root)
}

// parseConfig reads key=value lines. Lines without exactly one '=' (INI
// section headers, blank lines) are ignored; a later key wins.
func parseConfig(content string) map[string]string {
	values := make(map[string]string)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.Count(line, "=") != 1 {
			continue
		}
		key, value, _ := strings.Cut(line, "=")
		values[key] = value
	}
	return values
}

func joinRoot(root, value string) string {
	if value == "" {
		return ""
	}
	if filepath.IsAbs(value) {
		return filepath.Clean(value)
	}
	return filepath.Join(root, value)
}

func isDir(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}
