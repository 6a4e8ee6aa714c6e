package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for packlink
	EnvConfigDir = "PACKLINK_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for packlink
	EnvStateDir = "PACKLINK_STATE_DIR"

	// EnvStylesFile points at a YAML theme replacing the built-in one
	EnvStylesFile = "PACKLINK_STYLES"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed names used by packlink itself
const (
	// AppDirName is the directory name for packlink-specific files
	AppDirName = "packlink"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "packlink.log"

	// CatalogDirName is the FTB App data directory below the home directory
	CatalogDirName = ".ftba"

	// HostDirName is the Prism Launcher directory below the XDG data home
	HostDirName = "PrismLauncher"
)

// ConfigDir returns the directory holding packlink's configuration file
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFilePath returns the path of the user configuration file
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StateDir returns the directory for logs and other runtime state
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return ExpandHome(dir)
	}
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the path to the packlink log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// DefaultCatalogRoot returns the conventional FTB App instances directory
func DefaultCatalogRoot() string {
	return filepath.Join(GetHomeDirectoryWithDefault("."), CatalogDirName, "instances")
}

// DefaultHostRoot returns the conventional Prism Launcher data directory
func DefaultHostRoot() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, HostDirName)
	}
	return filepath.Join(xdg.DataHome, HostDirName)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

// Normalize expands ~ and makes the path absolute and clean
func Normalize(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	return filepath.Abs(ExpandHome(path))
}

// GetHomeDirectory returns the user's home directory
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", err
	}
	return homeDir, nil
}

// GetHomeDirectoryWithDefault returns the home directory or a default value
func GetHomeDirectoryWithDefault(defaultDir string) string {
	homeDir, err := GetHomeDirectory()
	if err != nil {
		return defaultDir
	}
	return homeDir
}
