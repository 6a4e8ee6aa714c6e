package link

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/packlink/pkg/catalog"
	"github.com/arthur-debert/packlink/pkg/errors"
	"github.com/arthur-debert/packlink/pkg/host"
	"github.com/arthur-debert/packlink/pkg/logging"
	"github.com/arthur-debert/packlink/pkg/types"
	"github.com/rs/zerolog"
)

const (
	// ContentAlias is the Host game directory inside an instance folder,
	// created as a directory alias into the Catalog instance
	ContentAlias = ".minecraft"

	// InstanceConfigFile is the Host instance metadata file
	InstanceConfigFile = "instance.cfg"

	// PackFile is the Host pack descriptor file
	PackFile = "mmc-pack.json"

	dirPerm  fs.FileMode = 0755
	filePerm fs.FileMode = 0644
)

// Engine runs link operations against a filesystem. It holds no state
// besides the filesystem; every call re-checks the disk.
type Engine struct {
	fs types.FS
}

// New creates an Engine on the given filesystem
func New(fsys types.FS) *Engine {
	return &Engine{fs: fsys}
}

// InstanceFolder returns the Host folder for inst, or "" when the Host
// instance directory is unset
func InstanceFolder(hp host.Paths, inst catalog.Instance) string {
	if hp.InstanceDir == "" {
		return ""
	}
	return filepath.Join(hp.InstanceDir, inst.ID)
}

// AliasPath returns the directory alias location for inst
func AliasPath(hp host.Paths, inst catalog.Instance) string {
	folder := InstanceFolder(hp, inst)
	if folder == "" {
		return ""
	}
	return filepath.Join(folder, ContentAlias)
}

// IconPath returns where the icon for inst is copied in the Host
func IconPath(hp host.Paths, inst catalog.Instance) string {
	if hp.IconDir == "" {
		return ""
	}
	return filepath.Join(hp.IconDir, inst.ID+".jpg")
}

// IsLinked reports whether the alias for inst points exactly at the
// Catalog instance directory. It never fails: a missing, unreadable or
// foreign alias is simply not linked.
func (e *Engine) IsLinked(hp host.Paths, catalogRoot string, inst catalog.Instance) bool {
	alias := AliasPath(hp, inst)
	if alias == "" || catalogRoot == "" {
		return false
	}

	target, err := e.fs.Readlink(alias)
	if err != nil {
		return false
	}

	return filepath.Clean(target) == catalogSource(catalogRoot, inst)
}

// catalogSource is the alias target for inst. It is absolute, since a
// relative target would resolve against the Host folder instead.
func catalogSource(catalogRoot string, inst catalog.Instance) string {
	dir := catalog.Dir(catalogRoot, inst)
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return filepath.Clean(dir)
}

// Create makes inst launchable from the Host. It fails with ALREADY_LINKED
// when the Host folder exists, whatever it contains, and never overwrites
// it. Steps after the folder is created are not rolled back on failure.
func (e *Engine) Create(hp host.Paths, catalogRoot string, inst catalog.Instance) error {
	logger := e.logger(inst)
	done := logging.LogOperationStart(logger, "create")
	defer done()

	instanceDir, err := hp.RequireInstanceDir()
	if err != nil {
		return err
	}

	source := catalogSource(catalogRoot, inst)
	if info, err := e.fs.Stat(source); err != nil || !info.IsDir() {
		return errors.Newf(errors.ErrCatalogInstanceMissing, "catalog instance %q not found", source).
			WithDetail("path", source)
	}

	iconSource := catalog.IconPath(catalogRoot, inst)
	hasIcon := e.isFile(iconSource)

	var iconTarget string
	if hasIcon {
		if _, err := hp.RequireIconDir(); err != nil {
			return err
		}
		iconTarget = IconPath(hp, inst)
	}

	folder := filepath.Join(instanceDir, inst.ID)
	if err := e.fs.Mkdir(folder, dirPerm); err != nil {
		if stderrors.Is(err, fs.ErrExist) {
			return errors.Newf(errors.ErrAlreadyLinked,
				"host folder %q already exists; if it is not a valid link it needs manual cleanup", folder).
				WithDetail("path", folder).
				WithDetail("linked", e.IsLinked(hp, catalogRoot, inst))
		}
		return errors.Wrapf(err, errors.ErrIO, "failed to create host folder %s", folder)
	}
	logger.Debug().Str("path", folder).Msg("Created host folder")

	cfgPath := filepath.Join(folder, InstanceConfigFile)
	if err := e.fs.WriteFile(cfgPath, []byte(InstanceConfig(inst, hasIcon)), filePerm); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to write %s", cfgPath)
	}

	packData, err := MarshalPack(PackDescriptor(inst))
	if err != nil {
		return errors.Wrap(err, errors.ErrIO, "failed to encode pack descriptor")
	}
	packPath := filepath.Join(folder, PackFile)
	if err := e.fs.WriteFile(packPath, packData, filePerm); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to write %s", packPath)
	}
	logger.Debug().Str("path", folder).Msg("Wrote host metadata")

	if hasIcon {
		if err := e.copyFile(iconSource, iconTarget); err != nil {
			return errors.Wrapf(err, errors.ErrIO, "failed to copy icon to %s", iconTarget)
		}
		logger.Debug().Str("path", iconTarget).Msg("Copied icon")
	}

	alias := filepath.Join(folder, ContentAlias)
	if err := e.fs.Symlink(source, alias); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to create alias %s", alias)
	}

	logger.Info().Str("path", alias).Str("target", source).Msg("Instance linked")
	return nil
}

// Remove tears down a link created by Create. It refuses with NOT_LINKED,
// touching nothing, unless IsLinked holds. The copied icon is kept.
func (e *Engine) Remove(hp host.Paths, catalogRoot string, inst catalog.Instance) error {
	logger := e.logger(inst)
	done := logging.LogOperationStart(logger, "remove")
	defer done()

	if !e.IsLinked(hp, catalogRoot, inst) {
		return errors.Newf(errors.ErrNotLinked, "%q is not linked to %q",
			catalog.Dir(catalogRoot, inst), AliasPath(hp, inst)).
			WithDetail("instance", inst.ID)
	}

	folder := InstanceFolder(hp, inst)

	alias := filepath.Join(folder, ContentAlias)
	if err := e.fs.Remove(alias); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to remove alias %s", alias)
	}

	for _, name := range []string{PackFile, InstanceConfigFile} {
		path := filepath.Join(folder, name)
		if err := e.fs.Remove(path); err != nil {
			return errors.Wrapf(err, errors.ErrIO, "failed to remove %s", path)
		}
	}

	// The link is gone at this point; leftovers only keep the folder around
	if err := e.fs.Remove(folder); err != nil {
		logger.Debug().Err(err).Str("path", folder).Msg("Host folder not removed")
	}

	logger.Info().Str("path", folder).Msg("Instance unlinked")
	return nil
}

// Toggle runs the opposite of the current state and returns the state
// observed afterwards
func (e *Engine) Toggle(hp host.Paths, catalogRoot string, inst catalog.Instance) (bool, error) {
	var err error
	if e.IsLinked(hp, catalogRoot, inst) {
		err = e.Remove(hp, catalogRoot, inst)
	} else {
		err = e.Create(hp, catalogRoot, inst)
	}
	return e.IsLinked(hp, catalogRoot, inst), err
}

func (e *Engine) isFile(path string) bool {
	info, err := e.fs.Stat(path)
	return err == nil && !info.IsDir()
}

func (e *Engine) copyFile(src, dst string) error {
	data, err := e.fs.ReadFile(src)
	if err != nil {
		return err
	}
	return e.fs.WriteFile(dst, data, filePerm)
}

func (e *Engine) logger(inst catalog.Instance) zerolog.Logger {
	return logging.GetLogger("link").With().Str("instance", inst.ID).Logger()
}
