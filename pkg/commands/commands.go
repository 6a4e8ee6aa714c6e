// Package commands provides the command orchestration layer between the
// CLI and the catalog, host and link packages. Each command takes an
// options struct, re-reads the disk and returns a view model from
// pkg/ui/display.
package commands

import (
	"github.com/arthur-debert/packlink/pkg/catalog"
	"github.com/arthur-debert/packlink/pkg/errors"
	"github.com/arthur-debert/packlink/pkg/filesystem"
	"github.com/arthur-debert/packlink/pkg/host"
	"github.com/arthur-debert/packlink/pkg/link"
	"github.com/arthur-debert/packlink/pkg/types"
	"github.com/arthur-debert/packlink/pkg/ui/display"
)

// Options are shared by every command
type Options struct {
	// CatalogRoot is the FTB App instances directory
	CatalogRoot string
	// HostRoot is the Prism Launcher data directory
	HostRoot string
	// FS defaults to the OS filesystem
	FS types.FS
}

func (o Options) fs() types.FS {
	if o.FS == nil {
		return filesystem.NewOS()
	}
	return o.FS
}

func (o Options) requireCatalog() error {
	if o.CatalogRoot == "" {
		return errors.New(errors.ErrInvalidInput,
			"catalog root is not configured; use --catalog or `packlink config set catalog <path>`")
	}
	return nil
}

// session is the state one command works against
type session struct {
	opts      Options
	fs        types.FS
	engine    *link.Engine
	instances []catalog.Instance
}

func newSession(opts Options) (*session, error) {
	if err := opts.requireCatalog(); err != nil {
		return nil, err
	}
	fsys := opts.fs()
	return &session{
		opts:      opts,
		fs:        fsys,
		engine:    link.New(fsys),
		instances: catalog.Enumerate(fsys, opts.CatalogRoot),
	}, nil
}

func (s *session) find(query string) (catalog.Instance, error) {
	return catalog.Find(s.instances, query)
}

func (s *session) host() (host.Paths, error) {
	return host.Resolve(s.fs, s.opts.HostRoot)
}

func (s *session) view(hp host.Paths, inst catalog.Instance) display.Instance {
	return display.Instance{
		ID:          inst.ID,
		Name:        inst.Name,
		PackVersion: inst.PackVersion,
		GameVersion: inst.GameVersion,
		Loader:      inst.Loader.String(),
		Linked:      s.engine.IsLinked(hp, s.opts.CatalogRoot, inst),
	}
}
