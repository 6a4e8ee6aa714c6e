package commands

import (
	"github.com/arthur-debert/packlink/pkg/catalog"
	"github.com/arthur-debert/packlink/pkg/link"
	"github.com/arthur-debert/packlink/pkg/logging"
	"github.com/arthur-debert/packlink/pkg/ui/display"
)

// StatusOptions defines the options for the Status command
type StatusOptions struct {
	Options
	// Instance is an id, a name or an id prefix
	Instance string
}

// Status describes one instance and where its link lives
func Status(opts StatusOptions) (*display.StatusResult, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Status").Str("instance", opts.Instance).Msg("Executing command")

	s, err := newSession(opts.Options)
	if err != nil {
		return nil, err
	}

	inst, err := s.find(opts.Instance)
	if err != nil {
		return nil, err
	}

	hp, err := s.host()
	if err != nil {
		return nil, err
	}

	// Only a regular file is copied by link, so only that counts as an icon
	iconInfo, iconErr := s.fs.Stat(catalog.IconPath(opts.CatalogRoot, inst))
	hasIcon := iconErr == nil && !iconInfo.IsDir()
	result := &display.StatusResult{
		Instance:   s.view(hp, inst),
		CatalogDir: catalog.Dir(opts.CatalogRoot, inst),
		HostFolder: link.InstanceFolder(hp, inst),
		Alias:      link.AliasPath(hp, inst),
		HasIcon:    hasIcon,
	}
	if result.HasIcon {
		result.IconTarget = link.IconPath(hp, inst)
	}
	if result.Alias != "" {
		if target, err := s.fs.Readlink(result.Alias); err == nil {
			result.AliasTo = target
		}
	}

	return result, nil
}
