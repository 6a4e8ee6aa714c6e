package commands

import (
	"github.com/arthur-debert/packlink/pkg/catalog"
	"github.com/arthur-debert/packlink/pkg/host"
	"github.com/arthur-debert/packlink/pkg/logging"
	"github.com/arthur-debert/packlink/pkg/ui/display"
)

// ListOptions defines the options for the List command
type ListOptions struct {
	Options
	// ByVersion sorts by game version, newest first, instead of by name
	ByVersion bool
}

// List enumerates the Catalog with each instance's linked state. A Host
// that cannot be resolved does not fail the listing.
func List(opts ListOptions) (*display.ListResult, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "List").Msg("Executing command")

	s, err := newSession(opts.Options)
	if err != nil {
		return nil, err
	}

	instances := append([]catalog.Instance(nil), s.instances...)
	if opts.ByVersion {
		catalog.SortByGameVersion(instances)
	} else {
		catalog.SortByName(instances)
	}

	result := &display.ListResult{
		CatalogRoot: opts.CatalogRoot,
		HostRoot:    opts.HostRoot,
		Instances:   make([]display.Instance, 0, len(instances)),
	}

	hp, err := s.host()
	if err != nil {
		log.Debug().Err(err).Msg("Host unavailable, reporting nothing as linked")
		result.HostError = err.Error()
		hp = host.Paths{}
	}

	for _, inst := range instances {
		result.Instances = append(result.Instances, s.view(hp, inst))
	}

	log.Info().Str("command", "List").Int("instances", len(result.Instances)).Msg("Command finished")
	return result, nil
}
