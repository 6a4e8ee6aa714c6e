package commands

import (
	"fmt"

	"github.com/arthur-debert/packlink/pkg/catalog"
	"github.com/arthur-debert/packlink/pkg/host"
	"github.com/arthur-debert/packlink/pkg/logging"
	"github.com/arthur-debert/packlink/pkg/ui/display"
)

// Action names reported in display.ActionResult
const (
	ActionLink   = "link"
	ActionUnlink = "unlink"
)

// LinkOptions defines the options for Link, Unlink and Toggle
type LinkOptions struct {
	Options
	// Instance is an id, a name or an id prefix
	Instance string
}

// Link makes the instance launchable from the Host
func Link(opts LinkOptions) (*display.ActionResult, error) {
	return runAction(opts, "Link", func(s *session, hp host.Paths, inst catalog.Instance) (string, error) {
		return ActionLink, s.engine.Create(hp, opts.CatalogRoot, inst)
	})
}

// Unlink removes the Host entry created by Link
func Unlink(opts LinkOptions) (*display.ActionResult, error) {
	return runAction(opts, "Unlink", func(s *session, hp host.Paths, inst catalog.Instance) (string, error) {
		return ActionUnlink, s.engine.Remove(hp, opts.CatalogRoot, inst)
	})
}

// Toggle links an unlinked instance and unlinks a linked one
func Toggle(opts LinkOptions) (*display.ActionResult, error) {
	return runAction(opts, "Toggle", func(s *session, hp host.Paths, inst catalog.Instance) (string, error) {
		linked, err := s.engine.Toggle(hp, opts.CatalogRoot, inst)
		if linked {
			return ActionLink, err
		}
		return ActionUnlink, err
	})
}

type actionFunc func(s *session, hp host.Paths, inst catalog.Instance) (string, error)

func runAction(opts LinkOptions, name string, run actionFunc) (*display.ActionResult, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", name).Str("instance", opts.Instance).Msg("Executing command")

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

	action, err := run(s, hp, inst)
	if err != nil {
		return nil, err
	}

	view := s.view(hp, inst)
	result := &display.ActionResult{
		Action:   action,
		Instance: view,
		Message:  actionMessage(action, inst),
	}

	log.Info().Str("command", name).Str("instance", inst.ID).Bool("linked", view.Linked).Msg("Command finished")
	return result, nil
}

func actionMessage(action string, inst catalog.Instance) string {
	if action == ActionLink {
		return fmt.Sprintf("Linked %s", inst.DisplayName())
	}
	return fmt.Sprintf("Unlinked %s", inst.DisplayName())
}
