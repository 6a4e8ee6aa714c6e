package packlink

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Link FTB App instances into Prism Launcher"
	MsgListShort       = "List FTB App instances and their link state"
	MsgStatusShort     = "Show where an instance lives and whether it is linked"
	MsgLinkShort       = "Make an instance launchable from Prism Launcher"
	MsgUnlinkShort     = "Remove an instance from Prism Launcher"
	MsgToggleShort     = "Link or unlink an instance"
	MsgConfigShort     = "Show or change the launcher locations"
	MsgConfigShowShort = "Show the resolved configuration"
	MsgConfigSetShort  = "Persist a launcher location"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagCatalog = "FTB App instances directory"
	MsgFlagHost    = "Prism Launcher data directory"
	MsgFlagFormat  = "Output format: auto, term, text or json"
	MsgFlagSort    = "Sort order: name or version"

	// Error messages
	MsgErrNoCommand = "no command specified"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/link-long.txt
	msgLinkLongRaw string
	MsgLinkLong    = strings.TrimSpace(msgLinkLongRaw)

	//go:embed msgs/link-example.txt
	msgLinkExampleRaw string
	MsgLinkExample    = strings.TrimRight(msgLinkExampleRaw, "\n")

	//go:embed msgs/unlink-long.txt
	msgUnlinkLongRaw string
	MsgUnlinkLong    = strings.TrimSpace(msgUnlinkLongRaw)

	//go:embed msgs/toggle-long.txt
	msgToggleLongRaw string
	MsgToggleLong    = strings.TrimSpace(msgToggleLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
