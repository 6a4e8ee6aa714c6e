package packlink

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/arthur-debert/packlink/internal/version"
	"github.com/arthur-debert/packlink/pkg/cobrax/topics"
	"github.com/arthur-debert/packlink/pkg/commands"
	"github.com/arthur-debert/packlink/pkg/config"
	"github.com/arthur-debert/packlink/pkg/errors"
	"github.com/arthur-debert/packlink/pkg/logging"
	"github.com/arthur-debert/packlink/pkg/paths"
	"github.com/arthur-debert/packlink/pkg/ui"
	"github.com/arthur-debert/packlink/pkg/ui/display"
	"github.com/arthur-debert/packlink/pkg/ui/styles"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*
var topicFiles embed.FS

// app holds the persistent flag values shared by every subcommand
type app struct {
	verbosity   int
	catalogRoot string
	hostRoot    string
	format      string
}

func (a *app) loadConfig(sort string) (*config.Config, error) {
	return config.Load(config.Overrides{
		CatalogRoot: a.catalogRoot,
		HostRoot:    a.hostRoot,
		Sort:        sort,
	})
}

func (a *app) options(cfg *config.Config) commands.Options {
	return commands.Options{
		CatalogRoot: cfg.Catalog.Root,
		HostRoot:    cfg.Host.Root,
	}
}

func (a *app) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(a.format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

func (a *app) render(cmd *cobra.Command, result interface{}) error {
	r, err := a.renderer(cmd)
	if err != nil {
		return err
	}
	return r.RenderResult(result)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "packlink",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			if path := os.Getenv(paths.EnvStylesFile); path != "" {
				if err := styles.LoadStylesFromFile(path); err != nil {
					log.Warn().Err(err).Str("path", path).Msg("Ignoring style file")
				}
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.catalogRoot, "catalog", "", MsgFlagCatalog)
	rootCmd.PersistentFlags().StringVar(&a.hostRoot, "host", "", MsgFlagHost)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "auto", MsgFlagFormat)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newStatusCmd(a))
	rootCmd.AddCommand(newLinkCmd(a))
	rootCmd.AddCommand(newUnlinkCmd(a))
	rootCmd.AddCommand(newToggleCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Initialize topic-based help system from the embedded topics
	if source, err := fs.Sub(topicFiles, "topics"); err == nil {
		opts := topics.Options{
			Renderer: topics.NewGlamourRenderer(),
		}
		_ = topics.InitializeWithOptions(rootCmd, source, opts)
	}

	return rootCmd
}

// ReportError renders err the way the --format flag of cmd asks for.
// JSON errors go to stdout so scripts read a single stream.
func ReportError(cmd *cobra.Command, err error) {
	name, _ := cmd.Root().PersistentFlags().GetString("format")
	format, parseErr := ui.ParseFormat(name)
	if parseErr != nil {
		format = ui.FormatAuto
	}

	out := cmd.ErrOrStderr()
	if format == ui.FormatJSON {
		out = cmd.OutOrStdout()
	}

	r, rerr := ui.NewRenderer(format, out)
	if rerr != nil {
		_, _ = fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	_ = r.RenderError(err)
}

// instanceCompletion completes instance ids, described by their names
func instanceCompletion(a *app) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		cfg, err := a.loadConfig("")
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		result, err := commands.List(commands.ListOptions{Options: a.options(cfg)})
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		var completions []string
		for _, inst := range result.Instances {
			completions = append(completions, inst.ID+"\t"+inst.Name)
		}
		return completions, cobra.ShellCompDirectiveNoFileComp
	}
}

func newListCmd(a *app) *cobra.Command {
	var sort string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(sort)
			if err != nil {
				return err
			}

			log.Info().
				Str("catalog_root", cfg.Catalog.Root).
				Str("host_root", cfg.Host.Root).
				Msg("Listing instances")

			result, err := commands.List(commands.ListOptions{
				Options:   a.options(cfg),
				ByVersion: cfg.List.Sort == config.SortByVersion,
			})
			if err != nil {
				return err
			}

			return a.render(cmd, result)
		},
	}

	cmd.Flags().StringVar(&sort, "sort", "", MsgFlagSort)
	_ = cmd.RegisterFlagCompletionFunc("sort", cobra.FixedCompletions(
		[]string{config.SortByName, config.SortByVersion}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "status <instance>",
		Short:             MsgStatusShort,
		Long:              MsgStatusLong,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: instanceCompletion(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig("")
			if err != nil {
				return err
			}

			result, err := commands.Status(commands.StatusOptions{
				Options:  a.options(cfg),
				Instance: args[0],
			})
			if err != nil {
				return err
			}

			return a.render(cmd, result)
		},
	}
}

type actionCommand func(commands.LinkOptions) (*display.ActionResult, error)

func newActionCmd(a *app, use, short, long, example string, run actionCommand) *cobra.Command {
	return &cobra.Command{
		Use:               use + " <instance>",
		Short:             short,
		Long:              long,
		Example:           example,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: instanceCompletion(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig("")
			if err != nil {
				return err
			}

			result, err := run(commands.LinkOptions{
				Options:  a.options(cfg),
				Instance: args[0],
			})
			if err != nil {
				return err
			}

			return a.render(cmd, result)
		},
	}
}

func newLinkCmd(a *app) *cobra.Command {
	return newActionCmd(a, "link", MsgLinkShort, MsgLinkLong, MsgLinkExample, commands.Link)
}

func newUnlinkCmd(a *app) *cobra.Command {
	return newActionCmd(a, "unlink", MsgUnlinkShort, MsgUnlinkLong, "", commands.Unlink)
}

func newToggleCmd(a *app) *cobra.Command {
	return newActionCmd(a, "toggle", MsgToggleShort, MsgToggleLong, "", commands.Toggle)
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig("")
			if err != nil {
				return err
			}
			return a.render(cmd, configResult(cfg, false))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <catalog|host> <path>",
		Short:     MsgConfigSetShort,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"catalog", "host"},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags are not persisted, only the value being set
			cfg, err := config.Load(config.Overrides{})
			if err != nil {
				return err
			}
			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}

			file, err := config.Save(cfg)
			if err != nil {
				return err
			}
			cfg.File = file

			return a.render(cmd, configResult(cfg, true))
		},
	})

	return cmd
}

func configResult(cfg *config.Config, saved bool) *display.ConfigResult {
	return &display.ConfigResult{
		File:        cfg.File,
		CatalogRoot: cfg.Catalog.Root,
		HostRoot:    cfg.Host.Root,
		Sort:        cfg.List.Sort,
		Saved:       saved,
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
