package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/oye-labs/oye/internal/branding"
	"github.com/oye-labs/oye/internal/config"
	"github.com/oye-labs/oye/internal/registry"
	"github.com/oye-labs/oye/internal/userdata"
	"github.com/spf13/cobra"
)

// ErrMissingExample is returned when no example name, or more than one, is given.
var ErrMissingExample = errors.New("no example specified")

// app holds per-invocation state shared by the command's run and help paths.
type app struct {
	stdout bool
	debug  bool

	logger  *log.Logger
	catalog *registry.Catalog
}

// NewRootCmd builds the root command. Each call returns an independent
// command with its own flag state.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   branding.CLIName() + " [options] <example>",
		Short: branding.Description(),
		Long: branding.Description() + `.

Examples are looked up in the bundled catalog, then in ~/.oye/.oye.json,
then in ~/.oye/<dir>/.oye.json where they are available as <dir>/<name>.`,
		Version:       versionString(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.run,
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.Flags().BoolVarP(&a.stdout, "stdout", "o", false, "stream file to stdout instead")
	cmd.Flags().BoolVarP(&a.debug, "debug", "D", false, "stream computed catalog to stderr")

	defaultHelp := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		defaultHelp(c, args)
		printExamples(c.OutOrStdout(), a.loadCatalog(c))
	})

	return cmd
}

// Execute runs the root command with build info injected via ldflags.
func Execute(v, commit, date string) error {
	buildVersion = v
	buildCommit = commit
	buildDate = date
	return execute(NewRootCmd())
}

// execute runs cmd and prints a single line for any error.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), message(err))
	}
	return err
}

// message maps an error to the line shown to the user.
func message(err error) string {
	name := branding.CLIName()
	switch {
	case errors.Is(err, ErrMissingExample):
		return fmt.Sprintf("Please specify an example. For help run `%s -h`.", name)
	case errors.Is(err, registry.ErrExampleNotFound):
		return fmt.Sprintf("Example was not found. For available examples run `%s -h`.", name)
	default:
		return err.Error()
	}
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	cat := a.loadCatalog(cmd)

	if a.debug {
		if err := dumpCatalog(cmd.ErrOrStderr(), cat); err != nil {
			return err
		}
	}

	if len(args) != 1 {
		return ErrMissingExample
	}

	ex, err := cat.Resolve(args[0])
	if err != nil {
		return err
	}

	if a.stdout {
		return registry.StreamExample(ex, cmd.OutOrStdout())
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}
	dst, err := registry.CopyExample(ex, cwd)
	if err != nil {
		return err
	}
	a.logger.Debug("copied example", "name", ex.Name, "source", ex.Source, "target", dst)
	return nil
}

// loadCatalog discovers and merges catalogs on first use.
func (a *app) loadCatalog(cmd *cobra.Command) *registry.Catalog {
	if a.catalog != nil {
		return a.catalog
	}

	config.Load()
	a.logger = newLogger(cmd.ErrOrStderr(), a.debug)

	defaultRoot, err := userdata.GetDefaultRoot()
	if err != nil {
		a.logger.Warn("bundled catalog unavailable", "err", err)
		defaultRoot = ""
	}
	homeRoot, err := userdata.GetHomeRoot()
	if err != nil {
		a.logger.Debug("home catalog unavailable", "err", err)
		homeRoot = ""
	}
	if homeRoot == "" {
		a.logger.Debug("no home directory; using bundled catalog only")
	}

	opt := registry.WithLogger(a.logger)
	paths := registry.DiscoverPaths(defaultRoot, homeRoot, opt)
	a.catalog = registry.Build(paths, opt)
	return a.catalog
}

// newLogger returns the diagnostics logger. --debug wins over the
// configured level.
func newLogger(w io.Writer, debug bool) *log.Logger {
	level, err := log.ParseLevel(config.LogLevel())
	if err != nil {
		level = log.WarnLevel
	}
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: branding.CLIName(),
		Level:  level,
	})
}
