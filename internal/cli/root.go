// Package cli provides the command-line interface for huestep.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/huestep/internal/config"
	"github.com/jmylchreest/huestep/internal/version"
)

// app is the state shared by all subcommands of one root command.
type app struct {
	configPath string
	verbose    bool
	quiet      bool

	cfg    *config.Config
	logger hclog.Logger
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "huestep",
		Short: "Derive light and dark colour ramps from a single seed colour",
		Long: `huestep generates ten-step light and dark colour gradients from one seed
colour, stepping hue, saturation and value around the seed at index 6.

Ramps can be printed with terminal swatches, exported as JSON, YAML, TOML,
CSS custom properties or Less variables, or served over HTTP.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/huestep/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newGenerateCmd(a),
		newExtractCmd(a),
		newPresetsCmd(a),
		newRGBCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), a.level())

	if cfg.File != "" {
		a.logger.Debug("loaded config", "file", cfg.File)
	}
	return nil
}

func (a *app) level() hclog.Level {
	switch {
	case a.verbose:
		return hclog.Debug
	case a.quiet:
		return hclog.Error
	case a.cfg != nil:
		return hclog.LevelFromString(a.cfg.LogLevel)
	default:
		return hclog.Info
	}
}

func newLogger(w io.Writer, level hclog.Level) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "huestep",
		Output: w,
		Level:  level,
	})
}

// preview resolves the configured preview mode against the output writer.
func (a *app) preview(w io.Writer, mode string) bool {
	switch mode {
	case config.PreviewAlways:
		return true
	case config.PreviewNever:
		return false
	default:
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return err
		},
	}
}
