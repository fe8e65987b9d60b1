// Package cli implements the carbonfocus command tree.
package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/carbonfocus/internal/config"
	"github.com/rshade/carbonfocus/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// isWriterTerminal reports whether the writer refers to a terminal. It
// returns true only when w is an *os.File backed by a TTY, so buffers
// in tests always take the plain rendering path.
func isWriterTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isTerminal(f)
	}
	return false
}

// logger is the package-level logger for CLI operations.
var logger = zerolog.Nop() //nolint:gochecknoglobals // Shared by command handlers; replaced in PersistentPreRunE.

// NewRootCmd creates the root Cobra command for the carbonfocus CLI.
// Configuration and logging are wired in PersistentPreRunE so every
// subcommand sees the loaded config on its context.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "carbonfocus",
		Short:   "CarbonFocus GHG emissions calculator",
		Long:    "CarbonFocus: calculate, report and track greenhouse gas emissions across scopes 1-3",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			loggingCfg := cfg.Logging
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				loggingCfg.Level = "debug"
				loggingCfg.Format = logging.FormatConsole
				loggingCfg.File = ""
			}

			rootLogger, _, err := logging.New(loggingCfg)
			if err != nil {
				return err
			}
			logger = logging.Component(rootLogger, "cli")

			cmd.SetContext(contextWithConfig(cmd.Context(), cfg))
			logger.Debug().Str("command", cmd.Name()).Msg("command started")
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file path (default ~/.carbonfocus/config.yaml)")
	cmd.AddCommand(NewCalcCmd(), NewCatalogCmd(), NewHistoryCmd())

	return cmd
}

const rootCmdExample = `  # Calculate emissions from an entries file
  carbonfocus calc --input entries.json --org "Acme Corp"

  # Render the paginated report document
  carbonfocus calc --input entries.json --output report

  # Export CSV, XLSX, report and totals into a directory
  carbonfocus calc --input entries.json --export-dir ./out

  # Save the calculation to history
  carbonfocus calc --input entries.json --save

  # Browse the emission factor catalog
  carbonfocus catalog categories
  carbonfocus catalog sources scope1 --category stationaryCombustion

  # List saved calculations
  carbonfocus history list`
