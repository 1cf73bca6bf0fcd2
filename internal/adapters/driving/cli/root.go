// Package cli implements the notedump command-line interface.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/quill-labs/notedump/internal/core/ports/driven"
	"github.com/quill-labs/notedump/internal/core/ports/driving"
)

// version is set at build time via -ldflags.
var version = "dev"

// Injected services. Set by the composition root before Execute.
var (
	exportService    driving.ExportService
	configStore      driven.ConfigStore
	logLevel         *slog.LevelVar
	defaultOutputDir string
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "notedump",
	Short: "Export OneNote notebooks to local HTML files",
	Long: `notedump signs in to a Microsoft account and exports OneNote
notebooks through the Microsoft Graph API, one HTML file per page.

The first run opens a browser window to authorise access; the token is
cached under ~/.notedump so later runs go straight to the export.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose && logLevel != nil {
			logLevel.Set(slog.LevelDebug)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "Enable debug logging")
}

// Services bundles everything the commands need.
type Services struct {
	Export driving.ExportService
	Config driven.ConfigStore

	// DefaultOutputDir overrides the built-in "output" default for
	// dump when the flag is not given.
	DefaultOutputDir string

	// LogLevel, when set, is raised to debug by --verbose.
	LogLevel *slog.LevelVar
}

// SetServices injects the service layer into the command tree.
func SetServices(s Services) {
	exportService = s.Export
	configStore = s.Config
	defaultOutputDir = s.DefaultOutputDir
	logLevel = s.LogLevel
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
