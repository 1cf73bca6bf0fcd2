package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quill-labs/notedump/internal/core/domain"
)

// Flags for dump.
var (
	dumpSection    string
	dumpOutputDir  string
	dumpStartPage  int
	dumpMaxPages   int
	dumpNewSession bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump <notebook>",
	Short: "Export a notebook's pages to HTML files",
	Long: `Exports every page of the named notebook to the output directory,
one HTML file per page. Sections nested in section groups are included
at any depth.

Interrupted exports can be resumed with --start-page: pages are visited
in a stable order, so the Nth page is the same page on every run.

Examples:
  # Export a whole notebook
  notedump dump "Work Notes"

  # Only sections named Recipes, wherever they appear
  notedump dump "Personal" --section Recipes

  # Resume a large export from page 120
  notedump dump "Archive" --start-page 120`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVarP(
		&dumpSection, "section", "s", "", "Only export sections with this display name")
	dumpCmd.Flags().StringVarP(
		&dumpOutputDir, "output-dir", "o", "output", "Directory to write page files into")
	dumpCmd.Flags().IntVar(
		&dumpStartPage, "start-page", 0, "1-indexed page to resume from")
	dumpCmd.Flags().IntVar(
		&dumpMaxPages, "max-pages", 0, "Maximum number of pages to visit (0 = no limit)")
	dumpCmd.Flags().BoolVar(
		&dumpNewSession, "new-session", false, "Discard the cached token and sign in again")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	if exportService == nil {
		return errors.New("export service not configured")
	}

	outputDir := dumpOutputDir
	if !cmd.Flags().Changed("output-dir") && defaultOutputDir != "" {
		outputDir = defaultOutputDir
	}

	result, err := exportService.Export(cmd.Context(), domain.ExportOptions{
		Notebook:   args[0],
		Section:    dumpSection,
		OutputDir:  outputDir,
		StartPage:  dumpStartPage,
		MaxPages:   dumpMaxPages,
		NewSession: dumpNewSession,
	})
	if err != nil {
		var notFound *domain.NotebookNotFoundError
		if errors.As(err, &notFound) {
			cmd.PrintErrf("Notebook %q not found. Available notebooks:\n", notFound.Name)
			for _, name := range notFound.Available {
				cmd.PrintErrf("  %s\n", name)
			}
			return fmt.Errorf("notebook %q not found", notFound.Name)
		}
		return err
	}

	cmd.Printf("Exported %d page(s) to %s", result.PagesExported, result.OutputDir)
	if result.PagesSkipped > 0 {
		cmd.Printf(" (%d skipped)", result.PagesSkipped)
	}
	cmd.Printf(" in %s\n", result.Duration.Round(time.Millisecond))
	return nil
}
