package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show export run history",
	RunE:  runRuns,
}

func init() {
	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, _ []string) error {
	if exportService == nil {
		return errors.New("export service not configured")
	}

	runs, err := exportService.Runs(cmd.Context())
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		cmd.Println("No export runs recorded.")
		return nil
	}

	for _, run := range runs {
		target := run.Notebook
		if run.Section != "" {
			target += " / " + run.Section
		}
		cmd.Printf("%s  %-30s  %4d exported  %4d skipped  %8s  %s\n",
			run.StartedAt.Local().Format("2006-01-02 15:04"),
			target,
			run.PagesExported,
			run.PagesSkipped,
			run.Duration.Round(time.Second),
			run.OutputDir)
	}
	return nil
}
