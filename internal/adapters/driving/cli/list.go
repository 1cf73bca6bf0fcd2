package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var listNewSession bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available notebooks",
	Long: `Lists the display names of every OneNote notebook the signed-in
account can read. Triggers the browser sign-in flow if no valid cached
token exists.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(
		&listNewSession, "new-session", false, "Discard the cached token and sign in again")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if exportService == nil {
		return errors.New("export service not configured")
	}

	notebooks, err := exportService.ListNotebooks(cmd.Context(), listNewSession)
	if err != nil {
		return err
	}

	if len(notebooks) == 0 {
		cmd.Println("No notebooks found.")
		return nil
	}

	cmd.Println("Notebooks:")
	for _, nb := range notebooks {
		cmd.Printf("  %s\n", nb.DisplayName)
	}
	return nil
}
