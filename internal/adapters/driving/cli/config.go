package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage notedump settings",
	Long: `View and change settings stored in the config file. Unset values
fall back to built-in defaults.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Keys:
  client_id              OAuth application (client) ID
  redirect_uri           Redirect URI registered for the application
  base_url               Microsoft Graph OneNote base URL
  output_dir             Default export directory
  redirect_wait_seconds  Seconds to wait for the browser redirect`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	settings, err := configStore.Load()
	if err != nil {
		return err
	}

	cmd.Printf("Config file: %s\n\n", configStore.Path())
	printSetting(cmd, "client_id", settings.ClientID)
	printSetting(cmd, "scopes", strings.Join(settings.Scopes, ", "))
	printSetting(cmd, "redirect_uri", settings.RedirectURI)
	printSetting(cmd, "base_url", settings.BaseURL)
	printSetting(cmd, "output_dir", settings.OutputDir)
	if settings.RedirectWaitSeconds > 0 {
		cmd.Printf("  %-22s %d\n", "redirect_wait_seconds", settings.RedirectWaitSeconds)
	} else {
		cmd.Printf("  %-22s (default)\n", "redirect_wait_seconds")
	}
	return nil
}

func printSetting(cmd *cobra.Command, key, value string) {
	if value == "" {
		value = "(default)"
	}
	cmd.Printf("  %-22s %s\n", key, value)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	settings, err := configStore.Load()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	switch key {
	case "client_id":
		settings.ClientID = value
	case "redirect_uri":
		settings.RedirectURI = value
	case "base_url":
		settings.BaseURL = value
	case "output_dir":
		settings.OutputDir = value
	case "redirect_wait_seconds":
		seconds, err := strconv.Atoi(value)
		if err != nil || seconds <= 0 {
			return fmt.Errorf("redirect_wait_seconds must be a positive integer, got %q", value)
		}
		settings.RedirectWaitSeconds = seconds
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	if err := configStore.Save(settings); err != nil {
		return err
	}
	cmd.Printf("Set %s.\n", key)
	return nil
}
