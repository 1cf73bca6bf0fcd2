// Command notedump exports OneNote notebooks to local HTML files
// through the Microsoft Graph API.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/quill-labs/notedump/internal/adapters/driven/browser"
	configfile "github.com/quill-labs/notedump/internal/adapters/driven/config/file"
	"github.com/quill-labs/notedump/internal/adapters/driven/export"
	"github.com/quill-labs/notedump/internal/adapters/driven/storage/sqlite"
	"github.com/quill-labs/notedump/internal/adapters/driven/tokenstore"
	"github.com/quill-labs/notedump/internal/adapters/driving/cli"
	"github.com/quill-labs/notedump/internal/adapters/driving/oauth"
	"github.com/quill-labs/notedump/internal/connectors/onenote"
	"github.com/quill-labs/notedump/internal/core/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Logs go to stderr; stdout is reserved for command output (and
	// for the MCP stdio transport).
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	settings, err := configStore.Load()
	if err != nil {
		return err
	}

	authCfg := services.DefaultAuthConfig()
	if settings.ClientID != "" {
		authCfg.ClientID = settings.ClientID
	}
	if len(settings.Scopes) > 0 {
		authCfg.Scopes = settings.Scopes
	}
	if settings.RedirectURI != "" {
		authCfg.RedirectURI = settings.RedirectURI
	}
	if settings.RedirectWaitSeconds > 0 {
		authCfg.RedirectWait = time.Duration(settings.RedirectWaitSeconds) * time.Second
	}

	clientCfg := onenote.DefaultConfig()
	if settings.BaseURL != "" {
		clientCfg.BaseURL = settings.BaseURL
	}

	tokens, err := tokenstore.NewFileStore("", log)
	if err != nil {
		return fmt.Errorf("opening token store: %w", err)
	}

	listener, err := oauth.NewCallbackListener(authCfg.RedirectURI, log)
	if err != nil {
		return fmt.Errorf("configuring redirect listener: %w", err)
	}

	runs, err := sqlite.NewRunStore("")
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer runs.Close()

	auth := services.NewAuthenticator(authCfg, listener, browser.New(), tokens, log)
	sessions := services.NewSessionService(tokens, auth, log)
	exports := services.NewExportService(
		sessions,
		onenote.NewFactory(clientCfg, log),
		export.NewFactory(),
		runs,
		log,
	)

	cli.SetServices(cli.Services{
		Export:           exports,
		Config:           configStore,
		DefaultOutputDir: settings.OutputDir,
		LogLevel:         level,
	})

	return cli.Execute()
}
