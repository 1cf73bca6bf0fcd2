package domain

// Settings are the user-tunable knobs read from the config file. Zero
// values mean "use the built-in default"; defaults are applied at the
// composition root, not here, so a saved file only records what the
// user actually changed.
type Settings struct {
	ClientID            string   `toml:"client_id,omitempty"`
	Scopes              []string `toml:"scopes,omitempty"`
	RedirectURI         string   `toml:"redirect_uri,omitempty"`
	BaseURL             string   `toml:"base_url,omitempty"`
	OutputDir           string   `toml:"output_dir,omitempty"`
	RedirectWaitSeconds int      `toml:"redirect_wait_seconds,omitempty"`
}
