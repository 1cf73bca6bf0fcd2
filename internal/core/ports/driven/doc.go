// Package driven defines the interfaces the core depends on: stores,
// the redirect listener, the browser, and the notebook API surface.
// Adapters under internal/adapters/driven and internal/connectors
// implement them.
package driven
