// Package driving defines the interfaces through which the CLI and MCP
// adapters drive the core services.
package driving
