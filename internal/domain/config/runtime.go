package config

import (
	"path/filepath"
	"strconv"
)

// Checksummer names
const (
	ChecksummerCast   = "cast"
	ChecksummerNative = "native"
)

// DefaultChainID is the local anvil chain used when no chain is given
const DefaultChainID = "31337"

// RuntimeConfig represents the complete runtime configuration.
// It is built once at the CLI boundary and injected into adapters and use cases.
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	ChainID     uint64

	// Foundry layout, all absolute
	BroadcastDir string
	OutDir       string
	Script       string

	// Generated bindings
	OutputDir  string
	BindingExt string
	Manifest   bool

	// External tools
	Checksummer string
	CastPath    string
	ForgePath   string

	// Execution settings
	LogLevel       string
	NonInteractive bool

	// Resolved configurations
	FoundryConfig *FoundryConfig
}

// RecordPath returns the location of the broadcast file for the configured chain
func (c *RuntimeConfig) RecordPath() string {
	return filepath.Join(c.BroadcastDir, c.Script, strconv.FormatUint(c.ChainID, 10), "run-latest.json")
}

// ArtifactPath returns the location of the compiled artifact for a contract name
func (c *RuntimeConfig) ArtifactPath(contractName string) string {
	return filepath.Join(c.OutDir, contractName+".sol", contractName+".json")
}
