package forge

import (
	"context"
	"log/slog"

	"github.com/trebuchet-org/abisync/internal/adapters/shell"
	"github.com/trebuchet-org/abisync/internal/domain/config"
)

// InspectorAdapter reads contract ABIs through `forge inspect <Name> abi`
type InspectorAdapter struct {
	runner      shell.Runner
	forgePath   string
	projectRoot string
	log         *slog.Logger
}

// NewInspectorAdapter creates a new forge inspect adapter
func NewInspectorAdapter(cfg *config.RuntimeConfig, runner shell.Runner, log *slog.Logger) *InspectorAdapter {
	return &InspectorAdapter{
		runner:      runner,
		forgePath:   cfg.ForgePath,
		projectRoot: cfg.ProjectRoot,
		log:         log.With("component", "ForgeInspector"),
	}
}

// InspectABI runs forge inspect from the project root and returns its trimmed stdout.
// Forge may compile first; its progress output goes to stderr and is discarded.
func (f *InspectorAdapter) InspectABI(ctx context.Context, contractName string) (string, error) {
	f.log.Debug("inspecting contract abi", "contract", contractName)
	return f.runner.Run(ctx, f.projectRoot, f.forgePath, f.args(contractName)...)
}

// CommandLine returns the command run for a contract, for diagnostics
func (f *InspectorAdapter) CommandLine(contractName string) string {
	return shell.CommandLine(f.forgePath, f.args(contractName)...)
}

func (f *InspectorAdapter) args(contractName string) []string {
	return []string{"inspect", contractName, "abi"}
}
