package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/trebuchet-org/abisync/internal/domain"
	"github.com/trebuchet-org/abisync/internal/domain/config"
	"github.com/trebuchet-org/abisync/internal/usecase"
)

// Loader reads Foundry broadcast files (run-latest.json)
type Loader struct {
	cfg *config.RuntimeConfig
	log *slog.Logger
}

// NewLoader creates a new broadcast file loader
func NewLoader(cfg *config.RuntimeConfig, log *slog.Logger) *Loader {
	return &Loader{
		cfg: cfg,
		log: log.With("component", "BroadcastLoader"),
	}
}

// Load parses the latest broadcast of the configured deploy script for a chain
func (l *Loader) Load(ctx context.Context, chainID uint64) (*domain.DeploymentRecord, error) {
	cfg := *l.cfg
	cfg.ChainID = chainID
	return ParseBroadcastFile(cfg.RecordPath())
}

// ParseBroadcastFile parses a broadcast file
func ParseBroadcastFile(file string) (*domain.DeploymentRecord, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s (run forge script with --broadcast first)", domain.ErrMissingDeployment, file)
		}
		return nil, fmt.Errorf("failed to read broadcast file: %w", err)
	}

	var record domain.DeploymentRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrMalformedRecord, file, err)
	}
	// an empty array decodes to a non-nil slice; nil means missing or null
	if record.Transactions == nil {
		return nil, fmt.Errorf("%w: %s: missing transactions", domain.ErrMalformedRecord, file)
	}
	record.Path = file

	return &record, nil
}

// Ensure the loader implements the interface
var _ usecase.RecordLoader = (*Loader)(nil)
