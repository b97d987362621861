package checksum

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/abisync/internal/adapters/shell"
	"github.com/trebuchet-org/abisync/internal/domain"
	"github.com/trebuchet-org/abisync/internal/domain/config"
	"github.com/trebuchet-org/abisync/internal/usecase"
)

// CastChecksummer checksums addresses with `cast to-check-sum-address`
type CastChecksummer struct {
	runner      shell.Runner
	castPath    string
	projectRoot string
	log         *slog.Logger
}

// NewCastChecksummer creates a checksummer backed by Foundry's cast
func NewCastChecksummer(cfg *config.RuntimeConfig, runner shell.Runner, log *slog.Logger) *CastChecksummer {
	return &CastChecksummer{
		runner:      runner,
		castPath:    cfg.CastPath,
		projectRoot: cfg.ProjectRoot,
		log:         log.With("component", "CastChecksummer"),
	}
}

// Checksum runs cast once per call; results are not cached
func (c *CastChecksummer) Checksum(ctx context.Context, rawAddress string) (string, error) {
	out, err := c.runner.Run(ctx, c.projectRoot, c.castPath, "to-check-sum-address", rawAddress)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrCanonicalizationUnavailable, err)
	}
	if !common.IsHexAddress(out) {
		return "", fmt.Errorf("%w: unexpected cast output %q", domain.ErrCanonicalizationUnavailable, out)
	}
	c.log.Debug("checksummed address", "raw", rawAddress, "checksummed", out)
	return out, nil
}

var _ usecase.AddressChecksummer = (*CastChecksummer)(nil)
