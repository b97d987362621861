package abi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/trebuchet-org/abisync/internal/domain"
	"github.com/trebuchet-org/abisync/internal/domain/config"
	"github.com/trebuchet-org/abisync/internal/usecase"
)

// Inspector fetches a contract ABI from the build toolchain when no artifact is on disk
type Inspector interface {
	InspectABI(ctx context.Context, contractName string) (string, error)
	CommandLine(contractName string) string
}

// foundryArtifact is the subset of out/<Name>.sol/<Name>.json needed here
type foundryArtifact struct {
	ABI json.RawMessage `json:"abi"`
}

// ABIResolver resolves ABIs from compiled artifacts, falling back to forge inspect
type ABIResolver struct {
	config    *config.RuntimeConfig
	inspector Inspector
	index     *ArtifactIndex
	log       *slog.Logger
}

// NewABIResolver creates a new two-tier ABI resolver
func NewABIResolver(cfg *config.RuntimeConfig, inspector Inspector, index *ArtifactIndex, log *slog.Logger) *ABIResolver {
	return &ABIResolver{
		config:    cfg,
		inspector: inspector,
		index:     index,
		log:       log.With("component", "ABIResolver"),
	}
}

// Resolve prefers out/<Name>.sol/<Name>.json and only runs forge inspect when that file doesn't exist.
// A broken artifact is an error; it does not trigger the fallback.
func (r *ABIResolver) Resolve(ctx context.Context, contractName string) (domain.Resolution, error) {
	artifactPath := r.config.ArtifactPath(contractName)

	resolution, err := r.fromArtifact(artifactPath)
	if err == nil {
		return resolution, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return domain.Resolution{}, err
	}

	r.log.Debug("artifact not found, falling back to forge inspect", "contract", contractName, "path", artifactPath)
	return r.fromInspect(ctx, contractName, artifactPath)
}

func (r *ABIResolver) fromArtifact(path string) (domain.Resolution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Resolution{}, err
		}
		return domain.Resolution{}, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}

	var artifact foundryArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return domain.Resolution{}, fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}

	descriptor, err := domain.ParseDescriptor(artifact.ABI)
	if err != nil {
		return domain.Resolution{}, fmt.Errorf("artifact %s: %w", path, err)
	}

	return domain.Resolution{
		Source:     domain.SourceArtifact,
		Descriptor: descriptor,
		Location:   path,
	}, nil
}

func (r *ABIResolver) fromInspect(ctx context.Context, contractName, artifactPath string) (domain.Resolution, error) {
	commandLine := r.inspector.CommandLine(contractName)

	out, err := r.inspector.InspectABI(ctx, contractName)
	if err != nil {
		reason := fmt.Sprintf("%s does not exist and %s failed: %v", r.relative(artifactPath), commandLine, err)
		if suggestions := r.index.Suggest(contractName, 3); len(suggestions) > 0 {
			reason += fmt.Sprintf(" (did you mean %s?)", strings.Join(suggestions, ", "))
		}
		return domain.Resolution{
			Source:   domain.SourceNotFound,
			Location: commandLine,
			Reason:   reason,
		}, nil
	}

	descriptor, err := domain.ParseDescriptor([]byte(out))
	if err != nil {
		return domain.Resolution{}, fmt.Errorf("%s: %w", commandLine, err)
	}

	return domain.Resolution{
		Source:     domain.SourceInspect,
		Descriptor: descriptor,
		Location:   commandLine,
	}, nil
}

func (r *ABIResolver) relative(path string) string {
	if rel, err := filepath.Rel(r.config.ProjectRoot, path); err == nil {
		return rel
	}
	return path
}

var _ usecase.InterfaceResolver = (*ABIResolver)(nil)
