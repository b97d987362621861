package abi

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/abisync/internal/domain/config"
)

// ArtifactIndex lists the contract names that have artifacts under the out directory.
// The directory is scanned once, on first use.
type ArtifactIndex struct {
	outDir string
	log    *slog.Logger

	once  sync.Once
	names []string
}

// NewArtifactIndex creates an index over the configured out directory
func NewArtifactIndex(cfg *config.RuntimeConfig, log *slog.Logger) *ArtifactIndex {
	return &ArtifactIndex{
		outDir: cfg.OutDir,
		log:    log.With("component", "ArtifactIndex"),
	}
}

// Names returns the sorted, de-duplicated contract names found in out/<File>.sol/<Name>.json
func (i *ArtifactIndex) Names() []string {
	i.once.Do(i.scan)
	return i.names
}

// Suggest returns up to limit contract names that fuzzy-match name, best first
func (i *ArtifactIndex) Suggest(name string, limit int) []string {
	names := i.Names()
	if len(names) == 0 || name == "" {
		return nil
	}

	var suggestions []string
	for _, match := range fuzzy.Find(name, names) {
		if match.Str == name {
			continue
		}
		suggestions = append(suggestions, match.Str)
		if len(suggestions) == limit {
			break
		}
	}
	return suggestions
}

func (i *ArtifactIndex) scan() {
	matches, err := filepath.Glob(filepath.Join(i.outDir, "*.sol", "*.json"))
	if err != nil {
		i.log.Debug("failed to scan artifacts", "dir", i.outDir, "error", err)
		return
	}

	seen := make(map[string]bool)
	for _, match := range matches {
		if info, err := os.Stat(match); err != nil || info.IsDir() {
			continue
		}
		name := strings.TrimSuffix(filepath.Base(match), ".json")
		// multi-version compiles produce Name.0.8.20.json
		if idx := strings.Index(name, "."); idx != -1 {
			name = name[:idx]
		}
		if !seen[name] {
			seen[name] = true
			i.names = append(i.names, name)
		}
	}
	sort.Strings(i.names)
	i.log.Debug("indexed artifacts", "dir", i.outDir, "count", len(i.names))
}
