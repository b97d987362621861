package fs

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/trebuchet-org/abisync/internal/domain"
	"github.com/trebuchet-org/abisync/internal/domain/config"
	"github.com/trebuchet-org/abisync/internal/usecase"
	"gopkg.in/yaml.v3"
)

// FileWriterAdapter writes generated bindings under the output root:
//
//	<output>/<fileStem>.<ext>
//	<output>/abi/<ContractName>.json
//	<output>/deployments/<chainId>.yaml   (manifest, opt-in)
type FileWriterAdapter struct {
	outputDir  string
	bindingExt string
	log        *slog.Logger
}

// NewFileWriterAdapter creates a new file writer adapter
func NewFileWriterAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *FileWriterAdapter {
	return &FileWriterAdapter{
		outputDir:  cfg.OutputDir,
		bindingExt: cfg.BindingExt,
		log:        log.With("component", "FileWriter"),
	}
}

// Write creates the output directories if needed and overwrites both files
func (f *FileWriterAdapter) Write(ctx context.Context, rendered *domain.RenderedBinding) (*domain.WrittenBinding, error) {
	abiDir := filepath.Join(f.outputDir, "abi")
	if err := f.ensureDirectory(abiDir); err != nil {
		return nil, err
	}

	written := &domain.WrittenBinding{
		ContractName: rendered.ContractName,
		BindingPath:  filepath.Join(f.outputDir, rendered.FileStem+"."+f.bindingExt),
		ABIPath:      filepath.Join(abiDir, rendered.ContractName+".json"),
	}

	if err := f.writeFile(written.BindingPath, rendered.TypedSource); err != nil {
		return nil, err
	}
	if err := f.writeFile(written.ABIPath, rendered.RawDescriptor); err != nil {
		return nil, err
	}

	f.log.Debug("wrote binding", "contract", rendered.ContractName, "binding", written.BindingPath, "abi", written.ABIPath)
	return written, nil
}

// WriteManifest writes the chain's address manifest as YAML
func (f *FileWriterAdapter) WriteManifest(ctx context.Context, manifest *domain.AddressManifest) (string, error) {
	dir := filepath.Join(f.outputDir, "deployments")
	if err := f.ensureDirectory(dir); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(manifest); err != nil {
		return "", fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode manifest: %w", err)
	}

	path := filepath.Join(dir, strconv.FormatUint(manifest.ChainID, 10)+".yaml")
	if err := f.writeFile(path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}

func (f *FileWriterAdapter) ensureDirectory(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("%w: failed to create directory %s: %v", domain.ErrWriteFailed, path, err)
	}
	return nil
}

func (f *FileWriterAdapter) writeFile(path string, content []byte) error {
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrWriteFailed, path, err)
	}
	return nil
}

// Ensure the adapter implements the interfaces
var (
	_ usecase.BindingWriter  = (*FileWriterAdapter)(nil)
	_ usecase.ManifestWriter = (*FileWriterAdapter)(nil)
)
