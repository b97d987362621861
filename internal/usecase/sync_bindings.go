package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/trebuchet-org/abisync/internal/domain"
	"github.com/trebuchet-org/abisync/internal/domain/config"
)

// SyncResult contains the result of a binding sync run
type SyncResult struct {
	ChainID      uint64
	Commit       string
	RecordPath   string
	Bindings     []*SyncedBinding
	Skipped      []domain.TransactionEntry
	Warnings     []string
	ManifestPath string
}

// SyncedBinding is one generated contract binding
type SyncedBinding struct {
	Binding *domain.BindingArtifact
	Written *domain.WrittenBinding
	Summary domain.DescriptorSummary
}

// Processed returns the number of contracts that got bindings
func (r *SyncResult) Processed() int {
	return len(r.Bindings)
}

// SyncBindings generates frontend bindings for the contracts created in a deployment
type SyncBindings struct {
	config      *config.RuntimeConfig
	loader      RecordLoader
	checksummer AddressChecksummer
	resolver    InterfaceResolver
	summarizer  DescriptorSummarizer
	generator   BindingGenerator
	writer      BindingWriter
	manifest    ManifestWriter
	progress    ProgressSink
	log         *slog.Logger
}

// NewSyncBindings creates a new SyncBindings use case
func NewSyncBindings(
	cfg *config.RuntimeConfig,
	loader RecordLoader,
	checksummer AddressChecksummer,
	resolver InterfaceResolver,
	summarizer DescriptorSummarizer,
	generator BindingGenerator,
	writer BindingWriter,
	manifest ManifestWriter,
	progress ProgressSink,
	log *slog.Logger,
) *SyncBindings {
	return &SyncBindings{
		config:      cfg,
		loader:      loader,
		checksummer: checksummer,
		resolver:    resolver,
		summarizer:  summarizer,
		generator:   generator,
		writer:      writer,
		manifest:    manifest,
		progress:    progress,
		log:         log.With("component", "SyncBindings"),
	}
}

// Run loads the deployment record and writes one binding per created contract.
// Every contract is resolved before anything is written, so a missing or invalid ABI
// aborts the run without touching the output directory.
func (uc *SyncBindings) Run(ctx context.Context) (*SyncResult, error) {
	defer uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageLoading, Message: uc.config.RecordPath()})
	record, err := uc.loader.Load(ctx, uc.config.ChainID)
	if err != nil {
		return nil, err
	}

	result := &SyncResult{
		ChainID:    uc.config.ChainID,
		Commit:     record.CommitOrUnknown(),
		RecordPath: record.Path,
	}

	creations := record.Creations()
	uc.log.Debug("loaded deployment record", "path", record.Path, "transactions", len(record.Transactions), "creations", len(creations))
	if len(creations) == 0 {
		return result, nil
	}

	bindings, err := uc.resolveAll(ctx, creations, result)
	if err != nil {
		return nil, err
	}

	for i, binding := range bindings {
		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   StageWriting,
			Current: i + 1,
			Total:   len(bindings),
			Message: binding.ContractName,
		})

		rendered, err := uc.generator.Generate(binding)
		if err != nil {
			return nil, &domain.ContractError{Contract: binding.ContractName, Stage: domain.StageRender, Err: err}
		}

		written, err := uc.writer.Write(ctx, rendered)
		if err != nil {
			return nil, &domain.ContractError{Contract: binding.ContractName, Stage: domain.StageWrite, Err: err}
		}

		result.Bindings = append(result.Bindings, &SyncedBinding{
			Binding: binding,
			Written: written,
			Summary: uc.summarizer.Summarize(binding.ABI),
		})
	}

	if uc.config.Manifest && len(result.Bindings) > 0 {
		path, err := uc.manifest.WriteManifest(ctx, uc.buildManifest(result))
		if err != nil {
			return nil, err
		}
		result.ManifestPath = path
	}

	return result, nil
}

// resolveAll canonicalizes and resolves every creation entry in record order
func (uc *SyncBindings) resolveAll(ctx context.Context, creations []domain.TransactionEntry, result *SyncResult) ([]*domain.BindingArtifact, error) {
	bindings := make([]*domain.BindingArtifact, 0, len(creations))

	for i, entry := range creations {
		if entry.ContractName == "" {
			uc.log.Warn("skipping contract creation without a contract name", "address", entry.ContractAddress, "tx", entry.Hash)
			result.Skipped = append(result.Skipped, entry)
			continue
		}

		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   StageResolving,
			Current: i + 1,
			Total:   len(creations),
			Message: entry.ContractName,
			Spinner: true,
		})

		address := uc.canonicalize(ctx, entry.ContractAddress, result)

		resolution, err := uc.resolver.Resolve(ctx, entry.ContractName)
		if err != nil {
			return nil, &domain.ContractError{Contract: entry.ContractName, Stage: domain.StageResolve, Err: err}
		}
		if !resolution.Found() {
			return nil, &domain.ContractError{
				Contract: entry.ContractName,
				Stage:    domain.StageResolve,
				Err:      fmt.Errorf("%w: %s", domain.ErrInterfaceNotFound, resolution.Reason),
			}
		}
		uc.log.Debug("resolved interface", "contract", entry.ContractName, "source", resolution.Source, "location", resolution.Location)

		bindings = append(bindings, domain.NewBindingArtifact(
			entry.ContractName,
			address,
			resolution.Descriptor,
			uc.config.ChainID,
			result.Commit,
			resolution.Source,
		))
	}

	return bindings, nil
}

// canonicalize checksums an address, keeping the raw value when the checksummer fails
func (uc *SyncBindings) canonicalize(ctx context.Context, raw string, result *SyncResult) domain.CanonicalAddress {
	checksummed, err := uc.checksummer.Checksum(ctx, raw)
	if err != nil {
		uc.log.Warn("address checksum unavailable, using raw address", "address", raw, "error", err)
		result.Warnings = append(result.Warnings, fmt.Sprintf("could not checksum %s: %v", raw, err))
		return domain.CanonicalAddress{Raw: raw, Value: raw}
	}
	return domain.CanonicalAddress{Raw: raw, Value: checksummed, Canonicalized: true}
}

func (uc *SyncBindings) buildManifest(result *SyncResult) *domain.AddressManifest {
	return &domain.AddressManifest{
		ChainID: result.ChainID,
		Commit:  result.Commit,
		Contracts: lo.Map(result.Bindings, func(b *SyncedBinding, _ int) domain.ManifestEntry {
			return domain.ManifestEntry{
				Name:    b.Binding.ContractName,
				Address: b.Binding.Address,
				Binding: filepath.Base(b.Written.BindingPath),
			}
		}),
	}
}
