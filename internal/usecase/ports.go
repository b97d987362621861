package usecase

import (
	"context"

	"github.com/trebuchet-org/abisync/internal/domain"
)

// RecordLoader reads the Foundry broadcast file for a chain
type RecordLoader interface {
	Load(ctx context.Context, chainID uint64) (*domain.DeploymentRecord, error)
}

// AddressChecksummer converts a raw address into its EIP-55 checksummed form
type AddressChecksummer interface {
	Checksum(ctx context.Context, rawAddress string) (string, error)
}

// InterfaceResolver looks up a contract's ABI by contract name.
// A descriptor that can't be found is reported as a SourceNotFound resolution, not an error.
type InterfaceResolver interface {
	Resolve(ctx context.Context, contractName string) (domain.Resolution, error)
}

// DescriptorSummarizer counts the entries of an ABI
type DescriptorSummarizer interface {
	Summarize(descriptor domain.InterfaceDescriptor) domain.DescriptorSummary
}

// BindingGenerator renders the typed binding and raw ABI documents for a contract
type BindingGenerator interface {
	Generate(binding *domain.BindingArtifact) (*domain.RenderedBinding, error)
}

// BindingWriter persists rendered bindings under the output root
type BindingWriter interface {
	Write(ctx context.Context, rendered *domain.RenderedBinding) (*domain.WrittenBinding, error)
}

// ManifestWriter persists the per-chain address manifest
type ManifestWriter interface {
	WriteManifest(ctx context.Context, manifest *domain.AddressManifest) (string, error)
}

// Progress tracking interfaces

// ExecutionStage represents a stage of the sync run
type ExecutionStage string

const (
	StageLoading   ExecutionStage = "Loading"
	StageResolving ExecutionStage = "Resolving"
	StageWriting   ExecutionStage = "Writing"
	StageCompleted ExecutionStage = "Completed"
)

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   ExecutionStage
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
}
