package adapters

import (
	"log/slog"

	"github.com/google/wire"
	"github.com/trebuchet-org/abisync/internal/adapters/abi"
	"github.com/trebuchet-org/abisync/internal/adapters/checksum"
	"github.com/trebuchet-org/abisync/internal/adapters/forge"
	"github.com/trebuchet-org/abisync/internal/adapters/forge/broadcast"
	"github.com/trebuchet-org/abisync/internal/adapters/fs"
	"github.com/trebuchet-org/abisync/internal/adapters/shell"
	"github.com/trebuchet-org/abisync/internal/adapters/template"
	"github.com/trebuchet-org/abisync/internal/domain/config"
	"github.com/trebuchet-org/abisync/internal/usecase"
)

// ProvideChecksummer picks the address checksummer named by the configuration
func ProvideChecksummer(cfg *config.RuntimeConfig, runner shell.Runner, log *slog.Logger) usecase.AddressChecksummer {
	if cfg.Checksummer == config.ChecksummerNative {
		return checksum.NewNativeChecksummer()
	}
	return checksum.NewCastChecksummer(cfg, runner, log)
}

// ShellSet provides the subprocess runner shared by cast and forge
var ShellSet = wire.NewSet(
	shell.NewExecRunner,
	wire.Bind(new(shell.Runner), new(*shell.ExecRunner)),
)

// ForgeSet provides Foundry-backed implementations
var ForgeSet = wire.NewSet(
	broadcast.NewLoader,
	wire.Bind(new(usecase.RecordLoader), new(*broadcast.Loader)),

	forge.NewInspectorAdapter,
	wire.Bind(new(abi.Inspector), new(*forge.InspectorAdapter)),

	ProvideChecksummer,
)

// ABISet provides ABI resolution and inspection
var ABISet = wire.NewSet(
	abi.NewArtifactIndex,
	abi.NewABIResolver,
	wire.Bind(new(usecase.InterfaceResolver), new(*abi.ABIResolver)),

	abi.NewSummarizer,
	wire.Bind(new(usecase.DescriptorSummarizer), new(*abi.Summarizer)),
)

// TemplateSet provides template-based implementations
var TemplateSet = wire.NewSet(
	template.NewBindingGeneratorAdapter,
	wire.Bind(new(usecase.BindingGenerator), new(*template.BindingGeneratorAdapter)),
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewFileWriterAdapter,
	wire.Bind(new(usecase.BindingWriter), new(*fs.FileWriterAdapter)),
	wire.Bind(new(usecase.ManifestWriter), new(*fs.FileWriterAdapter)),
)

// AllAdapters combines all adapter sets
var AllAdapters = wire.NewSet(
	ShellSet,
	ForgeSet,
	ABISet,
	TemplateSet,
	FSSet,
)
