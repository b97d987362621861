package render

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/abisync/internal/domain"
	"github.com/trebuchet-org/abisync/internal/domain/config"
	"github.com/trebuchet-org/abisync/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SyncRenderer handles rendering of binding sync results
type SyncRenderer struct {
	out         io.Writer
	projectRoot string
}

// NewSyncRenderer creates a new sync renderer.
// Paths are printed relative to projectRoot when possible.
func NewSyncRenderer(out io.Writer, projectRoot string) *SyncRenderer {
	return &SyncRenderer{
		out:         out,
		projectRoot: projectRoot,
	}
}

// RenderStart announces the run
func (r *SyncRenderer) RenderStart(cfg *config.RuntimeConfig) {
	fmt.Fprintf(r.out, "🔧 Syncing contract ABIs to frontend (Chain ID: %d)...\n", cfg.ChainID)
}

// RenderSyncResult renders the result of a sync run
func (r *SyncRenderer) RenderSyncResult(result *usecase.SyncResult) error {
	if result.Processed() == 0 {
		fmt.Fprintln(r.out, FormatWarning("No deployed contracts found in "+r.rel(result.RecordPath)))
		r.renderWarnings(result.Warnings)
		r.renderSkipped(result.Skipped)
		return nil
	}

	fmt.Fprintf(r.out, "📦 Found %d deployed contracts (commit %s)\n", result.Processed(), result.Commit)

	for _, synced := range result.Bindings {
		r.renderBinding(synced)
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.summaryTable(result.Bindings))

	r.renderWarnings(result.Warnings)

	r.renderSkipped(result.Skipped)

	if result.ManifestPath != "" {
		fmt.Fprintf(r.out, "\n🗂  Address manifest: %s\n", r.rel(result.ManifestPath))
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Synced %d contracts to frontend", result.Processed())))
	return nil
}

func (r *SyncRenderer) renderBinding(synced *usecase.SyncedBinding) {
	binding := synced.Binding

	fmt.Fprintln(r.out)
	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "📝 %s\n", binding.ContractName)
	fmt.Fprintf(r.out, "   Address: %s\n", binding.Address)
	if !binding.Canonicalized {
		color.New(color.FgYellow).Fprintln(r.out, "   ⚠️  Address not checksummed")
	}
	if binding.Source == domain.SourceInspect {
		color.New(color.FgYellow).Fprintln(r.out, "   ⚠️  ABI taken from forge inspect")
	}
	if synced.Written != nil {
		fmt.Fprintf(r.out, "   ✅ Generated: %s\n", r.rel(synced.Written.BindingPath))
		fmt.Fprintf(r.out, "   📄 ABI JSON: %s\n", r.rel(synced.Written.ABIPath))
	}
}

func (r *SyncRenderer) summaryTable(bindings []*usecase.SyncedBinding) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false

	t.AppendHeader(table.Row{"Contract", "Address", "Source", "Functions", "Events", "Errors", "Binding"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})

	for _, synced := range bindings {
		binding := synced.Binding
		bindingPath := ""
		if synced.Written != nil {
			bindingPath = filepath.Base(synced.Written.BindingPath)
		}
		t.AppendRow(table.Row{
			binding.ContractName,
			binding.Address,
			sourceLabel(binding.Source),
			count(synced.Summary, synced.Summary.Functions),
			count(synced.Summary, synced.Summary.Events),
			count(synced.Summary, synced.Summary.Errors),
			bindingPath,
		})
	}

	return t.Render()
}

func (r *SyncRenderer) renderWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	color.New(color.FgYellow).Fprintf(r.out, "\nWarnings:\n")
	for _, warning := range warnings {
		fmt.Fprintf(r.out, "  • %s\n", warning)
	}
}

func (r *SyncRenderer) renderSkipped(skipped []domain.TransactionEntry) {
	if len(skipped) == 0 {
		return
	}
	color.New(color.FgYellow).Fprintf(r.out, "\nSkipped %d unnamed contract creations:\n", len(skipped))
	for _, entry := range skipped {
		fmt.Fprintf(r.out, "  • %s at %s\n", valueOr(entry.Hash, "<no hash>"), valueOr(entry.ContractAddress, "<no address>"))
	}
}

func (r *SyncRenderer) rel(path string) string {
	if r.projectRoot == "" || path == "" {
		return path
	}
	if rel, err := filepath.Rel(r.projectRoot, path); err == nil {
		return rel
	}
	return path
}

func sourceLabel(source domain.ResolutionSource) string {
	return cases.Title(language.English).String(string(source))
}

// count prints "-" when the descriptor could not be decoded as a contract ABI
func count(summary domain.DescriptorSummary, n int) string {
	if !summary.Decoded {
		return "-"
	}
	return strconv.Itoa(n)
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
