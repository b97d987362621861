package template

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/trebuchet-org/abisync/internal/domain"
	"github.com/trebuchet-org/abisync/internal/usecase"
)

// timestampLayout matches JavaScript's Date.toISOString
const timestampLayout = "2006-01-02T15:04:05.000Z"

const bindingTemplate = `// Auto-generated from contract deployment
// Generated at: {{.GeneratedAt}}
// Chain ID: {{.ChainID}}
// Commit: {{.Commit}}
// DO NOT EDIT MANUALLY - changes will be overwritten

export const {{.Prefix}}_ADDRESS = '{{.Address}}' as const;

export const {{.Prefix}}_ABI = {{.ABI}} as const;

export const {{.Prefix}}_CONTRACT = {
  address: {{.Prefix}}_ADDRESS,
  abi: {{.Prefix}}_ABI,
} as const;
`

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

type bindingData struct {
	GeneratedAt string
	ChainID     uint64
	Commit      string
	Prefix      string
	Address     string
	ABI         string
}

// BindingGeneratorAdapter renders TypeScript bindings with `as const` exports
type BindingGeneratorAdapter struct {
	tmpl *template.Template
	now  func() time.Time
}

// NewBindingGeneratorAdapter creates a new binding generator
func NewBindingGeneratorAdapter() *BindingGeneratorAdapter {
	return &BindingGeneratorAdapter{
		tmpl: template.Must(template.New("binding").Parse(bindingTemplate)),
		now:  time.Now,
	}
}

// Generate renders the typed binding and the raw ABI document.
// Only the generation timestamp differs between runs with the same input.
func (g *BindingGeneratorAdapter) Generate(binding *domain.BindingArtifact) (*domain.RenderedBinding, error) {
	abiJSON, err := binding.ABI.Indent()
	if err != nil {
		return nil, err
	}

	data := bindingData{
		GeneratedAt: g.now().UTC().Format(timestampLayout),
		ChainID:     binding.ChainID,
		Commit:      binding.Commit,
		Prefix:      binding.SymbolPrefix,
		Address:     quoteEscaper.Replace(binding.Address),
		ABI:         string(abiJSON),
	}

	var buf bytes.Buffer
	if err := g.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute binding template: %w", err)
	}

	return &domain.RenderedBinding{
		ContractName:  binding.ContractName,
		FileStem:      binding.FileStem,
		TypedSource:   buf.Bytes(),
		RawDescriptor: abiJSON,
	}, nil
}

var _ usecase.BindingGenerator = (*BindingGeneratorAdapter)(nil)
