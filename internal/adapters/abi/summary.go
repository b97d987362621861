package abi

import (
	"bytes"
	"log/slog"

	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/trebuchet-org/abisync/internal/domain"
	"github.com/trebuchet-org/abisync/internal/usecase"
)

// Summarizer counts ABI entries using go-ethereum's ABI decoder
type Summarizer struct {
	log *slog.Logger
}

// NewSummarizer creates a new ABI summarizer
func NewSummarizer(log *slog.Logger) *Summarizer {
	return &Summarizer{log: log.With("component", "Summarizer")}
}

// Summarize never fails: an ABI go-ethereum can't decode is still counted by entries
func (s *Summarizer) Summarize(descriptor domain.InterfaceDescriptor) domain.DescriptorSummary {
	summary := domain.DescriptorSummary{Entries: descriptor.Len()}

	parsed, err := gethabi.JSON(bytes.NewReader(descriptor))
	if err != nil {
		s.log.Debug("could not decode ABI for summary", "error", err)
		return summary
	}

	summary.Functions = len(parsed.Methods)
	summary.Events = len(parsed.Events)
	summary.Errors = len(parsed.Errors)
	summary.Decoded = true
	return summary
}

var _ usecase.DescriptorSummarizer = (*Summarizer)(nil)
