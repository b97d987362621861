package domain

import (
	"strings"

	"github.com/samber/lo"
)

// TransactionTypeCreate is the Foundry broadcast tag for a plain contract creation
const TransactionTypeCreate = "CREATE"

// DeploymentRecord represents a Foundry broadcast file (run-latest.json) for one chain
type DeploymentRecord struct {
	Chain        uint64             `json:"chain"`
	Commit       string             `json:"commit"`
	Timestamp    uint64             `json:"timestamp"`
	Transactions []TransactionEntry `json:"transactions"`

	// Path is where the record was loaded from, not part of the document
	Path string `json:"-"`
}

// TransactionEntry represents a transaction in a broadcast file.
// Only the fields needed for binding generation are decoded.
type TransactionEntry struct {
	Hash            string `json:"hash"`
	TransactionType string `json:"transactionType"`
	ContractName    string `json:"contractName"`
	ContractAddress string `json:"contractAddress"`
}

// IsCreation reports whether the entry created a new contract instance
func (t TransactionEntry) IsCreation() bool {
	return t.TransactionType == TransactionTypeCreate
}

// CommitOrUnknown returns the commit recorded by forge, or "unknown" when absent
func (r *DeploymentRecord) CommitOrUnknown() string {
	if c := strings.TrimSpace(r.Commit); c != "" {
		return c
	}
	return "unknown"
}

// Creations returns the contract creation entries in record order
func (r *DeploymentRecord) Creations() []TransactionEntry {
	return lo.Filter(r.Transactions, func(tx TransactionEntry, _ int) bool {
		return tx.IsCreation()
	})
}
