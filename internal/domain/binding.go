package domain

// ResolutionSource tags where an interface descriptor came from
type ResolutionSource string

const (
	SourceArtifact ResolutionSource = "artifact"
	SourceInspect  ResolutionSource = "inspect"
	SourceNotFound ResolutionSource = "not-found"
)

// Resolution is the outcome of looking up a contract's ABI.
// A SourceNotFound resolution carries no descriptor; callers decide whether that is fatal.
type Resolution struct {
	Source     ResolutionSource
	Descriptor InterfaceDescriptor
	// Location is the artifact path or the inspect command line
	Location string
	// Reason explains a SourceNotFound outcome
	Reason string
}

// Found reports whether a descriptor was resolved
func (r Resolution) Found() bool {
	return r.Source == SourceArtifact || r.Source == SourceInspect
}

// CanonicalAddress is the result of checksumming a raw broadcast address
type CanonicalAddress struct {
	Raw           string
	Value         string
	Canonicalized bool
}

// BindingArtifact is everything needed to render the generated files for one contract
type BindingArtifact struct {
	ContractName string
	Address      string
	RawAddress   string
	ABI          InterfaceDescriptor
	ChainID      uint64
	Commit       string
	Source       ResolutionSource
	// Canonicalized is false when the raw address was kept after a checksum failure
	Canonicalized bool

	SymbolPrefix string
	FileStem     string
}

// NewBindingArtifact derives the naming tokens for a contract
func NewBindingArtifact(contractName string, address CanonicalAddress, abi InterfaceDescriptor, chainID uint64, commit string, source ResolutionSource) *BindingArtifact {
	return &BindingArtifact{
		ContractName:  contractName,
		Address:       address.Value,
		RawAddress:    address.Raw,
		ABI:           abi,
		ChainID:       chainID,
		Commit:        commit,
		Source:        source,
		Canonicalized: address.Canonicalized,
		SymbolPrefix:  SymbolPrefix(contractName),
		FileStem:      FileStem(contractName),
	}
}

// RenderedBinding holds the generated file contents for one contract
type RenderedBinding struct {
	ContractName  string
	FileStem      string
	TypedSource   []byte
	RawDescriptor []byte
}

// WrittenBinding records where a binding was written
type WrittenBinding struct {
	ContractName string
	BindingPath  string
	ABIPath      string
}

// DescriptorSummary counts the entry kinds of an ABI for reporting
type DescriptorSummary struct {
	Entries   int
	Functions int
	Events    int
	Errors    int
	// Decoded is false when the ABI could not be decoded and only Entries is known
	Decoded bool
}

// AddressManifest lists the deployed addresses of one chain
type AddressManifest struct {
	ChainID   uint64          `yaml:"chainId"`
	Commit    string          `yaml:"commit"`
	Contracts []ManifestEntry `yaml:"contracts"`
}

// ManifestEntry is one contract in an AddressManifest
type ManifestEntry struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	Binding string `yaml:"binding"`
}
