package checksum

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/abisync/internal/domain"
	"github.com/trebuchet-org/abisync/internal/usecase"
)

// NativeChecksummer computes EIP-55 checksums in process
type NativeChecksummer struct{}

// NewNativeChecksummer creates an in-process checksummer
func NewNativeChecksummer() *NativeChecksummer {
	return &NativeChecksummer{}
}

// Checksum returns the EIP-55 form of a 20-byte hex address
func (NativeChecksummer) Checksum(_ context.Context, rawAddress string) (string, error) {
	if !common.IsHexAddress(rawAddress) {
		return "", fmt.Errorf("%w: %q is not a hex address", domain.ErrCanonicalizationUnavailable, rawAddress)
	}
	return common.HexToAddress(rawAddress).Hex(), nil
}

var _ usecase.AddressChecksummer = (*NativeChecksummer)(nil)
