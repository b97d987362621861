package checksum

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/abisync/internal/domain"
	"github.com/trebuchet-org/abisync/internal/usecase"
)

// StubChecksummer returns canned addresses, or Err for every call when set
type StubChecksummer struct {
	Addresses map[string]string
	Err       error
	Calls     []string
}

// Checksum implements usecase.AddressChecksummer
func (s *StubChecksummer) Checksum(_ context.Context, rawAddress string) (string, error) {
	s.Calls = append(s.Calls, rawAddress)
	if s.Err != nil {
		return "", s.Err
	}
	if addr, ok := s.Addresses[rawAddress]; ok {
		return addr, nil
	}
	return "", fmt.Errorf("%w: no stubbed address for %s", domain.ErrCanonicalizationUnavailable, rawAddress)
}

var _ usecase.AddressChecksummer = (*StubChecksummer)(nil)
