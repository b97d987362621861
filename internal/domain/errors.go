package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the binding pipeline
var (
	// ErrMissingDeployment is returned when the broadcast file for a chain doesn't exist
	ErrMissingDeployment = errors.New("deployment record not found")

	// ErrMalformedRecord is returned when the broadcast file can't be parsed
	ErrMalformedRecord = errors.New("malformed deployment record")

	// ErrInvalidChainID is returned when the chain identifier is not numeric
	ErrInvalidChainID = errors.New("invalid chain ID")

	// ErrCanonicalizationUnavailable is returned by checksummers that could not produce an address.
	// The pipeline recovers from it by keeping the raw address.
	ErrCanonicalizationUnavailable = errors.New("address canonicalization unavailable")

	// ErrInterfaceNotFound is returned when neither the artifact nor forge inspect yields an ABI
	ErrInterfaceNotFound = errors.New("interface descriptor not found")

	// ErrInvalidDescriptor is returned when a resolved ABI is not a JSON array
	ErrInvalidDescriptor = errors.New("invalid interface descriptor")

	// ErrWriteFailed is returned when an output directory or file can't be written
	ErrWriteFailed = errors.New("write failed")
)

// Stage identifies the pipeline step a contract failed in
type Stage string

const (
	StageCanonicalize Stage = "canonicalize"
	StageResolve      Stage = "resolve"
	StageRender       Stage = "render"
	StageWrite        Stage = "write"
)

// ContractError ties a fatal pipeline error to the contract being processed
type ContractError struct {
	Contract string
	Stage    Stage
	Err      error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Contract, e.Stage, e.Err)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}
