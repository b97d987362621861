package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// InterfaceDescriptor is a contract ABI kept as the raw JSON array it was read from.
// Entries are never decoded into Go values so their order and key order survive untouched.
type InterfaceDescriptor json.RawMessage

// ParseDescriptor validates that data holds a JSON array and returns it as a descriptor
func ParseDescriptor(data []byte) (InterfaceDescriptor, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidDescriptor)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: expected array, got %s", ErrInvalidDescriptor, typeErr.Value)
		}
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}
	if entries == nil {
		// literal null
		return nil, fmt.Errorf("%w: expected array, got null", ErrInvalidDescriptor)
	}

	return InterfaceDescriptor(bytes.Clone(data)), nil
}

// Len returns the number of ABI entries
func (d InterfaceDescriptor) Len() int {
	var entries []json.RawMessage
	if err := json.Unmarshal(d, &entries); err != nil {
		return 0
	}
	return len(entries)
}

// Indent renders the descriptor as multi-line JSON with two-space indentation.
// Object keys keep their source order, so identical input always yields identical output.
func (d InterfaceDescriptor) Indent() ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, d, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to format ABI: %w", err)
	}
	return buf.Bytes(), nil
}
