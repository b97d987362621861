package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleABI = `[{"type":"function","name":"rate","inputs":[{"name":"id","type":"uint256","internalType":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},{"type":"event","name":"Rated","inputs":[],"anonymous":false},{"type":"error","name":"NotOwner","inputs":[]}]`

func TestParseDescriptor(t *testing.T) {
	t.Run("accepts array", func(t *testing.T) {
		d, err := ParseDescriptor([]byte("  " + sampleABI + "\n"))
		require.NoError(t, err)
		assert.Equal(t, 3, d.Len())
		assert.Equal(t, sampleABI, string(d))
	})

	t.Run("accepts empty array", func(t *testing.T) {
		d, err := ParseDescriptor([]byte("[]"))
		require.NoError(t, err)
		assert.Equal(t, 0, d.Len())
	})

	t.Run("rejects object", func(t *testing.T) {
		_, err := ParseDescriptor([]byte(`{"abi":[]}`))
		assert.ErrorIs(t, err, ErrInvalidDescriptor)
	})

	t.Run("rejects null", func(t *testing.T) {
		_, err := ParseDescriptor([]byte("null"))
		assert.ErrorIs(t, err, ErrInvalidDescriptor)
	})

	t.Run("rejects missing field", func(t *testing.T) {
		_, err := ParseDescriptor(nil)
		assert.ErrorIs(t, err, ErrInvalidDescriptor)
	})

	t.Run("syntax error is a parse failure", func(t *testing.T) {
		_, err := ParseDescriptor([]byte(`[{"type":`))
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidDescriptor)
		assert.Contains(t, err.Error(), "failed to parse ABI")
	})
}

func TestInterfaceDescriptor_Indent(t *testing.T) {
	// keys deliberately out of alphabetical order
	d, err := ParseDescriptor([]byte(`[{"type":"function","name":"b","inputs":[]},{"type":"event","name":"a"}]`))
	require.NoError(t, err)

	out, err := d.Indent()
	require.NoError(t, err)

	expected := `[
  {
    "type": "function",
    "name": "b",
    "inputs": []
  },
  {
    "type": "event",
    "name": "a"
  }
]`
	assert.Equal(t, expected, string(out))

	again, err := d.Indent()
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestInterfaceDescriptor_IndentPreservesEntries(t *testing.T) {
	d, err := ParseDescriptor([]byte(sampleABI))
	require.NoError(t, err)

	out, err := d.Indent()
	require.NoError(t, err)

	var before, after []any
	require.NoError(t, json.Unmarshal(d, &before))
	require.NoError(t, json.Unmarshal(out, &after))
	assert.Equal(t, before, after)
}
