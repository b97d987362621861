package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/abisync/internal/domain"
)

const (
	tokenARaw = "0x5fbdb2315678afecb367f032d93f642f64180aa3"
	tokenASum = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	tokenBRaw = "0xe7f1725e7734ce288f8367e1bb143e90bb3f0512"

	tokenArtifact = `{
  "abi": [
    {"type": "function", "name": "transfer", "inputs": [{"name": "to", "type": "address"}, {"name": "amount", "type": "uint256"}], "outputs": [{"name": "", "type": "bool"}], "stateMutability": "nonpayable"},
    {"type": "event", "name": "Transfer", "inputs": [], "anonymous": false}
  ],
  "bytecode": {"object": "0x"}
}`

	twoTokenRecord = `{
  "transactions": [
    {"hash": "0x01", "transactionType": "CREATE", "contractName": "TokenA", "contractAddress": "` + tokenARaw + `"},
    {"hash": "0x02", "transactionType": "CALL", "contractName": "TokenA", "contractAddress": "` + tokenARaw + `"},
    {"hash": "0x03", "transactionType": "CREATE", "contractName": "TokenB", "contractAddress": "` + tokenBRaw + `"}
  ],
  "chain": 31337,
  "commit": "abc1234",
  "timestamp": 1700000000
}`
)

// testProject lays out a Foundry project next to a dapp directory
type testProject struct {
	root      string
	outputDir string
}

func newTestProject(t *testing.T) *testProject {
	t.Helper()
	base := t.TempDir()
	root := filepath.Join(base, "contracts")
	require.NoError(t, os.MkdirAll(root, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "foundry.toml"), []byte("[profile.default]\nsrc = \"src\"\nout = \"out\"\n"), 0644))

	t.Setenv("ABISYNC_PROJECT_ROOT", root)
	t.Setenv("ABISYNC_CAST_PATH", filepath.Join(base, "missing-cast"))
	t.Setenv("ABISYNC_FORGE_PATH", filepath.Join(base, "missing-forge"))
	t.Setenv("ABISYNC_NON_INTERACTIVE", "true")
	t.Setenv("ABISYNC_LOG_LEVEL", "error")

	return &testProject{
		root:      root,
		outputDir: filepath.Join(base, "dapp", "src", "app", "contracts"),
	}
}

func (p *testProject) writeRecord(t *testing.T, chain, content string) {
	t.Helper()
	dir := filepath.Join(p.root, "broadcast", "Deploy.s.sol", chain)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "run-latest.json"), []byte(content), 0644))
}

func (p *testProject) writeArtifact(t *testing.T, name string) {
	t.Helper()
	dir := filepath.Join(p.root, "out", name+".sol")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), []byte(tokenArtifact), 0644))
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_SyncsBindings(t *testing.T) {
	p := newTestProject(t)
	p.writeRecord(t, "31337", twoTokenRecord)
	p.writeArtifact(t, "TokenA")
	p.writeArtifact(t, "TokenB")

	out, err := runRoot(t)
	require.NoError(t, err)

	assert.Contains(t, out, "Chain ID: 31337")
	assert.Contains(t, out, "Synced 2 contracts")
	// cast is absent so the raw address is kept and a warning is shown
	assert.Contains(t, out, "Warnings:")

	tokenA, err := os.ReadFile(filepath.Join(p.outputDir, "tokenA.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(tokenA), "export const TOKEN_A_ADDRESS = '"+tokenARaw+"' as const;")
	assert.Contains(t, string(tokenA), "export const TOKEN_A_ABI = [")
	assert.Contains(t, string(tokenA), "// Chain ID: 31337")
	assert.Contains(t, string(tokenA), "// Commit: abc1234")

	assert.FileExists(t, filepath.Join(p.outputDir, "tokenB.ts"))
	assert.FileExists(t, filepath.Join(p.outputDir, "abi", "TokenA.json"))
	assert.FileExists(t, filepath.Join(p.outputDir, "abi", "TokenB.json"))
	assert.NoFileExists(t, filepath.Join(p.outputDir, "deployments", "31337.yaml"))
}

func TestRoot_NativeChecksummerAndManifest(t *testing.T) {
	p := newTestProject(t)
	t.Setenv("ABISYNC_CHECKSUMMER", "native")
	t.Setenv("ABISYNC_MANIFEST", "true")
	p.writeRecord(t, "31337", twoTokenRecord)
	p.writeArtifact(t, "TokenA")
	p.writeArtifact(t, "TokenB")

	out, err := runRoot(t, "31337")
	require.NoError(t, err)
	assert.NotContains(t, out, "Warnings:")

	tokenA, err := os.ReadFile(filepath.Join(p.outputDir, "tokenA.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(tokenA), "export const TOKEN_A_ADDRESS = '"+tokenASum+"' as const;")

	manifest, err := os.ReadFile(filepath.Join(p.outputDir, "deployments", "31337.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(manifest), "chainId: 31337")
	assert.Contains(t, string(manifest), "binding: tokenA.ts")
}

func TestRoot_IsIdempotent(t *testing.T) {
	p := newTestProject(t)
	p.writeRecord(t, "31337", twoTokenRecord)
	p.writeArtifact(t, "TokenA")
	p.writeArtifact(t, "TokenB")

	_, err := runRoot(t)
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(p.outputDir, "abi", "TokenA.json"))
	require.NoError(t, err)

	_, err = runRoot(t)
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(p.outputDir, "abi", "TokenA.json"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRoot_MissingArtifactAbortsWithoutWriting(t *testing.T) {
	p := newTestProject(t)
	p.writeRecord(t, "31337", twoTokenRecord)
	p.writeArtifact(t, "TokenA")

	_, err := runRoot(t)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInterfaceNotFound)
	assert.Contains(t, err.Error(), "TokenB")

	assert.NoDirExists(t, p.outputDir)
}

func TestRoot_MissingDeployment(t *testing.T) {
	newTestProject(t)

	_, err := runRoot(t, "11155111")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingDeployment)
}

func TestRoot_NoCreations(t *testing.T) {
	p := newTestProject(t)
	p.writeRecord(t, "31337", `{"transactions": [{"hash": "0x02", "transactionType": "CALL", "contractName": "TokenA", "contractAddress": "`+tokenARaw+`"}], "commit": "abc1234"}`)

	out, err := runRoot(t)
	require.NoError(t, err)
	assert.Contains(t, out, "No deployed contracts found")
	assert.NoDirExists(t, p.outputDir)
}

func TestRoot_InvalidChainID(t *testing.T) {
	newTestProject(t)

	_, err := runRoot(t, "mainnet")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidChainID)
}

func TestRoot_TooManyArgs(t *testing.T) {
	newTestProject(t)

	_, err := runRoot(t, "1", "2")
	require.Error(t, err)
}
