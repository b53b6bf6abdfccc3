package network

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audithook/internal/ports"
)

func newTestService(t *testing.T, content *string) *Service {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deployed-contracts.json")
	if content != nil {
		require.NoError(t, os.WriteFile(path, []byte(*content), 0o644))
	}
	return New(Config{Network: "base-testnet", ExplorerBaseURL: "https://testnet.basescan.org/", ContractsPath: path})
}

func ptr(s string) *string { return &s }

func decodeLinks(t *testing.T, raw json.RawMessage) map[string]any {
	t.Helper()
	var links map[string]any
	require.NoError(t, json.Unmarshal(raw, &links))
	return links
}

func TestInfo(t *testing.T) {
	svc := New(Config{Network: "mainnet", ExplorerBaseURL: "https://basescan.org"})
	info := svc.Info()
	assert.Equal(t, "base-mainnet", info.Network)
	assert.Equal(t, "https://basescan.org", info.ExplorerBaseURL)
}

func TestBalance(t *testing.T) {
	svc := newTestService(t, nil)

	got, err := svc.Balance(context.Background(), "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	require.NoError(t, err)
	assert.Equal(t, "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", got.AccountAddress)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", got.ChecksumAddress)
	assert.Equal(t, MockBalance, got.Balance)
	assert.Equal(t, "base-testnet", got.Network)

	got, err = svc.Balance(context.Background(), "alice.base.eth")
	require.NoError(t, err)
	assert.Empty(t, got.ChecksumAddress)
}

func TestBalance_EmptyAddress(t *testing.T) {
	svc := newTestService(t, nil)
	_, err := svc.Balance(context.Background(), "")

	var verr *ports.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "accountAddress", verr.Fields[0].Field)
}

func TestBalance_WhitespaceAddressIsEchoed(t *testing.T) {
	svc := newTestService(t, nil)
	got, err := svc.Balance(context.Background(), "  ")
	require.NoError(t, err)
	assert.Equal(t, "  ", got.AccountAddress)
	assert.Empty(t, got.ChecksumAddress)
}

func TestDeployedContracts_Missing(t *testing.T) {
	svc := newTestService(t, nil)
	_, err := svc.DeployedContracts(context.Background())
	assert.True(t, errors.Is(err, ports.ErrNotFound))
}

func TestDeployedContracts_RewritesLinks(t *testing.T) {
	svc := newTestService(t, ptr(`[{"name":"AuditHook","network":"hedera","contractLinks":{"evmAddress":"0xABC","hashscan":"https://x"}}]`))

	got, err := svc.DeployedContracts(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)

	links := decodeLinks(t, got[0]["contractLinks"])
	assert.Equal(t, map[string]any{
		"viewOnBlockExplorer": "https://testnet.basescan.org/address/0xABC",
		"evmAddress":          "0xABC",
	}, links)
	assert.JSONEq(t, `"AuditHook"`, string(got[0]["name"]))
	assert.JSONEq(t, `"hedera"`, string(got[0]["network"]))
}

func TestDeployedContracts_EmptyArray(t *testing.T) {
	svc := newTestService(t, ptr(`[]`))
	got, err := svc.DeployedContracts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDeployedContracts_NonArrayIsEmpty(t *testing.T) {
	for _, doc := range []string{`{"contractLinks":{"evmAddress":"0x1"}}`, `42`, `"text"`, `null`} {
		svc := newTestService(t, ptr(doc))
		got, err := svc.DeployedContracts(context.Background())
		require.NoError(t, err, doc)
		assert.Empty(t, got, doc)
	}
}

func TestDeployedContracts_Malformed(t *testing.T) {
	svc := newTestService(t, ptr(`[{"contractLinks":`))
	_, err := svc.DeployedContracts(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ports.ErrNotFound))
}

func TestDeployedContracts_LooseEntries(t *testing.T) {
	svc := newTestService(t, ptr(`[7, {"name":"NoLinks"}]`))
	got, err := svc.DeployedContracts(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	for _, c := range got {
		links := decodeLinks(t, c["contractLinks"])
		assert.Equal(t, "https://testnet.basescan.org/address/", links["viewOnBlockExplorer"])
		_, has := links["evmAddress"]
		assert.False(t, has)
	}
	_, hasName := got[0]["name"]
	assert.False(t, hasName)
}

func TestDeployedContracts_ContextDone(t *testing.T) {
	svc := newTestService(t, ptr(`[]`))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.DeployedContracts(ctx)
	// The read may win the race against the cancelled context.
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
}
