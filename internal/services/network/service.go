package network

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"audithook/internal/domain"
	"audithook/internal/ports"
)

// MockBalance is returned for every account; no chain RPC is made.
const MockBalance = "100.0"

const defaultReadTimeout = 5 * time.Second

// Config carries the target network for one gateway instance.
type Config struct {
	Network         string // testnet or mainnet, optionally prefixed with "base-"
	ExplorerBaseURL string // e.g. https://testnet.basescan.org
	ContractsPath   string // deployed contracts registry (JSON array)
	ReadTimeout     time.Duration
}

// Service is the network info gateway: mocked balances plus the deployed
// contracts registry with explorer links rewritten for the target network.
type Service struct {
	label       string
	explorer    string
	path        string
	readTimeout time.Duration
}

var _ ports.Network = (*Service)(nil)

func New(cfg Config) *Service {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(cfg.Network)), "base-")
	if name == "" {
		name = "testnet"
	}
	timeout := cfg.ReadTimeout
	if timeout <= 0 {
		timeout = defaultReadTimeout
	}
	return &Service{
		label:       "base-" + name,
		explorer:    strings.TrimRight(cfg.ExplorerBaseURL, "/"),
		path:        cfg.ContractsPath,
		readTimeout: timeout,
	}
}

func (s *Service) Info() domain.NetworkInfo {
	return domain.NetworkInfo{Network: s.label, ExplorerBaseURL: s.explorer}
}

// Balance returns the mocked balance for address. Hex addresses are echoed
// back with their EIP-55 checksum form as well.
func (s *Service) Balance(ctx context.Context, address string) (domain.AccountBalance, error) {
	if address == "" {
		return domain.AccountBalance{}, ports.Invalid("accountAddress", "Account address is required")
	}
	out := domain.AccountBalance{AccountAddress: address, Balance: MockBalance, Network: s.label}
	if common.IsHexAddress(address) {
		out.ChecksumAddress = common.HexToAddress(address).Hex()
	}
	return out, nil
}

// DeployedContracts reads the registry file. A missing file is ErrNotFound,
// which callers must keep distinct from an empty registry.
func (s *Service) DeployedContracts(ctx context.Context) ([]domain.DeployedContract, error) {
	ctx, cancel := context.WithTimeout(ctx, s.readTimeout)
	defer cancel()

	data, err := readFile(ctx, s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("contracts registry %s: %w", s.path, ports.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read contracts registry: %w", err)
	}

	var doc json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse contracts registry: %w", err)
	}
	doc = bytes.TrimSpace(doc)
	// Anything other than an array is tolerated and reported as no contracts.
	if len(doc) == 0 || doc[0] != '[' {
		return []domain.DeployedContract{}, nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(doc, &entries); err != nil {
		return nil, fmt.Errorf("parse contracts registry: %w", err)
	}

	out := make([]domain.DeployedContract, 0, len(entries))
	for _, e := range entries {
		c, err := s.rewrite(e)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// rewrite replaces contractLinks with {viewOnBlockExplorer, evmAddress} for
// the configured explorer. Non-object entries are treated as empty objects.
func (s *Service) rewrite(entry json.RawMessage) (domain.DeployedContract, error) {
	var c domain.DeployedContract
	if err := json.Unmarshal(entry, &c); err != nil || c == nil {
		c = domain.DeployedContract{}
	}

	var links map[string]json.RawMessage
	if raw, ok := c["contractLinks"]; ok {
		_ = json.Unmarshal(raw, &links)
	}
	addr, hasAddr := links["evmAddress"]

	rewritten := map[string]json.RawMessage{}
	link, err := json.Marshal(s.explorer + "/address/" + addressText(addr))
	if err != nil {
		return nil, err
	}
	rewritten["viewOnBlockExplorer"] = link
	if hasAddr {
		rewritten["evmAddress"] = addr
	}
	if c["contractLinks"], err = json.Marshal(rewritten); err != nil {
		return nil, err
	}
	return c, nil
}

func addressText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// readFile reads path but gives up when ctx expires.
func readFile(ctx context.Context, path string) ([]byte, error) {
	type result struct {
		data []byte
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		data, err := os.ReadFile(path)
		ch <- result{data: data, err: err}
	}()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		return r.data, r.err
	}
}
